package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	obj := Object{
		ID:   "r1",
		Type: TypeRecipeComment,
		Slug: "comment-1",
		Metadata: map[string]interface{}{
			"recipe": map[string]interface{}{"id": "recipe-1", "title": "Pad Thai"},
			"status": map[string]interface{}{"key": "approved", "value": "Approved"},
			"rating": float64(4),
		},
	}
	obj.Metadata["categories"] = []interface{}{map[string]interface{}{"id": "cat-1"}, "cat-2"}

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"type only", Query{Type: TypeRecipeComment}, true},
		{"other type", Query{Type: TypeRecipeRating}, false},
		{"expanded reference", Query{Type: TypeRecipeComment, Filter: map[string]interface{}{"metadata.recipe": "recipe-1"}}, true},
		{"select dropdown key", Query{Filter: map[string]interface{}{"metadata.status": "approved"}}, true},
		{"select dropdown mismatch", Query{Filter: map[string]interface{}{"metadata.status": "pending"}}, false},
		{"numeric", Query{Filter: map[string]interface{}{"metadata.rating": 4}}, true},
		{"slug", Query{Filter: map[string]interface{}{"slug": "comment-1"}}, true},
		{"missing field", Query{Filter: map[string]interface{}{"metadata.nope": "x"}}, false},
		{"list of references", Query{Filter: map[string]interface{}{"metadata.categories": "cat-1"}}, true},
		{"list of ids", Query{Filter: map[string]interface{}{"metadata.categories": "cat-2"}}, true},
		{"not in list", Query{Filter: map[string]interface{}{"metadata.categories": "cat-3"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(obj, tt.q))
		})
	}
}

func TestSortObjects(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	objs := []Object{
		{ID: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
	}

	SortObjects(objs, SortCreatedAtDesc)
	assert.Equal(t, []string{"c", "b", "a"}, ids(objs))

	SortObjects(objs, SortCreatedAtAsc)
	assert.Equal(t, []string{"a", "b", "c"}, ids(objs))
}

func TestMetaInt(t *testing.T) {
	m := map[string]interface{}{
		"whole":    float64(5),
		"fraction": 3.5,
		"text":     "4",
		"number":   json.Number("2"),
		"bad":      "five",
		"nil":      nil,
	}

	v, ok := MetaInt(m, "whole")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = MetaInt(m, "fraction")
	assert.False(t, ok)

	v, ok = MetaInt(m, "text")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = MetaInt(m, "number")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	for _, key := range []string{"bad", "nil", "missing"} {
		_, ok = MetaInt(m, key)
		assert.False(t, ok, key)
	}
}

func TestEffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultQueryLimit, Query{}.EffectiveLimit())
	assert.Equal(t, 50, Query{Limit: 50}.EffectiveLimit())
	assert.Equal(t, MaxQueryLimit, Query{Limit: 5000}.EffectiveLimit())
}

func ids(objs []Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.ID)
	}
	return out
}
