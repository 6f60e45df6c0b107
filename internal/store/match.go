package store

import (
	"fmt"
	"sort"
	"strings"
)

// Matches reports whether obj satisfies every filter in q.
// Used by backends that evaluate queries in process.
func Matches(obj Object, q Query) bool {
	if q.Type != "" && obj.Type != q.Type {
		return false
	}
	for key, want := range q.Filter {
		got, ok := fieldValue(obj, key)
		if !ok || !valueMatches(got, Stringify(want)) {
			return false
		}
	}
	return true
}

// valueMatches compares a stored value with a filter value. A list matches
// when any of its elements does, so multi-object references can be filtered
// by one id.
func valueMatches(got interface{}, want string) bool {
	if list, ok := got.([]interface{}); ok {
		for _, item := range list {
			if Stringify(item) == want {
				return true
			}
		}
		return false
	}
	return Stringify(got) == want
}

// SortObjects orders objects in place by creation time according to sort.
// Ties keep insertion order.
func SortObjects(objs []Object, order string) {
	switch order {
	case SortCreatedAtAsc:
		sort.SliceStable(objs, func(i, j int) bool {
			return objs[i].CreatedAt.Before(objs[j].CreatedAt)
		})
	case SortCreatedAtDesc:
		sort.SliceStable(objs, func(i, j int) bool {
			return objs[i].CreatedAt.After(objs[j].CreatedAt)
		})
	}
}

// Stringify renders a filter or metadata value the way the bucket compares
// them: references by id, select-dropdowns by key, numbers without trailing zeros.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]interface{}:
		if id, ok := val["id"]; ok {
			return Stringify(id)
		}
		if key, ok := val["key"]; ok {
			return Stringify(key)
		}
		return fmt.Sprint(val)
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}

func fieldValue(obj Object, key string) (interface{}, bool) {
	switch key {
	case "id":
		return obj.ID, true
	case "slug":
		return obj.Slug, true
	case "title":
		return obj.Title, true
	case "type":
		return obj.Type, true
	}
	if !strings.HasPrefix(key, MetadataKeyPrefix) || obj.Metadata == nil {
		return nil, false
	}
	v, ok := obj.Metadata[strings.TrimPrefix(key, MetadataKeyPrefix)]
	return v, ok
}
