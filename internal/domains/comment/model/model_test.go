package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-site-backend/internal/shared/apperror"
)

func TestRecipeComment_JSONHidesEmail(t *testing.T) {
	rating := 5
	c := RecipeComment{
		ID:          "c1",
		Title:       CommentTitle("Ana"),
		RecipeID:    "recipe-1",
		AuthorName:  "Ana",
		AuthorEmail: "ana@example.com",
		CommentText: "Great",
		Rating:      &rating,
		Status:      StatusApproved,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "ana@example.com")
	assert.NotContains(t, string(data), "author_email")
	assert.Contains(t, string(data), `"title":"Comment by Ana"`)
	assert.Contains(t, string(data), `"rating":5`)
	assert.Contains(t, string(data), `"status":"approved"`)
}

func TestRecipeComment_JSONOmitsMissingRating(t *testing.T) {
	data, err := json.Marshal(RecipeComment{ID: "c1", Status: StatusPending})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"rating"`)
}

func TestSubmitCommentRequest_IgnoresClientStatus(t *testing.T) {
	var req SubmitCommentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"recipeId":"r1","status":"approved"}`), &req))
	assert.Equal(t, "r1", req.RecipeID)
}

func TestSubmitCommentRequest_Normalize(t *testing.T) {
	req := SubmitCommentRequest{
		RecipeID:    "  r1 ",
		AuthorName:  " Bo\x00 ",
		AuthorEmail: " bo@example.com ",
		CommentText: " Salt &amp; pepper, x<y ",
	}
	req.Normalize()

	assert.Equal(t, "r1", req.RecipeID)
	assert.Equal(t, "Bo", req.AuthorName)
	assert.Equal(t, "bo@example.com", req.AuthorEmail)
	assert.Equal(t, "Salt &amp; pepper, x<y", req.CommentText)
}

func TestSubmitCommentRequest_Validate(t *testing.T) {
	four, zero := 4.0, 0.0
	valid := SubmitCommentRequest{
		RecipeID:    "r1",
		AuthorName:  "Ana",
		AuthorEmail: "ana@example.com",
		CommentText: "Nice",
	}

	tests := []struct {
		name   string
		mutate func(r *SubmitCommentRequest)
		code   string
	}{
		{"valid", func(r *SubmitCommentRequest) {}, ""},
		{"valid with rating", func(r *SubmitCommentRequest) { r.Rating = &four }, ""},
		{"zero rating", func(r *SubmitCommentRequest) { r.Rating = &zero }, ErrCodeInvalidRating},
		{"missing fields reported before email", func(r *SubmitCommentRequest) {
			r.AuthorEmail = "bad"
			r.CommentText = ""
		}, ErrCodeMissingFields},
		{"name at limit", func(r *SubmitCommentRequest) { r.AuthorName = strings.Repeat("é", MaxAuthorNameLength) }, ""},
		{"name over limit", func(r *SubmitCommentRequest) { r.AuthorName = strings.Repeat("é", MaxAuthorNameLength+1) }, ErrCodeNameTooLong},
		{"text at limit", func(r *SubmitCommentRequest) { r.CommentText = strings.Repeat("x", MaxCommentTextLength) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestSubmitCommentRequest_RatingValue(t *testing.T) {
	three := 3.0
	assert.Nil(t, (&SubmitCommentRequest{}).RatingValue())
	v := (&SubmitCommentRequest{Rating: &three}).RatingValue()
	require.NotNil(t, v)
	assert.Equal(t, 3, *v)
}
