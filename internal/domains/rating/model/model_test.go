package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-site-backend/internal/shared/apperror"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0, stats.TotalRatings)
	assert.Equal(t, Distribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.RatingDistribution)
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		average  float64
		total    int
		expected Distribution
	}{
		{"mixed", []int{5, 4, 4, 3}, 4.0, 4, Distribution{1: 0, 2: 0, 3: 1, 4: 2, 5: 1}},
		{"rounds up", []int{5, 5, 4}, 4.7, 3, Distribution{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}},
		{"repeating decimal", []int{1, 2, 2}, 1.7, 3, Distribution{1: 1, 2: 2, 3: 0, 4: 0, 5: 0}},
		{"half rounds away from zero", []int{4, 4, 4, 5, 4, 4, 5, 5, 4, 4, 4, 4, 4, 4, 5, 4, 4, 4, 5, 4}, 4.3, 20, Distribution{1: 0, 2: 0, 3: 0, 4: 15, 5: 5}},
		{"single", []int{3}, 3.0, 1, Distribution{1: 0, 2: 0, 3: 1, 4: 0, 5: 0}},
		{"out of range counted but not bucketed", []int{5, 9}, 7.0, 2, Distribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.values)
			assert.Equal(t, tt.average, stats.AverageRating)
			assert.Equal(t, tt.total, stats.TotalRatings)
			assert.Equal(t, tt.expected, stats.RatingDistribution)
		})
	}
}

func TestRatingStats_JSON(t *testing.T) {
	body, err := json.Marshal(ComputeStats([]int{5, 4, 4, 3}))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"averageRating":4,"totalRatings":4,"ratingDistribution":{"1":0,"2":0,"3":1,"4":2,"5":1}}`,
		string(body),
	)

	body, err = json.Marshal(RatingStats{})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"ratingDistribution":{"1":0,"2":0,"3":0,"4":0,"5":0}`)
}

func TestRatingTitle(t *testing.T) {
	name := "Ana"
	assert.Equal(t, "Ana rated 5 stars", RatingTitle(&name, "ana@example.com", 5))
	assert.Equal(t, "ana@example.com rated 3 stars", RatingTitle(nil, "ana@example.com", 3))
}

func ptr[T any](v T) *T { return &v }

func TestSubmitRatingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SubmitRatingRequest
		wantCode  string
		wantField string
	}{
		{"valid", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(3.0), UserEmail: "a@b.com"}, "", ""},
		{"missing recipe", SubmitRatingRequest{RatingValue: ptr(3.0), UserEmail: "a@b.com"}, ErrCodeMissingFields, "recipeId"},
		{"missing rating", SubmitRatingRequest{RecipeID: "r1", UserEmail: "a@b.com"}, ErrCodeMissingFields, "rating_value"},
		{"missing email", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(3.0)}, ErrCodeMissingFields, "user_email"},
		{"zero", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(0.0), UserEmail: "a@b.com"}, ErrCodeInvalidRating, "rating_value"},
		{"six", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(6.0), UserEmail: "a@b.com"}, ErrCodeInvalidRating, "rating_value"},
		{"fraction", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(3.5), UserEmail: "a@b.com"}, ErrCodeInvalidRating, "rating_value"},
		{"negative", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(-1.0), UserEmail: "a@b.com"}, ErrCodeInvalidRating, "rating_value"},
		{"bad email", SubmitRatingRequest{RecipeID: "r1", RatingValue: ptr(3.0), UserEmail: "not-an-email"}, ErrCodeInvalidEmail, "user_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindInvalidArgument, appErr.Kind)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestSubmitRatingRequest_Normalize(t *testing.T) {
	req := SubmitRatingRequest{
		RecipeID:  "  r1 ",
		UserEmail: " a@b.com ",
		UserName:  ptr("  Ana <3 "),
	}
	req.Normalize()

	assert.Equal(t, "r1", req.RecipeID)
	assert.Equal(t, "a@b.com", req.UserEmail)
	require.NotNil(t, req.UserName)
	assert.Equal(t, "Ana <3", *req.UserName)

	req.UserName = ptr("   ")
	req.Normalize()
	assert.Nil(t, req.UserName)
}
