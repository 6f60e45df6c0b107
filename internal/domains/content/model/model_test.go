package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"recipe-site-backend/internal/shared/apperror"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in       int
		fallback int
		want     int
	}{
		{-1, 12, 12},
		{0, 12, 12},
		{0, 0, DefaultListLimit},
		{0, 500, MaxListLimit},
		{1, 12, 1},
		{55, 12, 55},
		{MaxListLimit, 12, MaxListLimit},
		{MaxListLimit + 1, 12, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.in, tt.fallback), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.in, tt.fallback))
		})
	}
}

func TestRecipe_Helpers(t *testing.T) {
	r := Recipe{Title: "Pad Thai", PrepTime: 15, CookTime: 10}
	assert.Equal(t, 25, r.TotalTime())
	assert.Equal(t, "Pad Thai", r.DisplayName())

	r.Name = "Classic Pad Thai"
	assert.Equal(t, "Classic Pad Thai", r.DisplayName())
}

func TestRecipe_Validate(t *testing.T) {
	valid := Recipe{ID: "r1", Slug: "pad-thai", Difficulty: &Difficulty{Key: DifficultyEasy, Value: "Easy"}}
	assert.NoError(t, valid.Validate())

	noSlug := valid
	noSlug.Slug = ""
	assert.Error(t, noSlug.Validate())

	negative := valid
	negative.CookTime = -5
	assert.Error(t, negative.Validate())

	badDifficulty := valid
	badDifficulty.Difficulty = &Difficulty{Key: "extreme"}
	assert.Error(t, badDifficulty.Validate())

	noDifficulty := valid
	noDifficulty.Difficulty = nil
	assert.NoError(t, noDifficulty.Validate())
}

func TestReferenceStubs(t *testing.T) {
	assert.True(t, (&Author{ID: "a1"}).IsStub())
	assert.False(t, (&Author{ID: "a1", Slug: "ana"}).IsStub())
	assert.True(t, (&Category{ID: "c1"}).IsStub())
	assert.False(t, (&Category{ID: "c1", Title: "Dinner"}).IsStub())
}

func TestIsDegraded(t *testing.T) {
	assert.False(t, IsDegraded(NewRecipeNotFoundError(ErrContentNotFound)))
	assert.True(t, IsDegraded(NewRecipeNotFoundError(errors.New("connection refused"))))
	assert.False(t, IsDegraded(NewSlugRequiredError()))
	assert.False(t, IsDegraded(nil))
}

func TestDegradedList(t *testing.T) {
	cause := errors.New("boom")
	result := DegradedList[*Recipe](cause, 20)
	assert.True(t, result.Degraded)
	assert.Equal(t, 20, result.Limit)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.ErrorIs(t, result.Cause, cause)
	assert.True(t, apperror.Is(result.Cause, apperror.KindReadDegraded))
}
