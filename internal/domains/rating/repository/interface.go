package repository

import (
	"context"

	"recipe-site-backend/internal/domains/rating/model"
)

// =====================================================
// RATING REPOSITORY INTERFACE
// =====================================================

type RatingRepository interface {
	// ListValues returns the rating_value of every rating of a recipe, up to
	// limit records. Records without a numeric value are skipped. No
	// ratings is an empty slice, not an error.
	ListValues(ctx context.Context, recipeID string, limit int) ([]int, error)

	// FindByRecipeAndEmail returns the oldest rating for (recipe, email) or
	// model.ErrRatingNotFound.
	FindByRecipeAndEmail(ctx context.Context, recipeID, userEmail string) (*model.RecipeRating, error)

	Create(ctx context.Context, rating *model.RecipeRating) (*model.RecipeRating, error)

	// UpdateValue overwrites rating_value, and user_name when non-nil.
	UpdateValue(ctx context.Context, id string, value int, userName *string) (*model.RecipeRating, error)
}
