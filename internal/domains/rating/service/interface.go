package service

import (
	"context"

	"recipe-site-backend/internal/domains/rating/model"
)

// =====================================================
// RATING SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ComputeRatingStats aggregates every rating of a recipe. Store failures
	// degrade to zero stats with Degraded set; only a blank id is an error.
	ComputeRatingStats(ctx context.Context, recipeID string) (*model.StatsResult, error)

	// SubmitRating creates the caller's rating of a recipe or overwrites
	// their existing one.
	SubmitRating(ctx context.Context, req model.SubmitRatingRequest) (*model.RecipeRating, error)
}
