package service

import (
	"context"
	"errors"
	"strings"

	"recipe-site-backend/internal/domains/rating/model"
	"recipe-site-backend/internal/domains/rating/repository"
	"recipe-site-backend/internal/infrastructure/cache"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type ratingService struct {
	ratingRepo repository.RatingRepository
	locker     cache.Locker
	fetchLimit int
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	locker cache.Locker,
	fetchLimit int,
) ServiceInterface {
	if locker == nil {
		locker = cache.NoopLocker{}
	}
	if fetchLimit <= 0 {
		fetchLimit = store.MaxQueryLimit
	}
	return &ratingService{
		ratingRepo: ratingRepo,
		locker:     locker,
		fetchLimit: fetchLimit,
	}
}

// =====================================================
// COMPUTE RATING STATS
// =====================================================

func (s *ratingService) ComputeRatingStats(ctx context.Context, recipeID string) (*model.StatsResult, error) {
	// Step 1: Validate
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, model.NewRecipeIDRequiredError()
	}

	// Step 2: Fetch values; any read failure degrades to zero stats
	values, err := s.ratingRepo.ListValues(ctx, recipeID, s.fetchLimit)
	if err != nil {
		logger.Warn("Rating stats degraded", map[string]interface{}{
			"recipe_id": recipeID,
			"error":     err.Error(),
		})
		return &model.StatsResult{
			Stats:    model.EmptyStats(),
			Degraded: true,
			Cause:    model.NewReadDegradedError(err),
		}, nil
	}

	if len(values) >= s.fetchLimit {
		logger.Debug("Rating stats reached the fetch limit for recipe " + recipeID)
	}

	// Step 3: Reduce
	return &model.StatsResult{Stats: model.ComputeStats(values)}, nil
}

// =====================================================
// SUBMIT RATING
// =====================================================

func (s *ratingService) SubmitRating(ctx context.Context, req model.SubmitRatingRequest) (*model.RecipeRating, error) {
	// Step 1: Normalize and validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	value := req.Value()

	// Step 2: Serialise writers of the same (recipe, email)
	release, err := s.locker.Acquire(ctx, lockKey(req.RecipeID, req.UserEmail))
	defer release()
	if err != nil {
		if errors.Is(err, cache.ErrLockBusy) || ctx.Err() != nil {
			return nil, model.NewWriteFailedError(err)
		}
		logger.Warn("Rating lock unavailable, continuing without it", map[string]interface{}{
			"recipe_id": req.RecipeID,
			"error":     err.Error(),
		})
	}

	// Step 3: Look up the caller's existing rating
	existing, err := s.ratingRepo.FindByRecipeAndEmail(ctx, req.RecipeID, req.UserEmail)
	switch {
	case err == nil:
		return s.update(ctx, existing.ID, value, req.UserName)
	case !errors.Is(err, model.ErrRatingNotFound):
		return nil, mapWriteError(err)
	}

	// Step 4: Insert a new rating
	created, err := s.ratingRepo.Create(ctx, &model.RecipeRating{
		Title:       model.RatingTitle(req.UserName, req.UserEmail, value),
		RecipeID:    req.RecipeID,
		RatingValue: value,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return nil, mapWriteError(err)
	}

	// Step 5: A concurrent submission inserted first; update the winner
	winner, err := s.ratingRepo.FindByRecipeAndEmail(ctx, req.RecipeID, req.UserEmail)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return s.update(ctx, winner.ID, value, req.UserName)
}

func (s *ratingService) update(ctx context.Context, id string, value int, userName *string) (*model.RecipeRating, error) {
	updated, err := s.ratingRepo.UpdateValue(ctx, id, value, userName)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return updated, nil
}

// mapWriteError classifies a failed write: a missing write credential is a
// configuration problem, everything else is retryable.
func mapWriteError(err error) error {
	if errors.Is(err, store.ErrReadOnly) {
		return model.NewNotConfiguredError(err)
	}
	return model.NewWriteFailedError(err)
}

func lockKey(recipeID, userEmail string) string {
	return "rating:" + recipeID + ":" + userEmail
}
