package repository

import (
	"context"
	"errors"
	"fmt"

	"recipe-site-backend/internal/domains/rating/model"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/pkg/logger"
)

// storeRatingRepository keeps ratings as recipe-ratings objects in the
// content store.
type storeRatingRepository struct {
	client store.Client
}

func NewStoreRatingRepository(client store.Client) RatingRepository {
	return &storeRatingRepository{client: client}
}

func (r *storeRatingRepository) ListValues(ctx context.Context, recipeID string, limit int) ([]int, error) {
	objs, err := r.client.Find(ctx, store.Query{
		Type:   store.TypeRecipeRating,
		Filter: map[string]interface{}{store.MetadataKeyPrefix + model.MetaRecipe: recipeID},
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	values := make([]int, 0, len(objs))
	skipped := 0
	for _, obj := range objs {
		v, ok := store.MetaInt(obj.Metadata, model.MetaRatingValue)
		// an object without a numeric rating_value is not a rating
		if !ok {
			skipped++
			continue
		}
		values = append(values, v)
	}
	if skipped > 0 {
		logger.Warn("Skipped ratings without a numeric value", map[string]interface{}{
			"recipe_id": recipeID,
			"skipped":   skipped,
		})
	}
	return values, nil
}

func (r *storeRatingRepository) FindByRecipeAndEmail(ctx context.Context, recipeID, userEmail string) (*model.RecipeRating, error) {
	obj, err := r.client.FindOne(ctx, store.Query{
		Type: store.TypeRecipeRating,
		Filter: map[string]interface{}{
			store.MetadataKeyPrefix + model.MetaRecipe:    recipeID,
			store.MetadataKeyPrefix + model.MetaUserEmail: userEmail,
		},
		Sort: store.SortCreatedAtAsc,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, model.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return toRating(obj), nil
}

func (r *storeRatingRepository) Create(ctx context.Context, rating *model.RecipeRating) (*model.RecipeRating, error) {
	metadata := map[string]interface{}{
		model.MetaRecipe:      rating.RecipeID,
		model.MetaRatingValue: rating.RatingValue,
		model.MetaUserEmail:   rating.UserEmail,
	}
	if rating.UserName != nil {
		metadata[model.MetaUserName] = *rating.UserName
	}

	obj, err := r.client.InsertOne(ctx, store.NewObject{
		Type:     store.TypeRecipeRating,
		Title:    rating.Title,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return toRating(obj), nil
}

func (r *storeRatingRepository) UpdateValue(ctx context.Context, id string, value int, userName *string) (*model.RecipeRating, error) {
	metadata := map[string]interface{}{
		model.MetaRatingValue: value,
	}
	if userName != nil {
		metadata[model.MetaUserName] = *userName
	}

	obj, err := r.client.UpdateOne(ctx, id, store.Patch{Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	return toRating(obj), nil
}

func toRating(obj *store.Object) *model.RecipeRating {
	rating := &model.RecipeRating{
		ID:         obj.ID,
		Title:      obj.Title,
		RecipeID:   store.MetaString(obj.Metadata, model.MetaRecipe),
		UserEmail:  store.MetaString(obj.Metadata, model.MetaUserEmail),
		CreatedAt:  obj.CreatedAt,
		ModifiedAt: obj.ModifiedAt,
	}
	if v, ok := store.MetaInt(obj.Metadata, model.MetaRatingValue); ok {
		rating.RatingValue = v
	}
	if name := store.MetaString(obj.Metadata, model.MetaUserName); name != "" {
		rating.UserName = &name
	}
	return rating
}
