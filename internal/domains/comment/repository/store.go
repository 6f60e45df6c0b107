package repository

import (
	"context"
	"errors"
	"fmt"

	"recipe-site-backend/internal/domains/comment/model"
	"recipe-site-backend/internal/store"
)

type storeCommentRepository struct {
	client store.Client
}

func NewStoreCommentRepository(client store.Client) CommentRepository {
	return &storeCommentRepository{client: client}
}

func (r *storeCommentRepository) ListApproved(ctx context.Context, recipeID string, limit int) ([]*model.RecipeComment, error) {
	objs, err := r.client.Find(ctx, store.Query{
		Type: store.TypeRecipeComment,
		Filter: map[string]interface{}{
			store.MetadataKeyPrefix + model.MetaRecipe: recipeID,
			store.MetadataKeyPrefix + model.MetaStatus: string(model.StatusApproved),
		},
		Sort:  store.SortCreatedAtDesc,
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []*model.RecipeComment{}, nil
		}
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*model.RecipeComment, 0, len(objs))
	for i := range objs {
		comments = append(comments, toComment(&objs[i]))
	}
	return comments, nil
}

func (r *storeCommentRepository) Create(ctx context.Context, comment *model.RecipeComment) (*model.RecipeComment, error) {
	metadata := map[string]interface{}{
		model.MetaRecipe:      comment.RecipeID,
		model.MetaAuthorName:  comment.AuthorName,
		model.MetaAuthorEmail: comment.AuthorEmail,
		model.MetaCommentText: comment.CommentText,
		model.MetaStatus:      string(comment.Status),
	}
	if comment.Rating != nil {
		metadata[model.MetaRating] = *comment.Rating
	}

	obj, err := r.client.InsertOne(ctx, store.NewObject{
		Type:     store.TypeRecipeComment,
		Title:    comment.Title,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return toComment(obj), nil
}

// toComment decodes a recipe-comments object. Status may be a plain string
// or a select-dropdown {key, value}; both resolve to the key.
func toComment(obj *store.Object) *model.RecipeComment {
	comment := &model.RecipeComment{
		ID:          obj.ID,
		Title:       obj.Title,
		RecipeID:    store.MetaString(obj.Metadata, model.MetaRecipe),
		AuthorName:  store.MetaString(obj.Metadata, model.MetaAuthorName),
		AuthorEmail: store.MetaString(obj.Metadata, model.MetaAuthorEmail),
		CommentText: store.MetaString(obj.Metadata, model.MetaCommentText),
		Status:      model.CommentStatus(store.MetaString(obj.Metadata, model.MetaStatus)),
		CreatedAt:   obj.CreatedAt,
	}
	if v, ok := store.MetaInt(obj.Metadata, model.MetaRating); ok {
		comment.Rating = &v
	}
	return comment
}
