package repository

import (
	"context"

	"recipe-site-backend/internal/domains/comment/model"
)

// =====================================================
// COMMENT REPOSITORY INTERFACE
// =====================================================

type CommentRepository interface {
	// ListApproved returns approved comments of a recipe, newest first.
	ListApproved(ctx context.Context, recipeID string, limit int) ([]*model.RecipeComment, error)

	Create(ctx context.Context, comment *model.RecipeComment) (*model.RecipeComment, error)
}
