package service

import (
	"context"

	"recipe-site-backend/internal/domains/comment/model"
)

// =====================================================
// COMMENT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// SubmitComment stores a new comment in pending state.
	SubmitComment(ctx context.Context, req model.SubmitCommentRequest) (*model.RecipeComment, error)

	// ListApprovedComments returns approved comments, newest first. Store
	// failures degrade to an empty list.
	ListApprovedComments(ctx context.Context, recipeID string) (*model.CommentListResult, error)
}
