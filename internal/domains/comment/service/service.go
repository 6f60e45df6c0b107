package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"recipe-site-backend/internal/domains/comment/model"
	"recipe-site-backend/internal/domains/comment/repository"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/pkg/logger"
)

type commentService struct {
	commentRepo repository.CommentRepository
	fetchLimit  int
}

func NewCommentService(commentRepo repository.CommentRepository, fetchLimit int) ServiceInterface {
	if fetchLimit <= 0 {
		fetchLimit = 50
	}
	return &commentService{
		commentRepo: commentRepo,
		fetchLimit:  fetchLimit,
	}
}

// =====================================================
// SUBMIT COMMENT
// =====================================================

func (s *commentService) SubmitComment(ctx context.Context, req model.SubmitCommentRequest) (*model.RecipeComment, error) {
	// Step 1: Sanitise and validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build entity; status is never taken from the client
	comment := &model.RecipeComment{
		Title:       model.CommentTitle(req.AuthorName),
		RecipeID:    req.RecipeID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		CommentText: req.CommentText,
		Rating:      req.RatingValue(),
		Status:      model.StatusPending,
	}

	// Step 3: Insert
	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		if errors.Is(err, store.ErrReadOnly) {
			return nil, model.NewNotConfiguredError(err)
		}
		return nil, model.NewWriteFailedError(err)
	}

	logger.Info("Comment submitted for moderation", map[string]interface{}{
		"recipe_id":  created.RecipeID,
		"comment_id": created.ID,
	})
	return created, nil
}

// =====================================================
// LIST APPROVED COMMENTS
// =====================================================

func (s *commentService) ListApprovedComments(ctx context.Context, recipeID string) (*model.CommentListResult, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, model.NewRecipeIDRequiredError()
	}

	comments, err := s.commentRepo.ListApproved(ctx, recipeID, s.fetchLimit)
	if err != nil {
		logger.Warn("Comment list degraded", map[string]interface{}{
			"recipe_id": recipeID,
			"error":     err.Error(),
		})
		return &model.CommentListResult{
			Comments: []*model.RecipeComment{},
			Degraded: true,
			Cause:    model.NewReadDegradedError(err),
		}, nil
	}

	// The store filter is not trusted: pending and rejected comments must
	// never leave this service, and the order must hold on every backend.
	approved := make([]*model.RecipeComment, 0, len(comments))
	for _, c := range comments {
		if c.IsApproved() {
			approved = append(approved, c)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CreatedAt.After(approved[j].CreatedAt)
	})

	return &model.CommentListResult{Comments: approved}, nil
}
