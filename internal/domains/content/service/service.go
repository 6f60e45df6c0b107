package service

import (
	"context"
	"errors"
	"strings"

	"recipe-site-backend/internal/domains/content/model"
	"recipe-site-backend/internal/domains/content/repository"
	"recipe-site-backend/internal/shared/apperror"
	"recipe-site-backend/pkg/logger"
)

type contentService struct {
	contentRepo  repository.ContentRepository
	defaultLimit int
}

// NewContentService builds the content reader. defaultLimit applies when a
// list call passes no limit.
func NewContentService(contentRepo repository.ContentRepository, defaultLimit int) ServiceInterface {
	return &contentService{
		contentRepo:  contentRepo,
		defaultLimit: model.ClampLimit(defaultLimit, model.DefaultListLimit),
	}
}

// =====================================================
// RECIPES
// =====================================================

func (s *contentService) ListRecipes(ctx context.Context, limit int) (*model.ListResult[*model.Recipe], error) {
	return s.listRecipes(ctx, repository.RecipeFilter{}, limit), nil
}

func (s *contentService) GetRecipe(ctx context.Context, slug string) (*model.Recipe, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, model.NewSlugRequiredError()
	}

	recipe, err := s.contentRepo.FindRecipeBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "recipe", slug, model.NewRecipeNotFoundError)
	}
	return recipe, nil
}

func (s *contentService) ListRecipesByCategory(ctx context.Context, categorySlug string, limit int) (*model.ListResult[*model.Recipe], error) {
	// Step 1: Resolve category
	category, err := s.GetCategory(ctx, categorySlug)
	if err != nil {
		if model.IsDegraded(err) {
			return model.DegradedList[*model.Recipe](errors.Unwrap(err), s.limit(limit)), nil
		}
		return nil, err
	}

	// Step 2: List recipes referencing it
	return s.listRecipes(ctx, repository.RecipeFilter{CategoryID: category.ID}, limit), nil
}

func (s *contentService) ListRecipesByAuthor(ctx context.Context, authorSlug string, limit int) (*model.ListResult[*model.Recipe], error) {
	// Step 1: Resolve author
	author, err := s.GetAuthor(ctx, authorSlug)
	if err != nil {
		if model.IsDegraded(err) {
			return model.DegradedList[*model.Recipe](errors.Unwrap(err), s.limit(limit)), nil
		}
		return nil, err
	}

	// Step 2: List recipes referencing them
	return s.listRecipes(ctx, repository.RecipeFilter{AuthorID: author.ID}, limit), nil
}

func (s *contentService) listRecipes(ctx context.Context, filter repository.RecipeFilter, limit int) *model.ListResult[*model.Recipe] {
	limit = s.limit(limit)
	recipes, err := s.contentRepo.ListRecipes(ctx, filter, limit)
	if err != nil {
		logDegraded("recipes", err)
		return model.DegradedList[*model.Recipe](err, limit)
	}
	return &model.ListResult[*model.Recipe]{Items: recipes, Limit: limit}
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *contentService) ListCategories(ctx context.Context, limit int) (*model.ListResult[*model.Category], error) {
	limit = s.limit(limit)
	categories, err := s.contentRepo.ListCategories(ctx, limit)
	if err != nil {
		logDegraded("categories", err)
		return model.DegradedList[*model.Category](err, limit), nil
	}
	return &model.ListResult[*model.Category]{Items: categories, Limit: limit}, nil
}

func (s *contentService) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, model.NewSlugRequiredError()
	}

	category, err := s.contentRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "category", slug, model.NewCategoryNotFoundError)
	}
	return category, nil
}

// =====================================================
// AUTHORS
// =====================================================

func (s *contentService) ListAuthors(ctx context.Context, limit int) (*model.ListResult[*model.Author], error) {
	limit = s.limit(limit)
	authors, err := s.contentRepo.ListAuthors(ctx, limit)
	if err != nil {
		logDegraded("authors", err)
		return model.DegradedList[*model.Author](err, limit), nil
	}
	return &model.ListResult[*model.Author]{Items: authors, Limit: limit}, nil
}

func (s *contentService) GetAuthor(ctx context.Context, slug string) (*model.Author, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, model.NewSlugRequiredError()
	}

	author, err := s.contentRepo.FindAuthorBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "author", slug, model.NewAuthorNotFoundError)
	}
	return author, nil
}

// =====================================================
// HOME PAGE
// =====================================================

func (s *contentService) GetHomePage(ctx context.Context) (*model.HomePage, error) {
	home, err := s.contentRepo.FindHomePage(ctx)
	if err != nil {
		return nil, notFound(err, "home", "", model.NewHomeNotFoundError)
	}
	return home, nil
}

// =====================================================
// HELPERS
// =====================================================

func (s *contentService) limit(requested int) int {
	return model.ClampLimit(requested, s.defaultLimit)
}

// notFound maps a lookup failure to a not-found error. Store failures are
// logged and reported the same way so pages fall back to their 404 state.
func notFound(err error, kind, slug string, build func(error) *apperror.Error) error {
	if !errors.Is(err, model.ErrContentNotFound) {
		logger.Warn("Content lookup degraded", map[string]interface{}{
			"content": kind,
			"slug":    slug,
			"error":   err.Error(),
		})
	}
	return build(err)
}

func logDegraded(kind string, err error) {
	logger.Warn("Content list degraded", map[string]interface{}{
		"content": kind,
		"error":   err.Error(),
	})
}
