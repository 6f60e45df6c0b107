package service

import (
	"context"

	"recipe-site-backend/internal/domains/content/model"
)

// =====================================================
// CONTENT SERVICE INTERFACE
// =====================================================

// ServiceInterface serves the read-only site content. Lists degrade to an
// empty result when the store fails; single lookups report not found.
type ServiceInterface interface {
	ListRecipes(ctx context.Context, limit int) (*model.ListResult[*model.Recipe], error)
	GetRecipe(ctx context.Context, slug string) (*model.Recipe, error)
	ListRecipesByCategory(ctx context.Context, categorySlug string, limit int) (*model.ListResult[*model.Recipe], error)
	ListRecipesByAuthor(ctx context.Context, authorSlug string, limit int) (*model.ListResult[*model.Recipe], error)

	ListCategories(ctx context.Context, limit int) (*model.ListResult[*model.Category], error)
	GetCategory(ctx context.Context, slug string) (*model.Category, error)

	ListAuthors(ctx context.Context, limit int) (*model.ListResult[*model.Author], error)
	GetAuthor(ctx context.Context, slug string) (*model.Author, error)

	GetHomePage(ctx context.Context) (*model.HomePage, error)
}
