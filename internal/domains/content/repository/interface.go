package repository

import (
	"context"

	"recipe-site-backend/internal/domains/content/model"
)

// =====================================================
// CONTENT REPOSITORY INTERFACE
// =====================================================

// RecipeFilter narrows a recipe list to one category or one author.
// Empty fields do not filter.
type RecipeFilter struct {
	CategoryID string
	AuthorID   string
}

// ContentRepository reads the CMS-authored content types. Single-object
// lookups return model.ErrContentNotFound when nothing matches; lists
// return an empty slice.
type ContentRepository interface {
	ListRecipes(ctx context.Context, filter RecipeFilter, limit int) ([]*model.Recipe, error)
	FindRecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error)

	ListCategories(ctx context.Context, limit int) ([]*model.Category, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)

	ListAuthors(ctx context.Context, limit int) ([]*model.Author, error)
	FindAuthorBySlug(ctx context.Context, slug string) (*model.Author, error)

	FindHomePage(ctx context.Context) (*model.HomePage, error)
}
