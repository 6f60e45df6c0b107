package repository

import (
	"context"
	"errors"
	"fmt"

	"recipe-site-backend/internal/domains/content/model"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/pkg/logger"
)

// referenceDepth asks the store to expand one level of object references.
const referenceDepth = 1

// storeContentRepository reads recipes, authors, categories and the home
// page from the content store.
type storeContentRepository struct {
	client store.Client
}

func NewStoreContentRepository(client store.Client) ContentRepository {
	return &storeContentRepository{client: client}
}

// =====================================================
// RECIPES
// =====================================================

func (r *storeContentRepository) ListRecipes(ctx context.Context, filter RecipeFilter, limit int) ([]*model.Recipe, error) {
	q := store.Query{
		Type:   store.TypeRecipe,
		Filter: map[string]interface{}{},
		Limit:  limit,
		Depth:  referenceDepth,
	}
	if filter.CategoryID != "" {
		q.Filter[store.MetadataKeyPrefix+model.MetaCategories] = filter.CategoryID
	}
	if filter.AuthorID != "" {
		q.Filter[store.MetadataKeyPrefix+model.MetaAuthor] = filter.AuthorID
	}

	objs, err := r.find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*model.Recipe, 0, len(objs))
	for i := range objs {
		recipe := toRecipe(&objs[i])
		if err := recipe.Validate(); err != nil {
			logger.Warn("Skipped invalid recipe record", map[string]interface{}{
				"id":    objs[i].ID,
				"error": err.Error(),
			})
			continue
		}
		recipes = append(recipes, recipe)
	}

	r.expandReferences(ctx, recipes)
	return recipes, nil
}

func (r *storeContentRepository) FindRecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	obj, err := r.findOne(ctx, store.TypeRecipe, "slug", slug)
	if err != nil {
		return nil, err
	}

	recipe := toRecipe(obj)
	r.expandReferences(ctx, []*model.Recipe{recipe})
	return recipe, nil
}

// expandReferences fills author and category references that the backend
// returned as bare ids. Lookups that fail leave the id-only reference.
func (r *storeContentRepository) expandReferences(ctx context.Context, recipes []*model.Recipe) {
	authors := map[string]*model.Author{}
	categories := map[string]*model.Category{}

	for _, recipe := range recipes {
		if recipe.Author != nil && recipe.Author.IsStub() {
			id := recipe.Author.ID
			if _, seen := authors[id]; !seen {
				authors[id] = r.lookupAuthor(ctx, id)
			}
			if a := authors[id]; a != nil {
				recipe.Author = a
			}
		}

		for i, category := range recipe.Categories {
			if !category.IsStub() {
				continue
			}
			id := category.ID
			if _, seen := categories[id]; !seen {
				categories[id] = r.lookupCategory(ctx, id)
			}
			if c := categories[id]; c != nil {
				recipe.Categories[i] = c
			}
		}
	}
}

func (r *storeContentRepository) lookupAuthor(ctx context.Context, id string) *model.Author {
	obj, err := r.findOne(ctx, store.TypeAuthor, "id", id)
	if err != nil {
		logReferenceMiss(store.TypeAuthor, id, err)
		return nil
	}
	return toAuthor(obj)
}

func (r *storeContentRepository) lookupCategory(ctx context.Context, id string) *model.Category {
	obj, err := r.findOne(ctx, store.TypeCategory, "id", id)
	if err != nil {
		logReferenceMiss(store.TypeCategory, id, err)
		return nil
	}
	return toCategory(obj)
}

func logReferenceMiss(objectType, id string, err error) {
	if errors.Is(err, model.ErrContentNotFound) {
		return
	}
	logger.Warn("Failed to expand reference", map[string]interface{}{
		"type":  objectType,
		"id":    id,
		"error": err.Error(),
	})
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *storeContentRepository) ListCategories(ctx context.Context, limit int) ([]*model.Category, error) {
	objs, err := r.find(ctx, store.Query{Type: store.TypeCategory, Limit: limit, Depth: referenceDepth})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*model.Category, 0, len(objs))
	for i := range objs {
		category := toCategory(&objs[i])
		if err := category.Validate(); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *storeContentRepository) FindCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	obj, err := r.findOne(ctx, store.TypeCategory, "slug", slug)
	if err != nil {
		return nil, err
	}
	return toCategory(obj), nil
}

// =====================================================
// AUTHORS
// =====================================================

func (r *storeContentRepository) ListAuthors(ctx context.Context, limit int) ([]*model.Author, error) {
	objs, err := r.find(ctx, store.Query{Type: store.TypeAuthor, Limit: limit, Depth: referenceDepth})
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors := make([]*model.Author, 0, len(objs))
	for i := range objs {
		author := toAuthor(&objs[i])
		if err := author.Validate(); err != nil {
			continue
		}
		authors = append(authors, author)
	}
	return authors, nil
}

func (r *storeContentRepository) FindAuthorBySlug(ctx context.Context, slug string) (*model.Author, error) {
	obj, err := r.findOne(ctx, store.TypeAuthor, "slug", slug)
	if err != nil {
		return nil, err
	}
	return toAuthor(obj), nil
}

// =====================================================
// HOME PAGE
// =====================================================

func (r *storeContentRepository) FindHomePage(ctx context.Context) (*model.HomePage, error) {
	obj, err := r.client.FindOne(ctx, store.Query{Type: store.TypeHomePage, Depth: referenceDepth})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get home page: %w", err)
	}
	return toHomePage(obj), nil
}

// =====================================================
// HELPERS
// =====================================================

// find treats ErrNotFound as an empty result.
func (r *storeContentRepository) find(ctx context.Context, q store.Query) ([]store.Object, error) {
	objs, err := r.client.Find(ctx, q)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []store.Object{}, nil
		}
		return nil, err
	}
	return objs, nil
}

func (r *storeContentRepository) findOne(ctx context.Context, objectType, key, value string) (*store.Object, error) {
	obj, err := r.client.FindOne(ctx, store.Query{
		Type:   objectType,
		Filter: map[string]interface{}{key: value},
		Depth:  referenceDepth,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get %s by %s: %w", objectType, key, err)
	}
	return obj, nil
}
