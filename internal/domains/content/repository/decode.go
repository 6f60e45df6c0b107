package repository

import (
	"recipe-site-backend/internal/domains/content/model"
	"recipe-site-backend/internal/shared/utils"
	"recipe-site-backend/internal/store"
)

// =====================================================
// RECORD DECODERS
// =====================================================

func toRecipe(obj *store.Object) *model.Recipe {
	m := obj.Metadata
	recipe := &model.Recipe{
		ID:            obj.ID,
		Slug:          obj.Slug,
		Title:         obj.Title,
		Name:          store.MetaString(m, model.MetaName),
		Description:   store.MetaString(m, model.MetaDescription),
		FeaturedImage: toImage(m, model.MetaFeaturedImage),
		Ingredients:   utils.SanitizeHTML(store.MetaString(m, model.MetaIngredients)),
		Instructions:  utils.SanitizeHTML(store.MetaString(m, model.MetaInstructions)),
		Categories:    []*model.Category{},
	}
	recipe.PrepTime, _ = store.MetaInt(m, model.MetaPrepTime)
	recipe.CookTime, _ = store.MetaInt(m, model.MetaCookTime)
	recipe.Servings, _ = store.MetaInt(m, model.MetaServings)

	if d, ok := store.MetaObject(m, model.MetaDifficulty); ok {
		difficulty := &model.Difficulty{
			Key:   store.MetaString(d, "key"),
			Value: store.MetaString(d, "value"),
		}
		if difficulty.Validate() == nil {
			recipe.Difficulty = difficulty
		}
	}

	if ref, ok := refObject(m[model.MetaAuthor]); ok {
		recipe.Author = toAuthor(&ref)
	}
	for _, item := range store.MetaList(m, model.MetaCategories) {
		if ref, ok := refObject(item); ok {
			recipe.Categories = append(recipe.Categories, toCategory(&ref))
		}
	}
	return recipe
}

func toAuthor(obj *store.Object) *model.Author {
	m := obj.Metadata
	author := &model.Author{
		ID:        obj.ID,
		Slug:      obj.Slug,
		Title:     obj.Title,
		Name:      store.MetaString(m, model.MetaName),
		Photo:     toImage(m, model.MetaPhoto),
		Bio:       store.MetaString(m, model.MetaBio),
		Specialty: store.MetaString(m, model.MetaSpecialty),
		Website:   store.MetaString(m, model.MetaWebsite),
	}
	if links, ok := store.MetaObject(m, model.MetaSocialLinks); ok {
		author.SocialLinks = &model.SocialLinks{
			Instagram: store.MetaString(links, "instagram"),
			Facebook:  store.MetaString(links, "facebook"),
			LinkedIn:  store.MetaString(links, "linkedin"),
			YouTube:   store.MetaString(links, "youtube"),
			Twitter:   store.MetaString(links, "twitter"),
		}
	}
	return author
}

func toCategory(obj *store.Object) *model.Category {
	m := obj.Metadata
	return &model.Category{
		ID:          obj.ID,
		Slug:        obj.Slug,
		Title:       obj.Title,
		Name:        store.MetaString(m, model.MetaName),
		Description: store.MetaString(m, model.MetaDescription),
		Image:       toImage(m, model.MetaImage),
	}
}

func toHomePage(obj *store.Object) *model.HomePage {
	m := obj.Metadata
	return &model.HomePage{
		ID:                  obj.ID,
		Slug:                obj.Slug,
		Title:               obj.Title,
		HeroTitle:           store.MetaString(m, model.MetaHeroTitle),
		HeroDescription:     store.MetaString(m, model.MetaHeroDescription),
		HeroBackgroundImage: toImage(m, model.MetaHeroBackgroundImage),
	}
}

func toImage(m map[string]interface{}, key string) *model.Image {
	img, ok := store.MetaObject(m, key)
	if !ok {
		return nil
	}
	image := &model.Image{
		URL:      store.MetaString(img, "url"),
		ImgixURL: store.MetaString(img, "imgix_url"),
	}
	if image.URL == "" && image.ImgixURL == "" {
		return nil
	}
	return image
}

// refObject reads an object reference. Expanded references carry the
// referenced object; unexpanded ones are a bare id.
func refObject(v interface{}) (store.Object, bool) {
	switch ref := v.(type) {
	case string:
		if ref == "" {
			return store.Object{}, false
		}
		return store.Object{ID: ref}, true
	case map[string]interface{}:
		obj := store.Object{
			ID:    store.MetaString(ref, "id"),
			Type:  store.MetaString(ref, "type"),
			Slug:  store.MetaString(ref, "slug"),
			Title: store.MetaString(ref, "title"),
		}
		obj.Metadata, _ = store.MetaObject(ref, "metadata")
		return obj, obj.ID != ""
	}
	return store.Object{}, false
}
