package model

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Difficulty keys
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Metadata keys
const (
	MetaName                = "name"
	MetaDescription         = "description"
	MetaFeaturedImage       = "featured_image"
	MetaIngredients         = "ingredients"
	MetaInstructions        = "instructions"
	MetaPrepTime            = "prep_time"
	MetaCookTime            = "cook_time"
	MetaServings            = "servings"
	MetaDifficulty          = "difficulty"
	MetaAuthor              = "author"
	MetaCategories          = "categories"
	MetaPhoto               = "photo"
	MetaBio                 = "bio"
	MetaSpecialty           = "specialty"
	MetaWebsite             = "website"
	MetaSocialLinks         = "social_links"
	MetaImage               = "image"
	MetaHeroTitle           = "hero_title"
	MetaHeroDescription     = "hero_description"
	MetaHeroBackgroundImage = "hero_background_image"
)

// ClampLimit maps a requested list size into [1, MaxListLimit]. Zero or
// negative means fallback, which is clamped the same way.
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
