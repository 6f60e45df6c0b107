package model

const (
	// Rating bounds
	MinRating = 1
	MaxRating = 5

	MaxUserNameLength = 100

	// Persisted metadata keys of a recipe-ratings object
	MetaRecipe      = "recipe"
	MetaRatingValue = "rating_value"
	MetaUserEmail   = "user_email"
	MetaUserName    = "user_name"
)
