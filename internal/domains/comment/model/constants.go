package model

const (
	// Content limits, counted in runes after trimming
	MaxAuthorNameLength  = 100
	MaxCommentTextLength = 2000

	// Optional embedded rating
	MinRating = 1
	MaxRating = 5

	// Persisted metadata keys of a recipe-comments object
	MetaRecipe      = "recipe"
	MetaAuthorName  = "author_name"
	MetaAuthorEmail = "author_email"
	MetaCommentText = "comment_text"
	MetaRating      = "rating"
	MetaStatus      = "status"
)

// CommentStatus is the moderation state. New comments are always pending;
// moderators move them to approved or rejected in the content store.
type CommentStatus string

const (
	StatusPending  CommentStatus = "pending"
	StatusApproved CommentStatus = "approved"
	StatusRejected CommentStatus = "rejected"
)
