package model

import (
	"time"
)

// RecipeComment is moderated free-text feedback on a recipe.
// AuthorEmail is stored but never serialised to clients.
type RecipeComment struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	RecipeID    string        `json:"recipe"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail string        `json:"-"`
	CommentText string        `json:"comment_text"`
	Rating      *int          `json:"rating,omitempty"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (c *RecipeComment) IsApproved() bool {
	return c.Status == StatusApproved
}

// CommentTitle builds the display title of a new comment.
func CommentTitle(authorName string) string {
	return "Comment by " + authorName
}

// CommentListResult is the approved comments of a recipe. Degraded is set
// when the store could not be read and Comments is empty as a fallback.
type CommentListResult struct {
	Comments []*RecipeComment
	Degraded bool
	Cause    error
}
