package model

import (
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipe-site-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// SubmitCommentRequest is the body of POST /api/comments. There is no
// status field: any status sent by the client is dropped by the decoder.
type SubmitCommentRequest struct {
	RecipeID    string   `json:"recipeId"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	CommentText string   `json:"comment_text"`
	Rating      *float64 `json:"rating"`
}

// Normalize trims every field. Free text is stored as sent.
func (r *SubmitCommentRequest) Normalize() {
	r.RecipeID = strings.TrimSpace(r.RecipeID)
	r.AuthorEmail = strings.TrimSpace(r.AuthorEmail)
	r.AuthorName = utils.CleanText(r.AuthorName)
	r.CommentText = utils.CleanText(r.CommentText)
}

// RatingValue returns the validated optional rating.
func (r *SubmitCommentRequest) RatingValue() *int {
	if r.Rating == nil {
		return nil
	}
	v := int(*r.Rating)
	return &v
}

func validRating(value interface{}) error {
	v, _ := value.(*float64)
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v != math.Trunc(*v) || *v < MinRating || *v > MaxRating {
		return validation.NewError("validation_rating", MsgInvalidRating)
	}
	return nil
}

// Validate reports the first violation in field order: required fields,
// email shape, rating, then lengths.
func (r SubmitCommentRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"recipeId", r.RecipeID},
		{"author_name", r.AuthorName},
		{"author_email", r.AuthorEmail},
		{"comment_text", r.CommentText},
	}
	for _, f := range required {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			return NewMissingFieldError(f.field)
		}
	}

	if err := validation.Validate(r.AuthorEmail, validation.Match(utils.EmailPattern)); err != nil {
		return NewInvalidEmailError()
	}
	if err := validation.Validate(r.Rating, validation.By(validRating)); err != nil {
		return NewInvalidRatingError()
	}
	if err := validation.Validate(r.AuthorName, validation.RuneLength(1, MaxAuthorNameLength)); err != nil {
		return NewNameTooLongError()
	}
	if err := validation.Validate(r.CommentText, validation.RuneLength(1, MaxCommentTextLength)); err != nil {
		return NewTextTooLongError()
	}
	return nil
}
