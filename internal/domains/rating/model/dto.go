package model

import (
	"errors"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipe-site-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// SubmitRatingRequest is the body of POST /api/ratings.
// RatingValue is a float so non-integer input can be rejected rather than
// truncated by the JSON decoder.
type SubmitRatingRequest struct {
	RecipeID    string   `json:"recipeId"`
	RatingValue *float64 `json:"rating_value"`
	UserEmail   string   `json:"user_email"`
	UserName    *string  `json:"user_name"`
}

// Normalize trims input. A blank display name is dropped.
func (r *SubmitRatingRequest) Normalize() {
	r.RecipeID = strings.TrimSpace(r.RecipeID)
	r.UserEmail = strings.TrimSpace(r.UserEmail)
	if r.UserName != nil {
		name := utils.CleanText(*r.UserName)
		if name == "" {
			r.UserName = nil
		} else {
			r.UserName = &name
		}
	}
}

// Value returns the validated integer rating.
func (r *SubmitRatingRequest) Value() int {
	if r.RatingValue == nil {
		return 0
	}
	return int(*r.RatingValue)
}

var errRatingOutOfRange = errors.New("must be an integer between 1 and 5")

// ratingInRange rejects fractions and values outside MinRating..MaxRating.
// Zero is checked here too: ozzo's Min treats zero values as empty.
func ratingInRange(value interface{}) error {
	v, ok := value.(*float64)
	if !ok || v == nil {
		return nil
	}
	f := *v
	if math.IsNaN(f) || f != math.Trunc(f) || f < MinRating || f > MaxRating {
		return errRatingOutOfRange
	}
	return nil
}

// Validate checks required fields first, then rating range, then email
// shape. The first violation is returned as an InvalidArgument error.
func (r SubmitRatingRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.RecipeID, validation.Required),
		validation.Field(&r.RatingValue,
			validation.NotNil,
			validation.By(ratingInRange),
		),
		validation.Field(&r.UserEmail,
			validation.Required,
			validation.Match(utils.EmailPattern),
		),
		validation.Field(&r.UserName, validation.RuneLength(0, MaxUserNameLength)),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	return firstViolation(r, errs)
}

// firstViolation maps ozzo field errors to domain errors in a fixed order.
func firstViolation(r SubmitRatingRequest, errs validation.Errors) error {
	// missing fields win over malformed ones
	if _, ok := errs["recipeId"]; ok {
		return NewMissingFieldError("recipeId")
	}
	if r.RatingValue == nil {
		return NewMissingFieldError("rating_value")
	}
	if r.UserEmail == "" {
		return NewMissingFieldError("user_email")
	}

	if _, ok := errs["rating_value"]; ok {
		return NewInvalidRatingError()
	}
	if _, ok := errs["user_email"]; ok {
		return NewInvalidEmailError()
	}
	if _, ok := errs["user_name"]; ok {
		return NewInvalidNameError()
	}
	return NewMissingFieldError("")
}
