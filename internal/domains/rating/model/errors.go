package model

import (
	"errors"

	"recipe-site-backend/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeMissingFields  = "RAT001"
	ErrCodeInvalidRating  = "RAT002"
	ErrCodeInvalidEmail   = "RAT003"
	ErrCodeInvalidName    = "RAT004"
	ErrCodeRecipeRequired = "RAT005"
	ErrCodeWriteFailed    = "RAT006"
	ErrCodeNotConfigured  = "RAT007"
	ErrCodeReadDegraded   = "RAT008"
)

// Errors
var (
	ErrRatingNotFound = errors.New("rating not found")
)

// Messages shown to clients
const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidRating  = "Rating must be an integer between 1 and 5"
	MsgInvalidEmail   = "Invalid email address"
	MsgInvalidName    = "User name must not exceed 100 characters"
	MsgRecipeRequired = "Recipe ID is required"
	MsgWriteFailed    = "Failed to submit rating, please try again"
	MsgNotConfigured  = "Rating submission is not configured"
	MsgReadDegraded   = "Ratings are temporarily unavailable"
)

// Error constructors
func NewRecipeIDRequiredError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeRecipeRequired, "recipeId", MsgRecipeRequired)
}

func NewMissingFieldError(field string) *apperror.Error {
	return apperror.InvalidArgument(ErrCodeMissingFields, field, MsgMissingFields)
}

func NewInvalidRatingError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeInvalidRating, "rating_value", MsgInvalidRating)
}

func NewInvalidEmailError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeInvalidEmail, "user_email", MsgInvalidEmail)
}

func NewInvalidNameError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeInvalidName, "user_name", MsgInvalidName)
}

func NewWriteFailedError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindWriteFailed, ErrCodeWriteFailed, MsgWriteFailed, err)
}

func NewNotConfiguredError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindConfiguration, ErrCodeNotConfigured, MsgNotConfigured, err)
}

func NewReadDegradedError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindReadDegraded, ErrCodeReadDegraded, MsgReadDegraded, err)
}
