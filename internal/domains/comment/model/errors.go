package model

import (
	"recipe-site-backend/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeMissingFields  = "CMT001"
	ErrCodeInvalidEmail   = "CMT002"
	ErrCodeInvalidRating  = "CMT003"
	ErrCodeNameTooLong    = "CMT004"
	ErrCodeTextTooLong    = "CMT005"
	ErrCodeRecipeRequired = "CMT006"
	ErrCodeWriteFailed    = "CMT007"
	ErrCodeNotConfigured  = "CMT008"
	ErrCodeReadDegraded   = "CMT009"
)

const (
	MsgMissingFields  = "Missing required fields"
	MsgInvalidEmail   = "Invalid email address"
	MsgInvalidRating  = "Rating must be an integer between 1 and 5"
	MsgNameTooLong    = "Author name must not exceed 100 characters"
	MsgTextTooLong    = "Comment must not exceed 2000 characters"
	MsgRecipeRequired = "Recipe ID is required"
	MsgWriteFailed    = "Failed to submit comment, please try again"
	MsgNotConfigured  = "Comment submission is not configured"
	MsgReadDegraded   = "Comments are temporarily unavailable"
)

// Error constructors
func NewMissingFieldError(field string) *apperror.Error {
	return apperror.InvalidArgument(ErrCodeMissingFields, field, MsgMissingFields)
}

func NewInvalidEmailError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeInvalidEmail, "author_email", MsgInvalidEmail)
}

func NewInvalidRatingError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeInvalidRating, "rating", MsgInvalidRating)
}

func NewNameTooLongError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeNameTooLong, "author_name", MsgNameTooLong)
}

func NewTextTooLongError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeTextTooLong, "comment_text", MsgTextTooLong)
}

func NewRecipeIDRequiredError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeRecipeRequired, "recipeId", MsgRecipeRequired)
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
