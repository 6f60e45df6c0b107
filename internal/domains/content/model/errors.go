package model

import (
	"errors"

	"recipe-site-backend/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeSlugRequired     = "CNT001"
	ErrCodeRecipeNotFound   = "CNT002"
	ErrCodeAuthorNotFound   = "CNT003"
	ErrCodeCategoryNotFound = "CNT004"
	ErrCodeHomeNotFound     = "CNT005"
	ErrCodeReadDegraded     = "CNT006"
)

const (
	MsgSlugRequired     = "Slug is required"
	MsgRecipeNotFound   = "Recipe not found"
	MsgAuthorNotFound   = "Author not found"
	MsgCategoryNotFound = "Category not found"
	MsgHomeNotFound     = "Home page not found"
	MsgReadDegraded     = "Content is temporarily unavailable"
)

// Error constructors
func NewSlugRequiredError() *apperror.Error {
	return apperror.InvalidArgument(ErrCodeSlugRequired, "slug", MsgSlugRequired)
}

func NewRecipeNotFoundError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindNotFound, ErrCodeRecipeNotFound, MsgRecipeNotFound, err)
}

func NewAuthorNotFoundError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindNotFound, ErrCodeAuthorNotFound, MsgAuthorNotFound, err)
}

func NewCategoryNotFoundError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindNotFound, ErrCodeCategoryNotFound, MsgCategoryNotFound, err)
}

func NewHomeNotFoundError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindNotFound, ErrCodeHomeNotFound, MsgHomeNotFound, err)
}

func NewReadDegradedError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindReadDegraded, ErrCodeReadDegraded, MsgReadDegraded, err)
}

// IsDegraded reports whether a not-found error stands in for a failed read
// rather than a missing object.
func IsDegraded(err error) bool {
	return apperror.Is(err, apperror.KindNotFound) && !errors.Is(err, ErrContentNotFound)
}
