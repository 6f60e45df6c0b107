package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrContentNotFound is returned by repositories when no object matches.
var ErrContentNotFound = errors.New("content not found")

// Validate checks a decoded recipe record. Records that fail are skipped
// by list reads rather than served half-formed.
func (r Recipe) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.PrepTime, validation.Min(0)),
		validation.Field(&r.CookTime, validation.Min(0)),
		validation.Field(&r.Servings, validation.Min(0)),
		validation.Field(&r.Difficulty),
	)
}

func (d Difficulty) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Key, validation.Required, validation.In(DifficultyEasy, DifficultyMedium, DifficultyHard)),
	)
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
		validation.Field(&a.Slug, validation.Required),
	)
}

func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Slug, validation.Required),
	)
}
