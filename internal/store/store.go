package store

import (
	"context"
	"errors"
	"time"
)

// Object types stored in the content bucket.
const (
	TypeRecipe        = "recipes"
	TypeAuthor        = "authors"
	TypeCategory      = "categories"
	TypeHomePage      = "home"
	TypeRecipeRating  = "recipe-ratings"
	TypeRecipeComment = "recipe-comments"
)

const (
	SortCreatedAtAsc  = "created_at"
	SortCreatedAtDesc = "-created_at"

	MetadataKeyPrefix = "metadata."

	DefaultQueryLimit = 20
	MaxQueryLimit     = 1000
)

var (
	// ErrNotFound is returned when no object matches. Find may return it
	// instead of an empty slice; callers must treat both the same.
	ErrNotFound = errors.New("content object not found")
	// ErrConflict is returned when a write violates a store-side uniqueness rule.
	ErrConflict = errors.New("content object conflicts with an existing object")
	// ErrReadOnly is returned for writes when no write credential is configured.
	ErrReadOnly = errors.New("content store is read-only: write key not configured")
	// ErrUnavailable wraps transport failures and 5xx responses.
	ErrUnavailable = errors.New("content store unavailable")
)

// Object is one record in the content store. Metadata is the open bag the
// CMS stores per type; domain repositories decode it into typed records.
type Object struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Slug       string                 `json:"slug"`
	Title      string                 `json:"title"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
	ModifiedAt time.Time              `json:"modified_at"`
}

// Query selects objects of one type. Filter keys follow the bucket query
// language: "slug", "id" or "metadata.<field>". Values are compared for
// equality after string conversion.
type Query struct {
	Type   string
	Filter map[string]interface{}
	Sort   string
	Limit  int
	Depth  int
}

// NewObject is the payload of an insert.
type NewObject struct {
	Type     string
	Title    string
	Slug     string
	Metadata map[string]interface{}
}

// Patch is the payload of an update. Metadata keys are merged into the
// existing bag; keys not present are left untouched.
type Patch struct {
	Title    *string
	Metadata map[string]interface{}
}

// Client is the contract every content store backend satisfies.
type Client interface {
	Find(ctx context.Context, q Query) ([]Object, error)
	FindOne(ctx context.Context, q Query) (*Object, error)
	InsertOne(ctx context.Context, obj NewObject) (*Object, error)
	UpdateOne(ctx context.Context, id string, patch Patch) (*Object, error)
}

// EffectiveLimit clamps a requested limit into [1, MaxQueryLimit].
func (q Query) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return DefaultQueryLimit
	case q.Limit > MaxQueryLimit:
		return MaxQueryLimit
	default:
		return q.Limit
	}
}
