package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"recipe-site-backend/internal/shared/utils"
	"recipe-site-backend/internal/store"
)

// PostgreSQL error codes handled by the object store.
const (
	pgUniqueViolation      = "23505"
	pgInvalidTextRepresent = "22P02"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// =====================================================
// POSTGRES OBJECT STORE
// =====================================================

// ObjectStore implements store.Client on the content_objects table.
// Metadata lives in a JSONB column; the partial unique index on ratings
// turns duplicate (recipe, user_email) inserts into store.ErrConflict.
type ObjectStore struct {
	db querier
}

func NewObjectStore(db querier) *ObjectStore {
	return &ObjectStore{db: db}
}

func (s *ObjectStore) Find(ctx context.Context, q store.Query) ([]store.Object, error) {
	sql, args, err := buildFindQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	objs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.Object, error) {
		return scanObject(row)
	})
	if err != nil {
		return nil, mapError(ctx, err)
	}
	return objs, nil
}

func (s *ObjectStore) FindOne(ctx context.Context, q store.Query) (*store.Object, error) {
	q.Limit = 1
	objs, err := s.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, store.ErrNotFound
	}
	return &objs[0], nil
}

func (s *ObjectStore) InsertOne(ctx context.Context, in store.NewObject) (*store.Object, error) {
	if in.Type == "" || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("insert %q: type and title are required", in.Type)
	}

	id := uuid.NewString()
	slug := in.Slug
	if slug == "" {
		slug = fmt.Sprintf("%s-%s", utils.GenerateSlug(in.Title), id[:8])
	}
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	query := `
		INSERT INTO content_objects (id, type, slug, title, metadata)
		VALUES ($1::uuid, $2, $3, $4, $5)
		RETURNING ` + objectColumns

	obj, err := scanObject(s.db.QueryRow(ctx, query, id, in.Type, slug, in.Title, metadata))
	if err != nil {
		return nil, mapError(ctx, err)
	}
	return &obj, nil
}

func (s *ObjectStore) UpdateOne(ctx context.Context, id string, patch store.Patch) (*store.Object, error) {
	metadata := patch.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	query := `
		UPDATE content_objects
		SET title       = COALESCE($2, title),
		    metadata    = metadata || $3::jsonb,
		    modified_at = NOW()
		WHERE id = $1::uuid
		RETURNING ` + objectColumns

	obj, err := scanObject(s.db.QueryRow(ctx, query, id, patch.Title, metadata))
	if err != nil {
		return nil, mapError(ctx, err)
	}
	return &obj, nil
}

func scanObject(row pgx.Row) (store.Object, error) {
	var obj store.Object
	err := row.Scan(
		&obj.ID,
		&obj.Type,
		&obj.Slug,
		&obj.Title,
		&obj.Metadata,
		&obj.CreatedAt,
		&obj.ModifiedAt,
	)
	return obj, err
}

// mapError converts driver errors into store sentinels.
func mapError(ctx context.Context, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return store.ErrConflict
		case pgInvalidTextRepresent:
			// malformed uuid: no such object
			return store.ErrNotFound
		}
		return fmt.Errorf("postgres: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
