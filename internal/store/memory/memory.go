package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipe-site-backend/internal/shared/utils"
	"recipe-site-backend/internal/store"
)

// Store is an in-process store.Client. Objects are kept in insertion order
// so queries without an explicit sort are deterministic.
type Store struct {
	mu      sync.RWMutex
	objects []store.Object
	unique  map[string][]string // type -> metadata keys that must be unique together
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the creation/modification timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithUniqueMetadata rejects inserts of objType whose metadata values for
// keys collide with an existing object of the same type.
func WithUniqueMetadata(objType string, keys ...string) Option {
	return func(s *Store) { s.unique[objType] = keys }
}

func New(opts ...Option) *Store {
	s := &Store{
		unique: make(map[string][]string),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed inserts fully formed objects as-is. Missing IDs are generated.
func (s *Store) Seed(objs ...store.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, obj := range objs {
		if obj.ID == "" {
			obj.ID = uuid.NewString()
		}
		if obj.CreatedAt.IsZero() {
			obj.CreatedAt = s.now()
		}
		if obj.ModifiedAt.IsZero() {
			obj.ModifiedAt = obj.CreatedAt
		}
		obj.Metadata = copyMap(obj.Metadata)
		s.objects = append(s.objects, obj)
	}
}

// Count returns the number of stored objects matching q, ignoring limits.
func (s *Store) Count(q store.Query) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, obj := range s.objects {
		if store.Matches(obj, q) {
			n++
		}
	}
	return n
}

func (s *Store) Find(ctx context.Context, q store.Query) ([]store.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := make([]store.Object, 0)
	for _, obj := range s.objects {
		if store.Matches(obj, q) {
			matched = append(matched, cloneObject(obj))
		}
	}
	s.mu.RUnlock()

	store.SortObjects(matched, q.Sort)

	if limit := q.EffectiveLimit(); len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) FindOne(ctx context.Context, q store.Query) (*store.Object, error) {
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

func (s *Store) InsertOne(ctx context.Context, in store.NewObject) (*store.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in.Type == "" || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("insert %q: type and title are required", in.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.violatesUnique(in) {
		return nil, store.ErrConflict
	}

	now := s.now()
	id := uuid.NewString()
	slug := in.Slug
	if slug == "" {
		slug = fmt.Sprintf("%s-%s", utils.GenerateSlug(in.Title), id[:8])
	}

	obj := store.Object{
		ID:         id,
		Type:       in.Type,
		Slug:       slug,
		Title:      in.Title,
		Metadata:   copyMap(in.Metadata),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	s.objects = append(s.objects, obj)

	out := cloneObject(obj)
	return &out, nil
}

func (s *Store) UpdateOne(ctx context.Context, id string, patch store.Patch) (*store.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.objects {
		if s.objects[i].ID != id {
			continue
		}

		obj := &s.objects[i]
		if patch.Title != nil {
			obj.Title = *patch.Title
		}
		if obj.Metadata == nil {
			obj.Metadata = make(map[string]interface{})
		}
		for k, v := range patch.Metadata {
			obj.Metadata[k] = copyValue(v)
		}
		obj.ModifiedAt = s.now()

		out := cloneObject(*obj)
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) violatesUnique(in store.NewObject) bool {
	keys, ok := s.unique[in.Type]
	if !ok {
		return false
	}

	filter := make(map[string]interface{}, len(keys))
	for _, k := range keys {
		filter[store.MetadataKeyPrefix+k] = in.Metadata[k]
	}
	q := store.Query{Type: in.Type, Filter: filter}

	for _, obj := range s.objects {
		if store.Matches(obj, q) {
			return true
		}
	}
	return false
}

func cloneObject(obj store.Object) store.Object {
	obj.Metadata = copyMap(obj.Metadata)
	return obj
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return copyMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}
