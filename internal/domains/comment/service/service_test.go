package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-site-backend/internal/domains/comment/model"
	"recipe-site-backend/internal/domains/comment/repository"
	"recipe-site-backend/internal/shared/apperror"
	"recipe-site-backend/internal/store"
	"recipe-site-backend/internal/store/memory"
)

type failingClient struct {
	err error
}

func (f failingClient) Find(context.Context, store.Query) ([]store.Object, error) {
	return nil, f.err
}

func (f failingClient) FindOne(context.Context, store.Query) (*store.Object, error) {
	return nil, f.err
}

func (f failingClient) InsertOne(context.Context, store.NewObject) (*store.Object, error) {
	return nil, f.err
}

func (f failingClient) UpdateOne(context.Context, string, store.Patch) (*store.Object, error) {
	return nil, f.err
}

// laxClient ignores every filter except type, like a store with a weak
// query language.
type laxClient struct {
	*memory.Store
}

func (l laxClient) Find(ctx context.Context, q store.Query) ([]store.Object, error) {
	return l.Store.Find(ctx, store.Query{Type: q.Type, Limit: q.Limit})
}

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(client store.Client) ServiceInterface {
	return NewCommentService(repository.NewStoreCommentRepository(client), 50)
}

func validRequest() model.SubmitCommentRequest {
	return model.SubmitCommentRequest{
		RecipeID:    "recipe-1",
		AuthorName:  "Ana",
		AuthorEmail: "ana@example.com",
		CommentText: "Lovely and easy.",
	}
}

func commentObject(id, recipeID string, status interface{}, created time.Time) store.Object {
	return store.Object{
		ID:        id,
		Type:      store.TypeRecipeComment,
		Title:     "Comment by " + id,
		CreatedAt: created,
		Metadata: map[string]interface{}{
			"recipe":       recipeID,
			"author_name":  id,
			"author_email": id + "@example.com",
			"comment_text": "text " + id,
			"status":       status,
		},
	}
}

// approve flips a comment to approved the way a moderator would.
func approve(t *testing.T, s *memory.Store, id string) {
	t.Helper()
	_, err := s.UpdateOne(context.Background(), id, store.Patch{
		Metadata: map[string]interface{}{"status": map[string]interface{}{"key": "approved", "value": "Approved"}},
	})
	require.NoError(t, err)
}

// =====================================================
// SUBMIT COMMENT
// =====================================================

func TestSubmitComment_CreatesPending(t *testing.T) {
	s := memory.New()
	svc := newService(s)

	rating := 4.0
	req := validRequest()
	req.Rating = &rating

	comment, err := svc.SubmitComment(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "Comment by Ana", comment.Title)
	assert.Equal(t, model.StatusPending, comment.Status)
	require.NotNil(t, comment.Rating)
	assert.Equal(t, 4, *comment.Rating)

	stored, err := s.FindOne(context.Background(), store.Query{Type: store.TypeRecipeComment})
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Metadata["status"])
	assert.Equal(t, "ana@example.com", stored.Metadata["author_email"])
}

func TestSubmitComment_StoresTextAsSent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"comparison", "x<y"},
		{"inline markup", "a <b>bold</b> tip"},
		{"escaped markup", "&lt;script&gt;alert(1)&lt;/script&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			req := validRequest()
			req.AuthorName = "  Ana "
			req.CommentText = " " + tt.text + " "

			comment, err := newService(s).SubmitComment(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "Ana", comment.AuthorName)
			assert.Equal(t, tt.text, comment.CommentText)

			stored, err := s.FindOne(context.Background(), store.Query{Type: store.TypeRecipeComment})
			require.NoError(t, err)
			assert.Equal(t, tt.text, stored.Metadata["comment_text"])
		})
	}
}

func TestSubmitComment_Validation(t *testing.T) {
	tooLong := make([]rune, model.MaxCommentTextLength+1)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	half, six := 2.5, 6.0

	tests := []struct {
		name   string
		mutate func(r *model.SubmitCommentRequest)
		code   string
		field  string
	}{
		{"missing recipe", func(r *model.SubmitCommentRequest) { r.RecipeID = " " }, model.ErrCodeMissingFields, "recipeId"},
		{"missing name", func(r *model.SubmitCommentRequest) { r.AuthorName = "" }, model.ErrCodeMissingFields, "author_name"},
		{"blank name", func(r *model.SubmitCommentRequest) { r.AuthorName = " \t " }, model.ErrCodeMissingFields, "author_name"},
		{"missing email", func(r *model.SubmitCommentRequest) { r.AuthorEmail = "" }, model.ErrCodeMissingFields, "author_email"},
		{"missing text", func(r *model.SubmitCommentRequest) { r.CommentText = "" }, model.ErrCodeMissingFields, "comment_text"},
		{"bad email", func(r *model.SubmitCommentRequest) { r.AuthorEmail = "ana@example" }, model.ErrCodeInvalidEmail, "author_email"},
		{"fractional rating", func(r *model.SubmitCommentRequest) { r.Rating = &half }, model.ErrCodeInvalidRating, "rating"},
		{"rating too high", func(r *model.SubmitCommentRequest) { r.Rating = &six }, model.ErrCodeInvalidRating, "rating"},
		{"text too long", func(r *model.SubmitCommentRequest) { r.CommentText = string(tooLong) }, model.ErrCodeTextTooLong, "comment_text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			req := validRequest()
			tt.mutate(&req)

			_, err := newService(s).SubmitComment(context.Background(), req)

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindInvalidArgument, appErr.Kind)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
			assert.Equal(t, 0, s.Count(store.Query{Type: store.TypeRecipeComment}))
		})
	}
}

func TestSubmitComment_WriteFailure(t *testing.T) {
	_, err := newService(failingClient{err: store.ErrUnavailable}).SubmitComment(context.Background(), validRequest())
	assert.True(t, apperror.Is(err, apperror.KindWriteFailed))

	_, err = newService(failingClient{err: store.ErrReadOnly}).SubmitComment(context.Background(), validRequest())
	assert.True(t, apperror.Is(err, apperror.KindConfiguration))
}

// =====================================================
// LIST APPROVED COMMENTS
// =====================================================

func TestListApprovedComments_ModerationGate(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	svc := newService(s)

	created, err := svc.SubmitComment(ctx, validRequest())
	require.NoError(t, err)

	result, err := svc.ListApprovedComments(ctx, "recipe-1")
	require.NoError(t, err)
	assert.Empty(t, result.Comments)
	assert.False(t, result.Degraded)

	approve(t, s, created.ID)

	result, err = svc.ListApprovedComments(ctx, "recipe-1")
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, created.ID, result.Comments[0].ID)
	assert.Equal(t, model.StatusApproved, result.Comments[0].Status)
}

func TestListApprovedComments_NewestFirst(t *testing.T) {
	s := memory.New()
	s.Seed(
		commentObject("c2", "recipe-1", "approved", t0.Add(2*time.Hour)),
		commentObject("c1", "recipe-1", "approved", t0.Add(1*time.Hour)),
		commentObject("c3", "recipe-1", map[string]interface{}{"key": "approved", "value": "Approved"}, t0.Add(3*time.Hour)),
		commentObject("p1", "recipe-1", "pending", t0.Add(4*time.Hour)),
		commentObject("x1", "recipe-1", "rejected", t0.Add(5*time.Hour)),
		commentObject("o1", "recipe-2", "approved", t0.Add(6*time.Hour)),
	)

	result, err := newService(s).ListApprovedComments(context.Background(), "recipe-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Comments))
	for _, c := range result.Comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c3", "c2", "c1"}, ids)
}

func TestListApprovedComments_LaxStoreIsRefiltered(t *testing.T) {
	s := memory.New()
	s.Seed(
		commentObject("a1", "recipe-1", "approved", t0.Add(1*time.Hour)),
		commentObject("p1", "recipe-1", "pending", t0.Add(2*time.Hour)),
		commentObject("a2", "recipe-1", "approved", t0.Add(3*time.Hour)),
	)

	result, err := newService(laxClient{Store: s}).ListApprovedComments(context.Background(), "recipe-1")
	require.NoError(t, err)
	require.Len(t, result.Comments, 2)
	assert.Equal(t, "a2", result.Comments[0].ID)
	assert.Equal(t, "a1", result.Comments[1].ID)
}

func TestListApprovedComments_StoreFailureDegrades(t *testing.T) {
	result, err := newService(failingClient{err: store.ErrUnavailable}).ListApprovedComments(context.Background(), "recipe-1")
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.ErrorIs(t, result.Cause, store.ErrUnavailable)
	assert.True(t, apperror.Is(result.Cause, apperror.KindReadDegraded))
	assert.NotNil(t, result.Comments)
	assert.Empty(t, result.Comments)
}

func TestListApprovedComments_NotFoundIsEmpty(t *testing.T) {
	result, err := newService(failingClient{err: store.ErrNotFound}).ListApprovedComments(context.Background(), "recipe-1")
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Comments)
}

func TestListApprovedComments_BlankID(t *testing.T) {
	_, err := newService(memory.New()).ListApprovedComments(context.Background(), "")
	assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
}
