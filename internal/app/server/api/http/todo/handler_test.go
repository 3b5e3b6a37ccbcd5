package todo

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	tododomain "coursesync/internal/domain/todo"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, includeArchived bool) ([]tododomain.Todo, error) {
	args := m.Called(ctx, includeArchived)
	todos, _ := args.Get(0).([]tododomain.Todo)
	return todos, args.Error(1)
}

func (m *mockRepo) Get(ctx context.Context, id string) (*tododomain.Todo, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*tododomain.Todo)
	return t, args.Error(1)
}

func (m *mockRepo) Insert(ctx context.Context, req tododomain.NewTodoRequest) (*tododomain.Todo, error) {
	args := m.Called(ctx, req)
	t, _ := args.Get(0).(*tododomain.Todo)
	return t, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, req tododomain.UpdateTodoRequest) (*tododomain.Todo, error) {
	args := m.Called(ctx, id, req)
	t, _ := args.Get(0).(*tododomain.Todo)
	return t, args.Error(1)
}

func (m *mockRepo) Archive(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Unarchive(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Upsert(ctx context.Context, t tododomain.Todo) (*tododomain.Todo, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*tododomain.Todo)
	return out, args.Error(1)
}

func (m *mockRepo) ListBySyncState(ctx context.Context, state tododomain.SyncState) ([]tododomain.Todo, error) {
	args := m.Called(ctx, state)
	todos, _ := args.Get(0).([]tododomain.Todo)
	return todos, args.Error(1)
}

func (m *mockRepo) MarkSynced(ctx context.Context, id string, syncedAt string) error {
	return m.Called(ctx, id, syncedAt).Error(0)
}

func (m *mockRepo) ArchiveMissing(ctx context.Context, presentIDs map[string]struct{}) ([]string, error) {
	args := m.Called(ctx, presentIDs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockRepo) ArchiveByCourseIDs(ctx context.Context, courseIDs []string) error {
	return m.Called(ctx, courseIDs).Error(0)
}

func TestHandler_create_validates(t *testing.T) {
	repo := new(mockRepo)
	h := NewHandler(repo, slog.Default(), huma.Middlewares{})

	_, err := h.create(context.Background(), &createInput{Body: tododomain.NewTodoRequest{CourseID: ""}})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Insert")
}

func TestHandler_update_notFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, tododomain.ErrNotFound)

	h := NewHandler(repo, slog.Default(), huma.Middlewares{})

	_, err := h.update(context.Background(), &updateInput{ID: "missing"})
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestHandler_archive(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Archive", mock.Anything, "t1").Return(nil)

	h := NewHandler(repo, slog.Default(), huma.Middlewares{})

	out, err := h.archive(context.Background(), &archiveInput{ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, out.Status)
	repo.AssertExpectations(t)
}

func TestHandler_unarchive_notFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Unarchive", mock.Anything, "missing").Return(tododomain.ErrNotFound)

	h := NewHandler(repo, slog.Default(), huma.Middlewares{})

	_, err := h.unarchive(context.Background(), &archiveInput{ID: "missing"})
	assert.Error(t, err)
	repo.AssertExpectations(t)
}
