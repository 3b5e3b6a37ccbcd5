package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

func seedCourse(t *testing.T, store *Store) *course.Course {
	t.Helper()
	c, err := NewCourseRepository(store).Insert(context.Background(), course.NewCourseRequest{
		Title: "Algorithms", Semester: "Fall 2026", DayOfWeek: "Mon", Period: 2,
	})
	require.NoError(t, err)
	return c
}

func TestTodoRepository_InsertAndGet(t *testing.T) {
	store := newTestStore(t)
	c := seedCourse(t, store)
	repo := NewTodoRepository(store)
	ctx := context.Background()

	created, err := repo.Insert(ctx, todo.NewTodoRequest{
		CourseID: c.ID, Title: "Homework 1", DueDate: "2026-08-10", Status: todo.StatusNotStarted,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, todo.StatePending, created.SyncState)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
}

func TestTodoRepository_Get_NotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewTodoRepository(store)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, todo.ErrNotFound)
}

func TestTodoRepository_Update(t *testing.T) {
	store := newTestStore(t)
	c := seedCourse(t, store)
	repo := NewTodoRepository(store)
	ctx := context.Background()

	created, err := repo.Insert(ctx, todo.NewTodoRequest{
		CourseID: c.ID, Title: "Homework 1", DueDate: "2026-08-10", Status: todo.StatusNotStarted,
	})
	require.NoError(t, err)
	require.NoError(t, repo.MarkSynced(ctx, created.ID, "2026-08-02T00:00:00.000Z"))

	newTitle := "Homework 1 revised"
	newStatus := todo.StatusInProgress
	updated, err := repo.Update(ctx, created.ID, todo.UpdateTodoRequest{
		Title: &newTitle, Status: &newStatus,
	})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.Equal(t, todo.StatusInProgress, updated.Status)
	require.Equal(t, todo.StatePending, updated.SyncState)
}

func TestTodoRepository_Update_NotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewTodoRepository(store)

	title := "x"
	_, err := repo.Update(context.Background(), "missing", todo.UpdateTodoRequest{Title: &title})
	require.ErrorIs(t, err, todo.ErrNotFound)
}

func TestTodoRepository_ArchiveAndUnarchive(t *testing.T) {
	store := newTestStore(t)
	c := seedCourse(t, store)
	repo := NewTodoRepository(store)
	ctx := context.Background()

	created, err := repo.Insert(ctx, todo.NewTodoRequest{
		CourseID: c.ID, Title: "Homework 1", DueDate: "2026-08-10", Status: todo.StatusNotStarted,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Archive(ctx, created.ID))
	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.IsArchived)

	require.NoError(t, repo.Unarchive(ctx, created.ID))
	got, err = repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, got.IsArchived)
}

func TestTodoRepository_Archive_NotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewTodoRepository(store)

	require.ErrorIs(t, repo.Archive(context.Background(), "missing"), todo.ErrNotFound)
}

func TestTodoRepository_ArchiveByCourseIDs(t *testing.T) {
	store := newTestStore(t)
	c := seedCourse(t, store)
	repo := NewTodoRepository(store)
	ctx := context.Background()

	t1, err := repo.Insert(ctx, todo.NewTodoRequest{CourseID: c.ID, Title: "HW1", DueDate: "2026-08-10", Status: todo.StatusNotStarted})
	require.NoError(t, err)
	t2, err := repo.Insert(ctx, todo.NewTodoRequest{CourseID: c.ID, Title: "HW2", DueDate: "2026-08-17", Status: todo.StatusNotStarted})
	require.NoError(t, err)

	require.NoError(t, repo.ArchiveByCourseIDs(ctx, []string{c.ID}))

	got1, err := repo.Get(ctx, t1.ID)
	require.NoError(t, err)
	require.True(t, got1.IsArchived)

	got2, err := repo.Get(ctx, t2.ID)
	require.NoError(t, err)
	require.True(t, got2.IsArchived)
}

func TestTodoRepository_ListBySyncState(t *testing.T) {
	store := newTestStore(t)
	c := seedCourse(t, store)
	repo := NewTodoRepository(store)
	ctx := context.Background()

	_, err := repo.Insert(ctx, todo.NewTodoRequest{CourseID: c.ID, Title: "HW1", DueDate: "2026-08-10", Status: todo.StatusNotStarted})
	require.NoError(t, err)

	pending, err := repo.ListBySyncState(ctx, todo.StatePending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	synced, err := repo.ListBySyncState(ctx, todo.StateSynced)
	require.NoError(t, err)
	require.Len(t, synced, 0)
}
