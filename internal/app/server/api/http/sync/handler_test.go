package sync

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"coursesync/internal/config"
	"coursesync/internal/migration"
	"coursesync/internal/remote"
	"coursesync/internal/storage/sqlite"
	syncengine "coursesync/internal/sync"
)

func newTestReconciler(t *testing.T) *syncengine.Reconciler {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "coursesync_test.db")
	store, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	migrationsDir := filepath.Join("..", "..", "..", "..", "..", "storage", "sqlite", "migrations")
	mg := migration.NewMigration(&config.Config{DB: config.DB{Migrations: migrationsDir}})
	require.NoError(t, mg.Up(store.DB()))

	return syncengine.NewReconciler(
		sqlite.NewCourseRepository(store),
		sqlite.NewTodoRepository(store),
		remote.NewFakeAdapter(),
		slog.Default(),
	)
}

func TestHandler_run(t *testing.T) {
	h := NewHandler(newTestReconciler(t), slog.Default(), huma.Middlewares{})

	out, err := h.run(context.Background(), &runInput{})
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestHandler_status(t *testing.T) {
	h := NewHandler(newTestReconciler(t), slog.Default(), huma.Middlewares{})

	out, err := h.status(context.Background(), &statusInput{})
	require.NoError(t, err)
	require.False(t, out.Body.Syncing)
	require.Empty(t, out.Body.LastSyncedAt)
}

func TestHandler_status_afterRun(t *testing.T) {
	h := NewHandler(newTestReconciler(t), slog.Default(), huma.Middlewares{})

	_, err := h.run(context.Background(), &runInput{})
	require.NoError(t, err)

	out, err := h.status(context.Background(), &statusInput{})
	require.NoError(t, err)
	require.NotEmpty(t, out.Body.LastSyncedAt)
}
