package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
	"coursesync/internal/remote"
)

// Reconciler drives the push-then-pull cycle described by the engine:
// local pending edits go out first, then courses and todos are pulled
// back in, cascading archival from courses to their todos.
type Reconciler struct {
	courses course.Repository
	todos   todo.Repository
	remote  remote.Adapter
	log     *slog.Logger

	mu        sync.Mutex
	isSyncing bool
	lastSync  time.Time
}

func NewReconciler(courses course.Repository, todos todo.Repository, adapter remote.Adapter, log *slog.Logger) *Reconciler {
	return &Reconciler{
		courses: courses,
		todos:   todos,
		remote:  adapter,
		log:     log,
	}
}

// SyncAll runs one full reconciliation cycle. Only one cycle runs at a
// time per Reconciler; a concurrent call returns ErrSyncInProgress
// instead of blocking, so a manual /sync request never queues up behind
// the scheduler's background cycle.
func (r *Reconciler) SyncAll(ctx context.Context) (Stats, error) {
	r.mu.Lock()
	if r.isSyncing {
		r.mu.Unlock()
		return Stats{}, ErrSyncInProgress
	}
	r.isSyncing = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.isSyncing = false
		r.lastSync = time.Now()
		r.mu.Unlock()
	}()

	var stats Stats

	r.log.Info("sync: starting")

	pushedCourses, pushedTodos, err := r.pushLocalChanges(ctx)
	if err != nil {
		return stats, fmt.Errorf("push local changes: %w", err)
	}
	stats.CoursesPushed = pushedCourses
	stats.TodosPushed = pushedTodos
	r.log.Info("sync: pushed local changes", "courses", pushedCourses, "todos", pushedTodos)

	pulledCourses, skippedCourses, archivedCourseIDs, err := r.pullCourses(ctx)
	if err != nil {
		return stats, fmt.Errorf("pull courses: %w", err)
	}
	stats.CoursesPulled = pulledCourses
	stats.CoursesSkipped = skippedCourses
	r.log.Info("sync: pulled courses", "pulled", pulledCourses, "skipped", skippedCourses)

	pulledTodos, skippedTodos, err := r.pullTodos(ctx, archivedCourseIDs)
	if err != nil {
		return stats, fmt.Errorf("pull todos: %w", err)
	}
	stats.TodosPulled = pulledTodos
	stats.TodosSkipped = skippedTodos
	r.log.Info("sync: pulled todos", "pulled", pulledTodos, "skipped", skippedTodos)

	r.log.Info("sync: completed", "stats", stats)
	return stats, nil
}

// IsSyncing reports whether a cycle is currently running.
func (r *Reconciler) IsSyncing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isSyncing
}

// LastSync returns the time the most recent cycle finished, the zero
// value if none has run yet.
func (r *Reconciler) LastSync() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSync
}
