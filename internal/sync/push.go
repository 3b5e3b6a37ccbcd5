package sync

import (
	"context"
	"time"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

// pushLocalChanges pushes every course and todo whose sync_state is
// pending; synced and conflict rows are not pushed.
// A single record's push failure is logged and does not abort the
// cycle; it simply stays pending for the next attempt, per the engine's
// failure semantics.
func (r *Reconciler) pushLocalChanges(ctx context.Context) (coursesPushed, todosPushed int, err error) {
	pendingCourses, err := r.courses.ListBySyncState(ctx, course.StatePending)
	if err != nil {
		return 0, 0, err
	}
	for _, c := range pendingCourses {
		if pushErr := r.remote.PushCourse(ctx, c); pushErr != nil {
			r.log.Warn("failed to push course", "id", c.ID, "err", pushErr)
			continue
		}
		now := time.Now().UTC().Format(timeLayout)
		if markErr := r.courses.MarkSynced(ctx, c.ID, now); markErr != nil {
			r.log.Warn("failed to mark course synced", "id", c.ID, "err", markErr)
			continue
		}
		coursesPushed++
	}

	pendingTodos, err := r.todos.ListBySyncState(ctx, todo.StatePending)
	if err != nil {
		return coursesPushed, 0, err
	}
	for _, t := range pendingTodos {
		if pushErr := r.remote.PushTodo(ctx, t); pushErr != nil {
			r.log.Warn("failed to push todo", "id", t.ID, "err", pushErr)
			continue
		}
		now := time.Now().UTC().Format(timeLayout)
		if markErr := r.todos.MarkSynced(ctx, t.ID, now); markErr != nil {
			r.log.Warn("failed to mark todo synced", "id", t.ID, "err", markErr)
			continue
		}
		todosPushed++
	}

	return coursesPushed, todosPushed, nil
}

const timeLayout = "2006-01-02T15:04:05.000Z"
