package sync

import (
	"context"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

// pullCourses fetches the remote course set once, reconciles it against
// a single snapshot of the local courses, and archives any local course
// no longer present remotely. It returns the ids it archived so the
// caller can cascade that archival to their todos.
func (r *Reconciler) pullCourses(ctx context.Context) (pulled, skipped int, archivedIDs []string, err error) {
	remoteCourses, err := r.remote.FetchCourses(ctx)
	if err != nil {
		return 0, 0, nil, err
	}

	localCourses, err := r.courses.List(ctx, true)
	if err != nil {
		return 0, 0, nil, err
	}
	localByID := make(map[string]course.Course, len(localCourses))
	for _, c := range localCourses {
		localByID[c.ID] = c
	}

	present := make(map[string]struct{}, len(remoteCourses))
	for _, rc := range remoteCourses {
		present[rc.ID] = struct{}{}

		local, exists := localByID[rc.ID]
		localPending := exists && local.SyncState == course.StatePending

		var action outcome
		if exists {
			action = resolve(true, localPending, local, rc)
		} else {
			action = resolve(false, false, course.Course{}, rc)
		}

		switch action {
		case outcomeSkip:
			skipped++
		case outcomePull:
			rc.SyncState = course.StateSynced
			if _, upsertErr := r.courses.Upsert(ctx, rc); upsertErr != nil {
				return pulled, skipped, nil, upsertErr
			}
			pulled++
		}
	}

	archivedIDs, err = r.courses.ArchiveMissing(ctx, present)
	if err != nil {
		return pulled, skipped, nil, err
	}
	return pulled, skipped, archivedIDs, nil
}

// pullTodos mirrors pullCourses for todos, then cascades archival from
// any course archived earlier in this cycle.
func (r *Reconciler) pullTodos(ctx context.Context, archivedCourseIDs []string) (pulled, skipped int, err error) {
	remoteTodos, err := r.remote.FetchTodos(ctx)
	if err != nil {
		return 0, 0, err
	}

	localTodos, err := r.todos.List(ctx, true)
	if err != nil {
		return 0, 0, err
	}
	localByID := make(map[string]todo.Todo, len(localTodos))
	for _, t := range localTodos {
		localByID[t.ID] = t
	}

	present := make(map[string]struct{}, len(remoteTodos))
	for _, rt := range remoteTodos {
		present[rt.ID] = struct{}{}

		local, exists := localByID[rt.ID]
		localPending := exists && local.SyncState == todo.StatePending

		var action outcome
		if exists {
			action = resolve(true, localPending, local, rt)
		} else {
			action = resolve(false, false, todo.Todo{}, rt)
		}

		switch action {
		case outcomeSkip:
			skipped++
		case outcomePull:
			rt.SyncState = todo.StateSynced
			if _, upsertErr := r.todos.Upsert(ctx, rt); upsertErr != nil {
				return pulled, skipped, upsertErr
			}
			pulled++
		}
	}

	if _, err := r.todos.ArchiveMissing(ctx, present); err != nil {
		return pulled, skipped, err
	}

	if len(archivedCourseIDs) > 0 {
		if err := r.todos.ArchiveByCourseIDs(ctx, archivedCourseIDs); err != nil {
			return pulled, skipped, err
		}
	}

	return pulled, skipped, nil
}
