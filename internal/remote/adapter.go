// Package remote implements the Remote Adapter: the only component
// that is allowed to know the wire shape of the workspace-database
// service. Everything above this package speaks in terms of
// course.Course and todo.Todo.
package remote

import (
	"context"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

// Adapter is the capability boundary the reconciler depends on. No
// caller outside this package may reach for net/http or any
// remote-specific type.
type Adapter interface {
	FetchCourses(ctx context.Context) ([]course.Course, error)
	FetchTodos(ctx context.Context) ([]todo.Todo, error)
	PushCourse(ctx context.Context, c course.Course) error
	PushTodo(ctx context.Context, t todo.Todo) error
}
