package remote

import (
	"context"
	"sync"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

// FakeAdapter is an in-memory Adapter used by tests. With no fields set
// it behaves as the "empty" fake spec'd for the reconciler's first-run
// scenarios (every fetch returns nothing, every push succeeds silently).
// Populating Courses/Todos/PushErr turns it into the "programmable"
// fake used for conflict and failure scenarios.
type FakeAdapter struct {
	mu sync.Mutex

	Courses []course.Course
	Todos   []todo.Todo

	// PushErr, if set, is returned by every PushCourse/PushTodo call.
	PushErr error
	// FetchErr, if set, is returned by every Fetch call.
	FetchErr error

	// PushedCourses and PushedTodos record, in call order, every
	// record the reconciler attempted to push, for assertions on push
	// ordering and content.
	PushedCourses []course.Course
	PushedTodos   []todo.Todo
}

func NewFakeAdapter() *FakeAdapter {
	return &FakeAdapter{}
}

func (f *FakeAdapter) FetchCourses(ctx context.Context) ([]course.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	out := make([]course.Course, len(f.Courses))
	copy(out, f.Courses)
	return out, nil
}

func (f *FakeAdapter) FetchTodos(ctx context.Context) ([]todo.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	out := make([]todo.Todo, len(f.Todos))
	copy(out, f.Todos)
	return out, nil
}

func (f *FakeAdapter) PushCourse(ctx context.Context, c course.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PushErr != nil {
		return f.PushErr
	}
	f.PushedCourses = append(f.PushedCourses, c)
	return nil
}

func (f *FakeAdapter) PushTodo(ctx context.Context, t todo.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PushErr != nil {
		return f.PushErr
	}
	f.PushedTodos = append(f.PushedTodos, t)
	return nil
}
