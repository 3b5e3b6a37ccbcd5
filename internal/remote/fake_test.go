package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursesync/internal/domain/course"
)

func TestFakeAdapter_EmptyFetchesReturnNothing(t *testing.T) {
	f := NewFakeAdapter()

	courses, err := f.FetchCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)

	todos, err := f.FetchTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestFakeAdapter_PushRecordsCalls(t *testing.T) {
	f := NewFakeAdapter()
	c := course.Course{ID: "c1", Title: "Algorithms"}

	require.NoError(t, f.PushCourse(context.Background(), c))
	require.Len(t, f.PushedCourses, 1)
	assert.Equal(t, "c1", f.PushedCourses[0].ID)
}

func TestFakeAdapter_PushErrIsReturned(t *testing.T) {
	f := NewFakeAdapter()
	f.PushErr = errors.New("boom")

	err := f.PushCourse(context.Background(), course.Course{ID: "c1"})
	assert.ErrorIs(t, err, f.PushErr)
	assert.Empty(t, f.PushedCourses)
}

func TestFakeAdapter_FetchErrIsReturned(t *testing.T) {
	f := NewFakeAdapter()
	f.FetchErr = errors.New("unreachable")

	_, err := f.FetchCourses(context.Background())
	assert.ErrorIs(t, err, f.FetchErr)
}
