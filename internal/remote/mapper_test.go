package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

func ptrBool(b bool) *bool { return &b }

func TestCourseFromPage(t *testing.T) {
	p := page{
		ID: "page-1",
		Properties: map[string]propertyValue{
			"Name":       {Type: "title", Title: []richText{{PlainText: "Algorithms"}}},
			"Semester":   {Type: "multi_select", MultiSelect: []selectOption{{Name: "Fall 2026"}}},
			"Day":        {Type: "select", Select: &selectOption{Name: "Mon"}},
			"Period":     {Type: "multi_select", MultiSelect: []selectOption{{Name: "3"}}},
			"Room":       {Type: "rich_text", RichText: []richText{{PlainText: "B201"}}},
			"Instructor": {Type: "multi_select", MultiSelect: []selectOption{{Name: "Dr. Ada"}}},
		},
		LastEditedTime: "2026-08-01T00:00:00.000Z",
	}

	c, err := courseFromPage(p)
	require.NoError(t, err)
	assert.Equal(t, "page-1", c.ID)
	assert.Equal(t, "Algorithms", c.Title)
	assert.Equal(t, "Fall 2026", c.Semester)
	assert.Equal(t, "Mon", c.DayOfWeek)
	assert.Equal(t, 3, c.Period)
	require.NotNil(t, c.Room)
	assert.Equal(t, "B201", *c.Room)
	require.NotNil(t, c.Instructor)
	assert.Equal(t, "Dr. Ada", *c.Instructor)
	assert.Equal(t, "synced", string(c.SyncState))
}

func TestCourseFromPage_MissingTitle(t *testing.T) {
	_, err := courseFromPage(page{ID: "page-1", Properties: map[string]propertyValue{}})
	assert.Error(t, err)
}

func TestTodoFromPage(t *testing.T) {
	p := page{
		ID: "page-2",
		Properties: map[string]propertyValue{
			"todo_id":     {Type: "rich_text", RichText: []richText{{PlainText: "t1"}}},
			"Title":       {Type: "title", Title: []richText{{PlainText: "Homework 1"}}},
			"Due Date":    {Type: "date", Date: &dateValue{Start: "2026-08-10"}},
			"Status":      {Type: "status", Status: &selectOption{Name: "進行中"}},
			"Course":      {Type: "relation", Relation: []relation{{ID: "course-1"}}},
			"is_archived": {Type: "checkbox", Checkbox: ptrBool(false)},
		},
		LastEditedTime: "2026-08-02T00:00:00.000Z",
	}

	tdo, err := todoFromPage(p)
	require.NoError(t, err)
	assert.Equal(t, "t1", tdo.ID)
	assert.Equal(t, "course-1", tdo.CourseID)
	assert.Equal(t, "Homework 1", tdo.Title)
	assert.Equal(t, "2026-08-10", tdo.DueDate)
	assert.Equal(t, "進行中", tdo.Status)
	assert.False(t, tdo.IsArchived)
}

func TestCourseToProperties(t *testing.T) {
	room := "B201"
	c := course.Course{
		ID: "c1", Title: "Algorithms", Semester: "Fall 2026", DayOfWeek: "Mon",
		Period: 3, Room: &room,
	}

	props := courseToProperties(c)

	assert.Contains(t, props, "Name")
	assert.Contains(t, props, "Semester")
	assert.Contains(t, props, "Day")
	assert.Contains(t, props, "Period")
	assert.Contains(t, props, "Room")
	assert.NotContains(t, props, "Instructor")
}

func TestTodoToProperties(t *testing.T) {
	tdo := todo.Todo{ID: "t1", Title: "Homework 1", DueDate: "2026-08-10", Status: todo.StatusNotStarted}

	props := todoToProperties(tdo)

	assert.Contains(t, props, "Title")
	assert.Contains(t, props, "Due Date")
	assert.Contains(t, props, "Status")
	assert.Contains(t, props, "is_archived")
	assert.Contains(t, props, "todo_id")
}

func TestJoinedToMultiSelect(t *testing.T) {
	assert.Equal(t, []map[string]any{}, joinedToMultiSelect(""))
	assert.Equal(t, []map[string]any{{"name": "Ada"}, {"name": "Bo"}}, joinedToMultiSelect("Ada, Bo"))
}
