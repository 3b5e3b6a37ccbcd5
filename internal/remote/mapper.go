package remote

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

// courseFromPage maps a remote page from the courses database into a
// Course, marking it synced since it was just read back from the
// source of truth.
func courseFromPage(p page) (course.Course, error) {
	title, err := propText(p, "Name")
	if err != nil {
		return course.Course{}, err
	}

	semester := strings.Join(propMultiSelect(p, "Semester"), ", ")
	dayOfWeek, _ := propSelect(p, "Day")

	period := 0
	if items := propMultiSelect(p, "Period"); len(items) > 0 {
		if n, err := strconv.Atoi(items[0]); err == nil {
			period = n
		}
	}

	room := optionalText(p, "Room")
	instructor := optionalJoinedMultiSelect(p, "Instructor")

	now := time.Now().UTC().Format(timeLayout)
	return course.Course{
		ID:           p.ID,
		Title:        title,
		Semester:     semester,
		DayOfWeek:    dayOfWeek,
		Period:       period,
		Room:         room,
		Instructor:   instructor,
		IsArchived:   p.Archived,
		UpdatedAt:    p.LastEditedTime,
		SyncState:    course.StateSynced,
		LastSyncedAt: &now,
	}, nil
}

// todoFromPage maps a remote page from the todos database into a Todo.
func todoFromPage(p page) (todo.Todo, error) {
	id := p.ID
	if v, err := propText(p, "todo_id"); err == nil && v != "" {
		id = v
	}

	title, err := propText(p, "Title")
	if err != nil {
		return todo.Todo{}, err
	}

	dueDate := time.Now().Local().Format("2006-01-02")
	if d, ok := propDate(p, "Due Date"); ok {
		// A date-time value keeps only its YYYY-MM-DD date part.
		if len(d) > len("2006-01-02") {
			d = d[:len("2006-01-02")]
		}
		dueDate = d
	}

	status := todo.StatusNotStarted
	if s, ok := propStatus(p, "Status"); ok {
		status = s
	}

	courseID, _ := propRelation(p, "Course")

	completedAt := optionalDate(p, "completed_at")

	isArchived := p.Archived
	if v, ok := propCheckbox(p, "is_archived"); ok {
		isArchived = v
	}

	now := time.Now().UTC().Format(timeLayout)
	return todo.Todo{
		ID:           id,
		CourseID:     courseID,
		Title:        title,
		DueDate:      dueDate,
		Status:       status,
		CompletedAt:  completedAt,
		IsArchived:   isArchived,
		UpdatedAt:    p.LastEditedTime,
		SyncState:    todo.StateSynced,
		LastSyncedAt: &now,
	}, nil
}

// courseToProperties builds the property payload for pushing a Course:
// the fields courseFromPage reads back, plus the course_id rich-text
// property that PushCourse uses to find the page again.
func courseToProperties(c course.Course) map[string]any {
	props := map[string]any{
		"Name": map[string]any{
			"title": []map[string]any{{"text": map[string]any{"content": c.Title}}},
		},
		"Semester": map[string]any{
			"multi_select": joinedToMultiSelect(c.Semester),
		},
		"course_id": map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": c.ID}}},
		},
	}
	if c.DayOfWeek != "" {
		props["Day"] = map[string]any{"select": map[string]any{"name": c.DayOfWeek}}
	}
	if c.Period > 0 {
		props["Period"] = map[string]any{
			"multi_select": []map[string]any{{"name": strconv.Itoa(c.Period)}},
		}
	}
	if c.Room != nil {
		props["Room"] = map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": *c.Room}}},
		}
	}
	if c.Instructor != nil {
		props["Instructor"] = map[string]any{
			"multi_select": joinedToMultiSelect(*c.Instructor),
		}
	}
	return props
}

// todoToProperties builds the property payload for pushing a Todo. The
// Course relation is only included by the caller when creating a new
// page, matching the remote's rule that relations are set once on
// creation.
func todoToProperties(t todo.Todo) map[string]any {
	return map[string]any{
		"Title": map[string]any{
			"title": []map[string]any{{"text": map[string]any{"content": t.Title}}},
		},
		"Due Date": map[string]any{
			"date": map[string]any{"start": t.DueDate},
		},
		"Status": map[string]any{
			"status": map[string]any{"name": t.Status},
		},
		"is_archived": map[string]any{
			"checkbox": t.IsArchived,
		},
		"todo_id": map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": t.ID}}},
		},
	}
}

func joinedToMultiSelect(joined string) []map[string]any {
	if joined == "" {
		return []map[string]any{}
	}
	parts := strings.Split(joined, ", ")
	out := make([]map[string]any, len(parts))
	for i, p := range parts {
		out[i] = map[string]any{"name": strings.TrimSpace(p)}
	}
	return out
}

func propText(p page, key string) (string, error) {
	prop, ok := p.Properties[key]
	if !ok {
		return "", fmt.Errorf("missing property: %s", key)
	}
	var parts []richText
	switch prop.Type {
	case "title":
		parts = prop.Title
	case "rich_text":
		parts = prop.RichText
	default:
		return "", fmt.Errorf("property %s is not text-like", key)
	}
	var b strings.Builder
	for _, rt := range parts {
		b.WriteString(rt.PlainText)
	}
	return b.String(), nil
}

func optionalText(p page, key string) *string {
	v, err := propText(p, key)
	if err != nil {
		return nil
	}
	return &v
}

func propSelect(p page, key string) (string, bool) {
	prop, ok := p.Properties[key]
	if !ok || prop.Select == nil {
		return "", false
	}
	return prop.Select.Name, true
}

func propMultiSelect(p page, key string) []string {
	prop, ok := p.Properties[key]
	if !ok {
		return nil
	}
	names := make([]string, len(prop.MultiSelect))
	for i, opt := range prop.MultiSelect {
		names[i] = opt.Name
	}
	return names
}

func optionalJoinedMultiSelect(p page, key string) *string {
	items := propMultiSelect(p, key)
	if items == nil {
		return nil
	}
	v := strings.Join(items, ", ")
	return &v
}

func propDate(p page, key string) (string, bool) {
	prop, ok := p.Properties[key]
	if !ok || prop.Date == nil {
		return "", false
	}
	return prop.Date.Start, true
}

func optionalDate(p page, key string) *string {
	v, ok := propDate(p, key)
	if !ok {
		return nil
	}
	return &v
}

func propRelation(p page, key string) (string, bool) {
	prop, ok := p.Properties[key]
	if !ok || len(prop.Relation) == 0 {
		return "", false
	}
	return prop.Relation[0].ID, true
}

func propStatus(p page, key string) (string, bool) {
	prop, ok := p.Properties[key]
	if !ok || prop.Status == nil {
		return "", false
	}
	return prop.Status.Name, true
}

func propCheckbox(p page, key string) (bool, bool) {
	prop, ok := p.Properties[key]
	if !ok || prop.Checkbox == nil {
		return false, false
	}
	return *prop.Checkbox, true
}

const timeLayout = "2006-01-02T15:04:05.000Z"
