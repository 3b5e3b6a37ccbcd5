// Package todo holds the Todo entity: an assignment bound to a course.
package todo

import "coursesync/internal/domain/course"

type SyncState = course.SyncState

const (
	StateSynced   = course.StateSynced
	StatePending  = course.StatePending
	StateConflict = course.StateConflict
)

// Todo is a single assignment or task tied to a course.
type Todo struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"course_id"`
	Title        string    `json:"title"`
	DueDate      string    `json:"due_date"`
	Status       string    `json:"status"`
	CompletedAt  *string   `json:"completed_at,omitempty"`
	IsArchived   bool      `json:"is_archived"`
	UpdatedAt    string    `json:"updated_at"`
	SyncState    SyncState `json:"sync_state"`
	LastSyncedAt *string   `json:"last_synced_at,omitempty"`
}

func (t Todo) Timestamp() string { return t.UpdatedAt }

// NewTodoRequest is the payload accepted by the create endpoint.
type NewTodoRequest struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
}

// UpdateTodoRequest is the payload accepted by the patch endpoint; every
// field is optional, only the set ones are applied.
type UpdateTodoRequest struct {
	Title   *string `json:"title,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Statuses the task manager recognizes, carried literally on the wire:
// not-started / in-progress / review / done. The remote's Status
// property is expected to carry the same vocabulary.
const (
	StatusNotStarted = "未着手"
	StatusInProgress = "進行中"
	StatusReview     = "最終確認"
	StatusDone       = "完了"
)
