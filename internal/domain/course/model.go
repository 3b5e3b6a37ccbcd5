// Package course holds the Course entity: the master record a set of
// todos hang off of.
package course

// SyncState tracks where a row stands relative to the remote.
type SyncState string

const (
	StateSynced   SyncState = "synced"
	StatePending  SyncState = "pending"
	StateConflict SyncState = "conflict"
)

// Course is a single class a student is taking in a given semester.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Semester     string    `json:"semester"`
	DayOfWeek    string    `json:"day_of_week"`
	Period       int       `json:"period"`
	Room         *string   `json:"room,omitempty"`
	Instructor   *string   `json:"instructor,omitempty"`
	IsArchived   bool      `json:"is_archived"`
	UpdatedAt    string    `json:"updated_at"`
	SyncState    SyncState `json:"sync_state"`
	LastSyncedAt *string   `json:"last_synced_at,omitempty"`
}

// Timestamp satisfies sync.Timestamped so the reconciler can compare
// local and remote copies without importing this package's fields
// directly.
func (c Course) Timestamp() string { return c.UpdatedAt }

// NewCourseRequest is the payload accepted by the create endpoint.
type NewCourseRequest struct {
	Title      string  `json:"title"`
	Semester   string  `json:"semester"`
	DayOfWeek  string  `json:"day_of_week"`
	Period     int     `json:"period"`
	Room       *string `json:"room,omitempty"`
	Instructor *string `json:"instructor,omitempty"`
}
