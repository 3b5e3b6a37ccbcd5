package sync

// Stats summarizes one reconciliation cycle, returned to callers of the
// HTTP surface and logged by the scheduler.
type Stats struct {
	CoursesPushed  int `json:"courses_pushed"`
	CoursesPulled  int `json:"courses_pulled"`
	CoursesSkipped int `json:"courses_skipped"`
	TodosPushed    int `json:"todos_pushed"`
	TodosPulled    int `json:"todos_pulled"`
	TodosSkipped   int `json:"todos_skipped"`
}
