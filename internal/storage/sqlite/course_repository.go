package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursesync/internal/domain/course"
)

// CourseRepository implements course.Repository against the shared
// Store.
type CourseRepository struct {
	store *Store
}

func NewCourseRepository(store *Store) *CourseRepository {
	return &CourseRepository{store: store}
}

func (r *CourseRepository) List(ctx context.Context, includeArchived bool) ([]course.Course, error) {
	query := `
		SELECT id, title, semester, day_of_week, period, room, instructor,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM courses`
	if !includeArchived {
		query += " WHERE is_archived = 0"
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var out []course.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) Get(ctx context.Context, id string) (*course.Course, error) {
	row := r.store.db.QueryRowContext(ctx, `
		SELECT id, title, semester, day_of_week, period, room, instructor,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM courses WHERE id = ?`, id)

	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, course.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Insert(ctx context.Context, req course.NewCourseRequest) (*course.Course, error) {
	now := time.Now().UTC().Format(timeLayout)
	c := course.Course{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Semester:   req.Semester,
		DayOfWeek:  req.DayOfWeek,
		Period:     req.Period,
		Room:       req.Room,
		Instructor: req.Instructor,
		IsArchived: false,
		UpdatedAt:  now,
		SyncState:  course.StatePending,
	}

	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO courses
			(id, title, semester, day_of_week, period, room, instructor,
			 is_archived, updated_at, sync_state, last_synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, NULL)`,
		c.ID, c.Title, c.Semester, c.DayOfWeek, c.Period, c.Room, c.Instructor,
		c.UpdatedAt, c.SyncState)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Upsert(ctx context.Context, c course.Course) (*course.Course, error) {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO courses
			(id, title, semester, day_of_week, period, room, instructor,
			 is_archived, updated_at, sync_state, last_synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			semester = excluded.semester,
			day_of_week = excluded.day_of_week,
			period = excluded.period,
			room = excluded.room,
			instructor = excluded.instructor,
			is_archived = excluded.is_archived,
			updated_at = excluded.updated_at,
			sync_state = excluded.sync_state,
			last_synced_at = excluded.last_synced_at`,
		c.ID, c.Title, c.Semester, c.DayOfWeek, c.Period, c.Room, c.Instructor,
		c.IsArchived, c.UpdatedAt, c.SyncState, c.LastSyncedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) ListBySyncState(ctx context.Context, state course.SyncState) ([]course.Course, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, title, semester, day_of_week, period, room, instructor,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM courses WHERE sync_state = ?`, state)
	if err != nil {
		return nil, fmt.Errorf("list courses by sync state: %w", err)
	}
	defer rows.Close()

	var out []course.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) MarkSynced(ctx context.Context, id string, syncedAt string) error {
	_, err := r.store.db.ExecContext(ctx,
		`UPDATE courses SET sync_state = ?, last_synced_at = ? WHERE id = ?`,
		course.StateSynced, syncedAt, id)
	if err != nil {
		return fmt.Errorf("mark course synced: %w", err)
	}
	return nil
}

func (r *CourseRepository) ArchiveMissing(ctx context.Context, presentIDs map[string]struct{}) ([]string, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id FROM courses WHERE is_archived = 0`)
	if err != nil {
		return nil, fmt.Errorf("scan courses for archival: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan course id: %w", err)
		}
		if _, ok := presentIDs[id]; !ok {
			ids = append(ids, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(timeLayout)
	for _, id := range ids {
		if _, err := r.store.db.ExecContext(ctx,
			`UPDATE courses SET is_archived = 1, updated_at = ? WHERE id = ?`, now, id); err != nil {
			return nil, fmt.Errorf("archive course %s: %w", id, err)
		}
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (course.Course, error) {
	var c course.Course
	if err := row.Scan(&c.ID, &c.Title, &c.Semester, &c.DayOfWeek, &c.Period,
		&c.Room, &c.Instructor, &c.IsArchived, &c.UpdatedAt, &c.SyncState,
		&c.LastSyncedAt); err != nil {
		return course.Course{}, err
	}
	return c, nil
}

const timeLayout = "2006-01-02T15:04:05.000Z"
