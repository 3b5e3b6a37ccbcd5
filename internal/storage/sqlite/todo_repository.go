package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursesync/internal/domain/todo"
)

// TodoRepository implements todo.Repository against the shared Store.
type TodoRepository struct {
	store *Store
}

func NewTodoRepository(store *Store) *TodoRepository {
	return &TodoRepository{store: store}
}

func (r *TodoRepository) List(ctx context.Context, includeArchived bool) ([]todo.Todo, error) {
	query := `
		SELECT id, course_id, title, due_date, status, completed_at,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM todos`
	if !includeArchived {
		query += " WHERE is_archived = 0"
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var out []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TodoRepository) Get(ctx context.Context, id string) (*todo.Todo, error) {
	row := r.store.db.QueryRowContext(ctx, `
		SELECT id, course_id, title, due_date, status, completed_at,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM todos WHERE id = ?`, id)

	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, todo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Insert(ctx context.Context, req todo.NewTodoRequest) (*todo.Todo, error) {
	now := time.Now().UTC().Format(timeLayout)
	t := todo.Todo{
		ID:         uuid.NewString(),
		CourseID:   req.CourseID,
		Title:      req.Title,
		DueDate:    req.DueDate,
		Status:     req.Status,
		IsArchived: false,
		UpdatedAt:  now,
		SyncState:  todo.StatePending,
	}

	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO todos
			(id, course_id, title, due_date, status, completed_at,
			 is_archived, updated_at, sync_state, last_synced_at)
		VALUES (?, ?, ?, ?, ?, NULL, 0, ?, ?, NULL)`,
		t.ID, t.CourseID, t.Title, t.DueDate, t.Status, t.UpdatedAt, t.SyncState)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, req todo.UpdateTodoRequest) (*todo.Todo, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.DueDate != nil {
		current.DueDate = *req.DueDate
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	current.UpdatedAt = time.Now().UTC().Format(timeLayout)
	current.SyncState = todo.StatePending

	_, err = r.store.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, due_date = ?, status = ?, updated_at = ?, sync_state = ?
		WHERE id = ?`,
		current.Title, current.DueDate, current.Status, current.UpdatedAt,
		current.SyncState, id)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return current, nil
}

func (r *TodoRepository) Archive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, true)
}

func (r *TodoRepository) Unarchive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, false)
}

func (r *TodoRepository) setArchived(ctx context.Context, id string, archived bool) error {
	now := time.Now().UTC().Format(timeLayout)
	res, err := r.store.db.ExecContext(ctx, `
		UPDATE todos SET is_archived = ?, updated_at = ?, sync_state = ? WHERE id = ?`,
		archived, now, todo.StatePending, id)
	if err != nil {
		return fmt.Errorf("set todo archived: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set todo archived: %w", err)
	}
	if n == 0 {
		return todo.ErrNotFound
	}
	return nil
}

func (r *TodoRepository) Upsert(ctx context.Context, t todo.Todo) (*todo.Todo, error) {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO todos
			(id, course_id, title, due_date, status, completed_at,
			 is_archived, updated_at, sync_state, last_synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			course_id = excluded.course_id,
			title = excluded.title,
			due_date = excluded.due_date,
			status = excluded.status,
			completed_at = excluded.completed_at,
			is_archived = excluded.is_archived,
			updated_at = excluded.updated_at,
			sync_state = excluded.sync_state,
			last_synced_at = excluded.last_synced_at`,
		t.ID, t.CourseID, t.Title, t.DueDate, t.Status, t.CompletedAt,
		t.IsArchived, t.UpdatedAt, t.SyncState, t.LastSyncedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) ListBySyncState(ctx context.Context, state todo.SyncState) ([]todo.Todo, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, course_id, title, due_date, status, completed_at,
		       is_archived, updated_at, sync_state, last_synced_at
		FROM todos WHERE sync_state = ?`, state)
	if err != nil {
		return nil, fmt.Errorf("list todos by sync state: %w", err)
	}
	defer rows.Close()

	var out []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TodoRepository) MarkSynced(ctx context.Context, id string, syncedAt string) error {
	_, err := r.store.db.ExecContext(ctx,
		`UPDATE todos SET sync_state = ?, last_synced_at = ? WHERE id = ?`,
		todo.StateSynced, syncedAt, id)
	if err != nil {
		return fmt.Errorf("mark todo synced: %w", err)
	}
	return nil
}

func (r *TodoRepository) ArchiveMissing(ctx context.Context, presentIDs map[string]struct{}) ([]string, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT id FROM todos WHERE is_archived = 0`)
	if err != nil {
		return nil, fmt.Errorf("scan todos for archival: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan todo id: %w", err)
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
			`UPDATE todos SET is_archived = 1, updated_at = ? WHERE id = ?`, now, id); err != nil {
			return nil, fmt.Errorf("archive todo %s: %w", id, err)
		}
	}
	return ids, nil
}

func (r *TodoRepository) ArchiveByCourseIDs(ctx context.Context, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return nil
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]any, 0, len(courseIDs)+1)
	now := time.Now().UTC().Format(timeLayout)
	args = append(args, now)
	for i, id := range courseIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		UPDATE todos SET is_archived = 1, updated_at = ?
		WHERE is_archived = 0 AND course_id IN (%s)`, strings.Join(placeholders, ","))

	if _, err := r.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archive todos by course: %w", err)
	}
	return nil
}

func scanTodo(row rowScanner) (todo.Todo, error) {
	var t todo.Todo
	if err := row.Scan(&t.ID, &t.CourseID, &t.Title, &t.DueDate, &t.Status,
		&t.CompletedAt, &t.IsArchived, &t.UpdatedAt, &t.SyncState,
		&t.LastSyncedAt); err != nil {
		return todo.Todo{}, err
	}
	return t, nil
}
