package todo

import "context"

// Repository is the storage-facing contract the rest of the engine
// depends on.
type Repository interface {
	// List returns non-archived todos ordered by most recently updated
	// first, unless includeArchived is set.
	List(ctx context.Context, includeArchived bool) ([]Todo, error)

	// Get fetches a single todo by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Todo, error)

	// Insert creates a new todo from a validated request.
	Insert(ctx context.Context, req NewTodoRequest) (*Todo, error)

	// Update applies a patch to an existing todo, stamping updated_at
	// and flipping sync_state back to pending. Returns ErrNotFound if
	// the id does not exist.
	Update(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error)

	// Archive marks a todo archived; Unarchive reverses it. Both stamp
	// updated_at and flip sync_state to pending.
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error

	// Upsert writes a todo as returned by the remote adapter.
	Upsert(ctx context.Context, t Todo) (*Todo, error)

	// ListBySyncState returns every todo currently in the given state.
	ListBySyncState(ctx context.Context, state SyncState) ([]Todo, error)

	// MarkSynced flips a todo to synced and stamps last_synced_at.
	MarkSynced(ctx context.Context, id string, syncedAt string) error

	// ArchiveMissing marks every non-archived todo whose id is not in
	// presentIDs as archived, and returns the ids it archived.
	ArchiveMissing(ctx context.Context, presentIDs map[string]struct{}) ([]string, error)

	// ArchiveByCourseIDs archives every non-archived todo whose
	// course_id is in courseIDs, implementing the archival cascade when
	// a parent course disappears from the remote.
	ArchiveByCourseIDs(ctx context.Context, courseIDs []string) error
}
