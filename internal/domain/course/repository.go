package course

import "context"

// Repository is the storage-facing contract the rest of the engine
// depends on. Implementations live under internal/storage/sqlite; tests
// may substitute an in-memory fake.
type Repository interface {
	// List returns non-archived courses ordered by most recently
	// updated first, unless includeArchived is set.
	List(ctx context.Context, includeArchived bool) ([]Course, error)

	// Get fetches a single course by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Course, error)

	// Insert creates a new course from a validated request, assigning
	// an id and stamping sync_state=pending.
	Insert(ctx context.Context, req NewCourseRequest) (*Course, error)

	// Upsert writes a course as returned by the remote adapter, either
	// inserting it or overwriting the existing row with the same id.
	Upsert(ctx context.Context, c Course) (*Course, error)

	// ListBySyncState returns every course currently in the given
	// state, for the reconciler's push phase.
	ListBySyncState(ctx context.Context, state SyncState) ([]Course, error)

	// MarkSynced flips a course to synced and stamps last_synced_at.
	MarkSynced(ctx context.Context, id string, syncedAt string) error

	// ArchiveMissing marks every non-archived course whose id is not in
	// presentIDs as archived, and returns the ids it archived.
	ArchiveMissing(ctx context.Context, presentIDs map[string]struct{}) ([]string, error)
}
