// Package sync implements the Reconciler and Scheduler: the push/pull
// cycle that keeps the local store and the remote in agreement.
package sync

// Timestamped is satisfied by both course.Course and todo.Todo. Their
// updated_at is always stored and transmitted in the same canonical
// ISO-UTC form, so plain string comparison is chronological comparison.
type Timestamped interface {
	Timestamp() string
}

// outcome is what the puller should do with one remote record relative
// to whatever (if anything) is sitting locally under the same id.
type outcome int

const (
	outcomePull outcome = iota // remote wins, write it locally as synced
	outcomeSkip                // local wins or has an in-flight edit, leave it untouched
)

// resolve decides what to do with a remote record given the local copy,
// if any. localPending is whether the local row currently has
// uncommitted local edits (sync_state == pending).
func resolve(localExists bool, localPending bool, local, remote Timestamped) outcome {
	if !localExists {
		return outcomePull
	}

	// A pending local row has an in-flight edit; it is never overwritten
	// by a pull. It will be pushed on a later cycle, or the reconciler's
	// own push phase already ran this cycle.
	if localPending {
		return outcomeSkip
	}

	if local.Timestamp() > remote.Timestamp() {
		return outcomeSkip
	}
	return outcomePull
}
