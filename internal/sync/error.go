package sync

import "errors"

// ErrSyncInProgress is returned by SyncAll when another cycle is
// already running on the same Reconciler.
var ErrSyncInProgress = errors.New("sync already in progress")
