package sync

import "coursesync/internal/sync"

type runInput struct{}

type runOutput struct {
	Body sync.Stats
}

type statusInput struct{}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Syncing      bool   `json:"syncing"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
}
