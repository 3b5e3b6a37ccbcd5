// Package sync exposes the /sync endpoints.
package sync

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	syncengine "coursesync/internal/sync"
)

type Handler struct {
	reconciler *syncengine.Reconciler
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(reconciler *syncengine.Reconciler, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{reconciler: reconciler, log: log, middleware: middleware}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.runOp(), h.run)
	huma.Register(api, h.statusOp(), h.status)
}

func (h *Handler) run(ctx context.Context, _ *runInput) (*runOutput, error) {
	stats, err := h.reconciler.SyncAll(ctx)
	if errors.Is(err, syncengine.ErrSyncInProgress) {
		return nil, huma.Error409Conflict(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("sync failed", err)
	}
	return &runOutput{Body: stats}, nil
}

func (h *Handler) status(_ context.Context, _ *statusInput) (*statusOutput, error) {
	resp := StatusResponse{Syncing: h.reconciler.IsSyncing()}
	if last := h.reconciler.LastSync(); !last.IsZero() {
		resp.LastSyncedAt = last.UTC().Format("2006-01-02T15:04:05.000Z")
	}
	return &statusOutput{Body: resp}, nil
}
