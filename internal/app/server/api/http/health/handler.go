// Package health exposes a liveness probe for the daemon.
package health

import (
	"context"
	"database/sql"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	db         *sql.DB
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db *sql.DB, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{db: db, log: log, middleware: middleware}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Error("health check: database unreachable", "err", err)
		return &Output{Body: Response{Status: "degraded"}}, nil
	}
	return &Output{Body: Response{Status: "ok"}}, nil
}
