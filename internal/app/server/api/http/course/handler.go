// Package course exposes the /courses endpoints.
package course

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	coursedomain "coursesync/internal/domain/course"
)

type Handler struct {
	repo       coursedomain.Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo coursedomain.Repository, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{repo: repo, log: log, middleware: middleware}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	courses, err := h.repo.List(ctx, false)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list courses", err)
	}
	return &listOutput{Body: courses}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	c, err := h.repo.Insert(ctx, input.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to create course", err)
	}
	return &createOutput{Body: *c}, nil
}
