// Package todo exposes the /todos endpoints.
package todo

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	tododomain "coursesync/internal/domain/todo"
)

type Handler struct {
	repo       tododomain.Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo tododomain.Repository, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{repo: repo, log: log, middleware: middleware}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.archiveOp(), h.archive)
	huma.Register(api, h.unarchiveOp(), h.unarchive)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	todos, err := h.repo.List(ctx, input.IncludeArchived)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list todos", err)
	}
	return &listOutput{Body: todos}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	t, err := h.repo.Insert(ctx, input.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to create todo", err)
	}
	return &createOutput{Body: *t}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	t, err := h.repo.Update(ctx, input.ID, input.Body)
	if errors.Is(err, tododomain.ErrNotFound) {
		return nil, huma.Error404NotFound("todo not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to update todo", err)
	}
	return &updateOutput{Body: *t}, nil
}

func (h *Handler) archive(ctx context.Context, input *archiveInput) (*archiveOutput, error) {
	if err := h.repo.Archive(ctx, input.ID); errors.Is(err, tododomain.ErrNotFound) {
		return nil, huma.Error404NotFound("todo not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("failed to archive todo", err)
	}
	return &archiveOutput{Status: http.StatusNoContent}, nil
}

func (h *Handler) unarchive(ctx context.Context, input *archiveInput) (*archiveOutput, error) {
	if err := h.repo.Unarchive(ctx, input.ID); errors.Is(err, tododomain.ErrNotFound) {
		return nil, huma.Error404NotFound("todo not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("failed to unarchive todo", err)
	}
	return &archiveOutput{Status: http.StatusNoContent}, nil
}
