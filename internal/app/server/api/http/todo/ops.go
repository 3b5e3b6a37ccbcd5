package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-list",
		Method:      http.MethodGet,
		Path:        "/todos",
		Summary:     "List todos",
		Description: "Returns non-archived todos unless include_archived is set",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-create",
		Method:      http.MethodPost,
		Path:        "/todos",
		Summary:     "Create a todo",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-update",
		Method:      http.MethodPatch,
		Path:        "/todos/{id}",
		Summary:     "Update a todo",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) archiveOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-archive",
		Method:      http.MethodPatch,
		Path:        "/todos/{id}/archive",
		Summary:     "Archive a todo",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) unarchiveOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-unarchive",
		Method:      http.MethodPatch,
		Path:        "/todos/{id}/unarchive",
		Summary:     "Unarchive a todo",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}
