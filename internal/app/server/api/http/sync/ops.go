package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) runOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-run",
		Method:      http.MethodPost,
		Path:        "/sync",
		Summary:     "Run a sync cycle",
		Description: "Pushes pending local changes then pulls remote courses and todos",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-status",
		Method:      http.MethodGet,
		Path:        "/sync/status",
		Summary:     "Get sync status",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}
