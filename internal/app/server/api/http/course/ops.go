package course

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-list",
		Method:      http.MethodGet,
		Path:        "/courses",
		Summary:     "List courses",
		Description: "Returns non-archived courses, most recently updated first",
		Tags:        []string{"courses"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-create",
		Method:      http.MethodPost,
		Path:        "/courses",
		Summary:     "Create a course",
		Tags:        []string{"courses"},
		Middlewares: h.middleware,
	}
}
