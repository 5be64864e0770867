package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

var (
	errMethodNotAllowed = common.ErrMethodNotAllowed
	errNotFound         = common.ErrorNotFound
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// classify maps an error to its status code and a stable kind string.
// Unknown errors become 500 and their text is not exposed.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrInvalidIdentity):
		return http.StatusBadRequest, "invalid_identity", err.Error()
	case errors.Is(err, common.ErrInvalidCredential):
		return http.StatusBadRequest, "invalid_credential", err.Error()
	case errors.Is(err, common.ErrDuplicateIdentity):
		return http.StatusBadRequest, "duplicate_identity", err.Error()
	case errors.Is(err, common.ErrMissingField):
		return http.StatusBadRequest, "missing_field", err.Error()
	case errors.Is(err, common.ErrAuthenticationFailed):
		return http.StatusBadRequest, "authentication_failed", err.Error()
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", err.Error()
	case errors.Is(err, common.ErrAccountInactive):
		return http.StatusUnauthorized, "account_inactive", err.Error()
	case errors.Is(err, common.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method_not_allowed", err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	default:
		return http.StatusInternalServerError, "internal", common.ErrorInternal.Error()
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, detail := classify(err)
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: kind, Detail: detail})
}

// fail logs unexpected errors before replying.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status, _, _ := classify(err); status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, r, err)
}
