package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/candrasdkd/easywork/internal/form"
	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	// Missing required-field labels, present on validation failures only.
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes. Unknown errors become an
// opaque 500; the page stays usable either way.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   vErr.Error(),
			Missing: vErr.Missing,
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, model.ErrRecordNotFound), errors.Is(err, model.ErrProfileNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "email already registered"})
	default:
		logger.Error(r.Context(), "internal error", logger.ErrorF(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
