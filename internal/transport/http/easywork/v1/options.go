package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/candrasdkd/easywork/internal/model"
)

func (h *Handler) handleListOptions(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseOptionKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	options, err := h.options.List(r.Context(), kind)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

func (h *Handler) handleAppendOption(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseOptionKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	option, err := h.options.Append(r.Context(), kind, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, option)
}
