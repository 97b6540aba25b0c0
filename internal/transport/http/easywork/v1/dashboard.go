package http

import (
	"net/http"
	"time"

	"github.com/candrasdkd/easywork/internal/model"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	month := model.MonthOf(time.Now())
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := model.ParseMonth(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		month = m
	}

	summary, err := h.dashboard.MonthSummary(r.Context(), identityFrom(r.Context()),
		month, r.URL.Query().Get("room"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
