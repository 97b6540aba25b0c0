package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/candrasdkd/easywork/internal/export"
	"github.com/candrasdkd/easywork/internal/listing"
	"github.com/candrasdkd/easywork/internal/model"
)

type listQuery struct {
	month    model.Month
	search   string
	page     int
	pageSize int
}

// parseListQuery reads month/q/page/page_size. The month defaults to the
// current one, matching the list pages' initial state.
func parseListQuery(r *http.Request) (listQuery, error) {
	out := listQuery{
		month:    model.MonthOf(time.Now()),
		search:   r.URL.Query().Get("q"),
		pageSize: listing.DefaultPageSize,
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := model.ParseMonth(raw)
		if err != nil {
			return listQuery{}, err
		}
		out.month = m
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return listQuery{}, model.ErrInvalidArgument
		}
		out.page = n
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return listQuery{}, model.ErrInvalidArgument
		}
		out.pageSize = n
	}

	return out, nil
}

type listResponse[T any] struct {
	Rows []T `json:"rows"`
	// Size of the whole filtered set, not the page.
	RowCount int `json:"row_count"`
}

func (h *Handler) handleListCalibrations(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.calibrations.ListMonth(r.Context(), identityFrom(r.Context()), q.month, model.SortDesc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filtered := listing.Filter(rows, q.search)
	pageRows, total := listing.Paginate(filtered, q.page, q.pageSize)

	writeJSON(w, http.StatusOK, listResponse[model.CalibrationRecord]{
		Rows:     pageRows,
		RowCount: total,
	})
}

func (h *Handler) handleCreateCalibration(w http.ResponseWriter, r *http.Request) {
	var rec model.CalibrationRecord
	if !decodeBody(w, r, &rec) {
		return
	}

	stored, err := h.calibrations.Create(r.Context(), identityFrom(r.Context()), rec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleReplaceCalibration(w http.ResponseWriter, r *http.Request) {
	var rec model.CalibrationRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	rec.ID = chi.URLParam(r, "id")

	if err := h.calibrations.Replace(r.Context(), identityFrom(r.Context()), rec); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteCalibration(w http.ResponseWriter, r *http.Request) {
	if err := h.calibrations.Delete(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExportCalibrations writes the filtered month as an xlsx attachment.
// The search filter applies; pagination does not.
func (h *Handler) handleExportCalibrations(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.calibrations.ListMonth(r.Context(), identityFrom(r.Context()), q.month, model.SortDesc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	buf, err := export.Calibration(listing.Filter(rows, q.search))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeWorkbook(w, export.CalibrationFilename(q.month), buf.Bytes())
}

func (h *Handler) handleListInventories(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.inventories.ListMonth(r.Context(), identityFrom(r.Context()), q.month, model.SortDesc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filtered := listing.Filter(rows, q.search)
	pageRows, total := listing.Paginate(filtered, q.page, q.pageSize)

	writeJSON(w, http.StatusOK, listResponse[model.InventoryRecord]{
		Rows:     pageRows,
		RowCount: total,
	})
}

func (h *Handler) handleCreateInventory(w http.ResponseWriter, r *http.Request) {
	var rec model.InventoryRecord
	if !decodeBody(w, r, &rec) {
		return
	}

	stored, err := h.inventories.Create(r.Context(), identityFrom(r.Context()), rec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleReplaceInventory(w http.ResponseWriter, r *http.Request) {
	var rec model.InventoryRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	rec.ID = chi.URLParam(r, "id")

	if err := h.inventories.Replace(r.Context(), identityFrom(r.Context()), rec); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	if err := h.inventories.Delete(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleExportInventories(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.inventories.ListMonth(r.Context(), identityFrom(r.Context()), q.month, model.SortDesc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	buf, err := export.Inventory(listing.Filter(rows, q.search))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeWorkbook(w, export.InventoryFilename(q.month), buf.Bytes())
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
