package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/health-insights/internal/service"
	"github.com/blaisecz/health-insights/pkg/problem"
)

// XLSXContentType is the media type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RecordsHandler struct {
	service service.HealthService
}

func NewRecordsHandler(service service.HealthService) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// List handles GET /v1/records
// @Summary Get the daily window
// @Description Date-ascending daily records for the lookback window with scores. Served from cache within the sync interval.
// @Tags records
// @Produce json
// @Success 200 {object} domain.WindowResponse
// @Failure 500 {object} problem.Problem
// @Failure 504 {object} problem.Problem "Data source timeout"
// @Router /records [get]
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Records(r.Context())
	if err != nil {
		writeError(w, err, "Failed to collect records")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Latest handles GET /v1/records/latest
// @Summary Get the most recent day
// @Description Most recent day with scores, recovery and readiness advice, and the illness alert flag
// @Tags records
// @Produce json
// @Success 200 {object} domain.LatestResponse
// @Failure 404 {object} problem.Problem "No data"
// @Failure 500 {object} problem.Problem
// @Router /records/latest [get]
func (h *RecordsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Latest(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load latest record")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SleepDebt handles GET /v1/sleep-debt
// @Summary Get sleep debt
// @Description Sleep debt against the nightly target over the trailing days
// @Tags records
// @Produce json
// @Param days query integer false "Trailing days" default(7) minimum(1) maximum(30)
// @Success 200 {object} domain.SleepDebtResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /sleep-debt [get]
func (h *RecordsHandler) SleepDebt(w http.ResponseWriter, r *http.Request) {
	days := parseIntParam(r, "days", service.DefaultSleepDebtDays)
	if days < 1 || days > service.MaxSleepDebtDays {
		problem.BadRequest("days must be between 1 and " + strconv.Itoa(service.MaxSleepDebtDays)).Write(w)
		return
	}

	resp, err := h.service.SleepDebt(r.Context(), days)
	if err != nil {
		writeError(w, err, "Failed to compute sleep debt")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Refresh handles POST /v1/refresh
// @Summary Recollect the window
// @Description Recollect every day of the window from the data source, bypassing the cache
// @Tags records
// @Produce json
// @Success 200 {object} domain.WindowResponse
// @Failure 500 {object} problem.Problem
// @Failure 504 {object} problem.Problem "Data source timeout"
// @Router /refresh [post]
func (h *RecordsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Refresh(r.Context())
	if err != nil {
		writeError(w, err, "Failed to refresh records")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /v1/records/export
// @Summary Export the window
// @Description Download the daily window as an Excel workbook
// @Tags records
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} problem.Problem
// @Router /records/export [get]
func (h *RecordsHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export(r.Context())
	if err != nil {
		writeError(w, err, "Failed to export records")
		return
	}

	filename := fmt.Sprintf("health-records-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
