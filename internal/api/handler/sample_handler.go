package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/health-insights/internal/api/validation"
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/service"
	"github.com/blaisecz/health-insights/pkg/problem"
)

type SampleHandler struct {
	service service.SampleService
}

func NewSampleHandler(service service.SampleService) *SampleHandler {
	return &SampleHandler{service: service}
}

// CreateSamples handles POST /v1/samples
// @Summary Ingest quantity samples
// @Description Store a batch of HRV, heart rate, temperature and respiratory samples
// @Tags samples
// @Accept json
// @Produce json
// @Param request body domain.CreateSamplesRequest true "Sample batch"
// @Success 201 {object} domain.IngestResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /samples [post]
func (h *SampleHandler) CreateSamples(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.IngestSamples(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to store samples").Write(w)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// CreateSleepStages handles POST /v1/sleep-stages
// @Summary Ingest sleep stages
// @Description Store a batch of sleep-stage segments
// @Tags samples
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepStagesRequest true "Sleep stage batch"
// @Success 201 {object} domain.IngestResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /sleep-stages [post]
func (h *SampleHandler) CreateSleepStages(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepStagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.IngestSleepStages(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to store sleep stages").Write(w)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
