package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/health-insights/internal/api/validation"
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/service"
	"github.com/blaisecz/health-insights/pkg/problem"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /v1/settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Failure 500 {object} problem.Problem
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		problem.InternalError("Failed to load settings").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /v1/settings
// @Summary Update settings
// @Description Partially update settings. Changing sync_frequency re-arms the refresh schedule.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSettingsRequest true "Settings update"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to update settings").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
