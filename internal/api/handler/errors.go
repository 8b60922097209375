package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/pkg/problem"
)

// writeError maps service errors to problem responses.
func writeError(w http.ResponseWriter, err error, detail string) {
	switch {
	case errors.Is(err, domain.ErrNoData):
		problem.NotFound("No health data in the lookback window").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(detail).Write(w)
	case errors.Is(err, context.DeadlineExceeded):
		problem.GatewayTimeout("Health data source did not respond in time").Write(w)
	default:
		problem.InternalError(detail).Write(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
