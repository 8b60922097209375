package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/health-insights/internal/api/validation"
	"github.com/blaisecz/health-insights/internal/langfuse"
	"github.com/blaisecz/health-insights/internal/llm"
	"github.com/blaisecz/health-insights/internal/service"
	"github.com/blaisecz/health-insights/pkg/problem"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// InsightsHandler handles insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
	langfuseClient  langfuse.Client
	logger          *zap.Logger
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(
	insightsService service.InsightsService,
	langfuseClient langfuse.Client,
	logger *zap.Logger,
) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		langfuseClient:  langfuseClient,
		logger:          logger,
	}
}

// GetInsights handles GET /v1/insights
// @Summary Get health insights
// @Description Today's scores, rule-based insights, recent anomalies, week comparison, correlations and, when OpenAI is configured, a narrative.
// @Tags insights
// @Produce json
// @Success 200 {object} domain.InsightsResponse "Insights"
// @Failure 404 {object} problem.Problem "No data"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Router /insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.Generate(r.Context())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			h.logger.Warn("narrative generation failed", zap.Error(err))
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
			return
		}
		writeError(w, err, "Failed to generate insights")
		return
	}

	// Fall back to the OTEL trace ID for feedback linking
	if result.TraceID == "" {
		span := trace.SpanFromContext(r.Context())
		if span.SpanContext().IsValid() {
			result.TraceID = span.SpanContext().TraceID().String()
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The guidance was helpful!"`
}

// PostFeedback handles POST /v1/insights/feedback
// @Summary Submit feedback on insights
// @Description Submit a rating and optional comment for a previous insights response.
// @Tags insights
// @Accept json
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Router /insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Errors are logged but don't fail the request
	if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		h.logger.Warn("failed to record feedback", zap.Error(err))
	}

	w.WriteHeader(http.StatusNoContent)
}
