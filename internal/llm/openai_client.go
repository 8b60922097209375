package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical wellness assistant.

You receive one user's daily health aggregates from a wearable: heart-rate variability (HRV), resting heart rate, wrist temperature delta, respiratory rate, sleep stages, strain, and derived sleep, recovery and readiness scores (0-100). You must base your conclusions only on the provided data.

Your goals:
- Describe how the user is recovering today in clear, neutral language.
- Highlight trends in HRV, resting heart rate and sleep across the recent days.
- Explain which inputs pulled today's recovery and readiness up or down.
- Mention sleep debt against the user's nightly target when it is material.
- Give practical, behavioral suggestions for today's training load and tonight's sleep.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment, even when illness_risk is high; describe it as the body asking for rest.
- Missing values are null; do not invent them.
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2–3 sentences summarizing today's recovery and readiness compared to recent days.",
  "observations": [
    "3–6 bullet points about trends in HRV, resting heart rate, temperature and sleep.",
    "At least one item comparing this week to last week."
  ],
  "guidance": [
    "3–5 concrete, non-medical suggestions tailored to these numbers.",
    "Include one suggestion about training intensity today.",
    "Include one suggestion about sleep if sleep debt is above 2 hours."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's health data.

- "today" is the most recent day with its scores and categories.
- "recent" holds the preceding days, oldest first.
- "insights" are rule-based observations already shown to the user.
- "week_comparison" compares average recovery this week vs last week.
- "sleep_debt_hours" is the shortfall against "target_hours" over the last 7 nights.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating health narratives using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// WithSystemPrompt replaces the built-in system prompt. An empty prompt keeps
// the current one.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.systemPrompt = prompt
	}
	return c
}

// GenerateInsights calls OpenAI to generate a narrative.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	userPrompt, err := buildUserPrompt(insightsCtx)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}

func buildUserPrompt(insightsCtx *domain.InsightsContext) (string, error) {
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}
	return fmt.Sprintf(userPromptTemplate, string(contextJSON)), nil
}
