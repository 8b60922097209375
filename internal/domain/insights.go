package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScoreSummary holds the composite scores of one day.
// @Description Sleep, recovery and readiness scores (0-100) with categories.
type ScoreSummary struct {
	SleepScore        int      `json:"sleep_score" example:"97"`
	RecoveryScore     int      `json:"recovery_score" example:"95"`
	ReadinessScore    int      `json:"readiness_score" example:"90"`
	RecoveryCategory  Category `json:"recovery_category" example:"optimal"`
	ReadinessCategory Category `json:"readiness_category" example:"optimal"`
}

// SleepResponse is a night of sleep with its derived values.
// @Description Sleep stages in hours with total and efficiency.
type SleepResponse struct {
	SleepMetrics
	TotalSleep float64 `json:"total_sleep" example:"8.7"`
	Efficiency float64 `json:"efficiency" example:"97.75"`
}

// TemperatureResponse presents the wrist temperature reading.
// @Description Wrist temperature; the Fahrenheit fields follow the show_absolute_temp setting.
type TemperatureResponse struct {
	DeltaCelsius       float64  `json:"delta_celsius" example:"0.3"`
	DeltaFahrenheit    *float64 `json:"delta_fahrenheit,omitempty" example:"0.54"`
	AbsoluteFahrenheit *float64 `json:"absolute_fahrenheit,omitempty" example:"98.24"`
	Status             string   `json:"status" example:"Normal range"`
}

// DailyRecordResponse is one day as exposed over the API.
// @Description One calendar day of aggregated health data with scores. Absent metrics are null.
type DailyRecordResponse struct {
	Date            time.Time            `json:"date" example:"2024-01-16T00:00:00Z"`
	HRV             *float64             `json:"hrv" example:"62.5"`
	RestingHR       *float64             `json:"resting_hr" example:"54"`
	Temperature     *TemperatureResponse `json:"temperature"`
	RespiratoryRate *float64             `json:"respiratory_rate" example:"14.2"`
	Sleep           *SleepResponse       `json:"sleep"`
	Strain          *float64             `json:"strain" example:"8.4"`
	IllnessRisk     int                  `json:"illness_risk" example:"0"`
	IsAnomaly       bool                 `json:"is_anomaly" example:"false"`
	Scores          ScoreSummary         `json:"scores"`
}

// WindowResponse is the full lookback window.
// @Description Date-ascending daily records for the lookback window.
type WindowResponse struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Records     []DailyRecordResponse `json:"records"`
}

// LatestResponse is the most recent day with its guidance.
// @Description Most recent day, advisories and illness alert flag.
type LatestResponse struct {
	Record          DailyRecordResponse `json:"record"`
	RecoveryAdvice  string              `json:"recovery_advice"`
	ReadinessAdvice string              `json:"readiness_advice"`
	IllnessAlert    bool                `json:"illness_alert"`
}

// SleepDebtResponse reports accumulated sleep debt.
// @Description Sleep debt over the trailing days.
type SleepDebtResponse struct {
	Days        int     `json:"days" example:"7"`
	TargetHours float64 `json:"target_hours" example:"8"`
	DebtHours   float64 `json:"debt_hours" example:"14"`
}

// InsightKind identifies which rule produced an insight.
type InsightKind string

const (
	InsightHRVTrend         InsightKind = "hrv_trend"
	InsightSleepConsistency InsightKind = "sleep_consistency"
	InsightWeekendSleep     InsightKind = "weekend_sleep"
	InsightRecoveryTrend    InsightKind = "recovery_trend"
	InsightTemperatureSleep InsightKind = "temperature_sleep"
	InsightKeepTracking     InsightKind = "keep_tracking"
)

// Insight is a rule-based observation about recent data.
// @Description Observation with a recommendation.
type Insight struct {
	Kind           InsightKind `json:"kind" example:"hrv_trend"`
	Title          string      `json:"title" example:"HRV Trend"`
	Description    string      `json:"description" example:"Your HRV is up 12% compared to your 2-week average."`
	Recommendation string      `json:"recommendation" example:"Great! Your body is recovering well."`
}

// WeekComparison compares average recovery across two weeks.
// @Description Average recovery this week vs last week.
type WeekComparison struct {
	ThisWeekAvg int `json:"this_week_avg" example:"78"`
	LastWeekAvg int `json:"last_week_avg" example:"71"`
	Change      int `json:"change" example:"7"`
}

// Correlation describes the relationship between a metric and a score.
// @Description Pearson correlation between a metric and a score.
type Correlation struct {
	X           string   `json:"x" example:"hrv"`
	Y           string   `json:"y" example:"recovery_score"`
	Coefficient *float64 `json:"coefficient" example:"0.72"`
	Description string   `json:"description"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated narrative guidance.
type LLMInsightsOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsContext is the context object sent to the LLM.
type InsightsContext struct {
	Today          DailyRecordResponse   `json:"today"`
	Recent         []DailyRecordResponse `json:"recent"`
	Insights       []Insight             `json:"insights"`
	WeekComparison WeekComparison        `json:"week_comparison"`
	SleepDebtHours float64               `json:"sleep_debt_hours"`
	TargetHours    float64               `json:"target_hours"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Scores, rule-based insights, anomalies and optional narrative.
type InsightsResponse struct {
	Today          DailyRecordResponse   `json:"today"`
	Insights       []Insight             `json:"insights"`
	Anomalies      []DailyRecordResponse `json:"anomalies"`
	WeekComparison WeekComparison        `json:"week_comparison"`
	Correlations   []Correlation         `json:"correlations"`
	Narrative      *LLMInsightsOutput    `json:"narrative,omitempty"`
	TraceID        string                `json:"trace_id,omitempty"`
}

// IllnessAlert is published when the latest day shows signs of illness or an
// unusual pattern.
type IllnessAlert struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	IllnessRisk int       `json:"illness_risk"`
	IsAnomaly   bool      `json:"is_anomaly"`
	GeneratedAt time.Time `json:"generated_at"`
}
