package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sample is one raw quantity measurement.
type Sample struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Metric    Metric    `gorm:"type:varchar(32);not null;index:idx_samples_metric_start" json:"metric"`
	Value     float64   `gorm:"not null" json:"value"`
	StartAt   time.Time `gorm:"not null;index:idx_samples_metric_start" json:"start_at"`
	EndAt     time.Time `gorm:"not null" json:"end_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Sample) TableName() string {
	return "samples"
}

// SleepStageSample is one raw sleep analysis segment.
type SleepStageSample struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Stage     SleepStage `gorm:"type:varchar(16);not null" json:"stage"`
	StartAt   time.Time  `gorm:"not null;index:idx_sleep_stage_samples_start" json:"start_at"`
	EndAt     time.Time  `gorm:"not null" json:"end_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (SleepStageSample) TableName() string {
	return "sleep_stage_samples"
}

// Event converts the stored segment into a pipeline stage event.
func (s SleepStageSample) Event() StageEvent {
	return StageEvent{Stage: s.Stage, StartAt: s.StartAt, EndAt: s.EndAt}
}

// SampleInput is one quantity sample in an ingestion batch.
// @Description A single quantity measurement.
type SampleInput struct {
	// Metric identifier
	Metric Metric `json:"metric" validate:"required,oneof=hrv resting_heart_rate wrist_temperature respiratory_rate heart_rate" example:"hrv" enums:"hrv,resting_heart_rate,wrist_temperature,respiratory_rate,heart_rate"`
	// Measured value in the metric's unit (ms, count/min or °C delta)
	Value float64 `json:"value" example:"62.5"`
	// Measurement start (RFC3339)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-16T03:00:00Z"`
	// Measurement end (RFC3339, not before start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtefield=StartAt" example:"2024-01-16T03:05:00Z"`
}

// CreateSamplesRequest is the request body for batch sample ingestion.
// @Description Batch of quantity samples.
type CreateSamplesRequest struct {
	Samples []SampleInput `json:"samples" validate:"required,min=1,max=1000,dive"`
}

// SleepStageInput is one sleep segment in an ingestion batch.
// @Description A single sleep-stage segment.
type SleepStageInput struct {
	// Stage tag
	Stage SleepStage `json:"stage" validate:"required,oneof=deep rem core awake in_bed" example:"deep" enums:"deep,rem,core,awake,in_bed"`
	// Segment start (RFC3339)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-16T01:00:00Z"`
	// Segment end (RFC3339, after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T01:45:00Z"`
}

// CreateSleepStagesRequest is the request body for batch stage ingestion.
// @Description Batch of sleep-stage segments.
type CreateSleepStagesRequest struct {
	Events []SleepStageInput `json:"events" validate:"required,min=1,max=1000,dive"`
}

// IngestResponse reports how many items were stored.
// @Description Ingestion result.
type IngestResponse struct {
	Accepted int `json:"accepted" example:"96"`
}
