package domain

import "time"

// Metric identifies a quantity series in the health data source.
// @Description Quantity metric identifier.
type Metric string

const (
	// MetricHRV is heart-rate variability (SDNN) in milliseconds.
	MetricHRV Metric = "hrv"
	// MetricRestingHeartRate is resting heart rate in beats per minute.
	MetricRestingHeartRate Metric = "resting_heart_rate"
	// MetricWristTemperature is the sleeping wrist temperature delta in °C.
	MetricWristTemperature Metric = "wrist_temperature"
	// MetricRespiratoryRate is breaths per minute.
	MetricRespiratoryRate Metric = "respiratory_rate"
	// MetricHeartRate is heart rate in beats per minute, used for strain.
	MetricHeartRate Metric = "heart_rate"
)

// Metrics lists every quantity metric the pipeline queries.
var Metrics = []Metric{
	MetricHRV,
	MetricRestingHeartRate,
	MetricWristTemperature,
	MetricRespiratoryRate,
	MetricHeartRate,
}

// SleepStage tags a sleep analysis segment.
// @Description Sleep stage: deep, rem, core, awake or in_bed.
type SleepStage string

const (
	SleepStageDeep  SleepStage = "deep"
	SleepStageREM   SleepStage = "rem"
	SleepStageCore  SleepStage = "core"
	SleepStageAwake SleepStage = "awake"
	SleepStageInBed SleepStage = "in_bed"
)

// StageEvent is one discrete sleep-stage segment.
type StageEvent struct {
	Stage   SleepStage `json:"stage"`
	StartAt time.Time  `json:"start_at"`
	EndAt   time.Time  `json:"end_at"`
}

// Duration returns the length of the segment.
func (e StageEvent) Duration() time.Duration {
	return e.EndAt.Sub(e.StartAt)
}
