package domain

import (
	"time"

	"github.com/blaisecz/health-insights/pkg/optional"
)

// SleepMetrics summarizes one night of sleep stages. Durations are hours.
type SleepMetrics struct {
	DeepSleep  float64 `json:"deep_sleep"`
	REMSleep   float64 `json:"rem_sleep"`
	CoreSleep  float64 `json:"core_sleep"`
	Awake      float64 `json:"awake"`
	InBed      float64 `json:"in_bed"`
	Awakenings int     `json:"awakenings"`
}

// TotalSleep is the time asleep in any stage.
func (s SleepMetrics) TotalSleep() float64 {
	return s.DeepSleep + s.REMSleep + s.CoreSleep
}

// Efficiency is the percentage of time in bed spent asleep.
func (s SleepMetrics) Efficiency() float64 {
	if s.InBed <= 0 {
		return 0
	}
	return s.TotalSleep() / s.InBed * 100
}

// DailyRecord is the aggregate of one calendar day.
type DailyRecord struct {
	Date             time.Time                    `json:"date"`
	HRV              optional.Value[float64]      `json:"hrv"`
	RestingHR        optional.Value[float64]      `json:"resting_hr"`
	TemperatureDelta optional.Value[float64]      `json:"temperature_delta"`
	RespiratoryRate  optional.Value[float64]      `json:"respiratory_rate"`
	Sleep            optional.Value[SleepMetrics] `json:"sleep"`
	Strain           optional.Value[float64]      `json:"strain"`
	IllnessRisk      int                          `json:"illness_risk"`
	IsAnomaly        bool                         `json:"is_anomaly"`
}

// TotalSleep returns the night's total sleep, absent without sleep data.
func (r DailyRecord) TotalSleep() optional.Value[float64] {
	return optional.Map(r.Sleep, SleepMetrics.TotalSleep)
}

// Baseline is the personal-normal reference derived from preceding days.
type Baseline struct {
	HRV             optional.Value[float64]
	RestingHR       optional.Value[float64]
	RespiratoryRate optional.Value[float64]
}

// Window is one complete collection over the lookback period.
type Window struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Records     []DailyRecord `json:"records"`
}

// Latest returns the most recent record.
func (w *Window) Latest() (DailyRecord, bool) {
	if w == nil || len(w.Records) == 0 {
		return DailyRecord{}, false
	}
	return w.Records[len(w.Records)-1], true
}

// Trailing returns the last n records, or all of them when fewer exist.
func (w *Window) Trailing(n int) []DailyRecord {
	if w == nil || n <= 0 {
		return nil
	}
	if n > len(w.Records) {
		n = len(w.Records)
	}
	return w.Records[len(w.Records)-n:]
}
