package service

import (
	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/blaisecz/health-insights/internal/insights"
	"github.com/blaisecz/health-insights/internal/scoring"
)

// NewRecordResponse presents a record with its scores. Temperature is shown as
// an absolute °F reading or a °F delta depending on settings.
func NewRecordResponse(r domain.DailyRecord, settings domain.Settings) domain.DailyRecordResponse {
	resp := domain.DailyRecordResponse{
		Date:            r.Date,
		HRV:             r.HRV.Ptr(),
		RestingHR:       r.RestingHR.Ptr(),
		RespiratoryRate: r.RespiratoryRate.Ptr(),
		Strain:          r.Strain.Ptr(),
		IllnessRisk:     r.IllnessRisk,
		IsAnomaly:       r.IsAnomaly,
		Scores:          scoring.Summarize(r),
	}

	if delta, ok := r.TemperatureDelta.Get(); ok {
		temp := &domain.TemperatureResponse{
			DeltaCelsius: delta,
			Status:       insights.TemperatureStatus(delta),
		}
		if settings.ShowAbsoluteTemp {
			f := domain.AbsoluteFahrenheit(delta)
			temp.AbsoluteFahrenheit = &f
		} else {
			f := domain.FahrenheitDelta(delta)
			temp.DeltaFahrenheit = &f
		}
		resp.Temperature = temp
	}

	if s, ok := r.Sleep.Get(); ok {
		resp.Sleep = &domain.SleepResponse{
			SleepMetrics: s,
			TotalSleep:   s.TotalSleep(),
			Efficiency:   s.Efficiency(),
		}
	}

	return resp
}

// NewRecordResponses presents records in order.
func NewRecordResponses(records []domain.DailyRecord, settings domain.Settings) []domain.DailyRecordResponse {
	out := make([]domain.DailyRecordResponse, len(records))
	for i, r := range records {
		out[i] = NewRecordResponse(r, settings)
	}
	return out
}
