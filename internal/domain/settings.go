package domain

import "time"

// SyncFrequency controls how often the window is recollected.
// @Description How often health data is refreshed.
type SyncFrequency string

const (
	SyncImmediate SyncFrequency = "immediate"
	SyncHourly    SyncFrequency = "hourly"
	SyncDaily     SyncFrequency = "daily"
)

const (
	// DefaultTargetSleepHours is the nightly sleep target used for sleep debt.
	DefaultTargetSleepHours = 8.0
	// DefaultSyncFrequency matches the provider's hourly background delivery.
	DefaultSyncFrequency = SyncHourly
)

// Interval returns the refresh period for the frequency. Unknown values fall
// back to hourly.
func (f SyncFrequency) Interval() time.Duration {
	switch f {
	case SyncImmediate:
		return time.Minute
	case SyncDaily:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

// Settings are the user preferences the pipeline reads.
type Settings struct {
	ID               uint          `gorm:"primaryKey" json:"-"`
	SyncFrequency    SyncFrequency `gorm:"type:varchar(16);not null;default:'hourly'" json:"sync_frequency" example:"hourly"`
	TargetSleepHours float64       `gorm:"not null;default:8" json:"target_sleep_hours" example:"8"`
	ShowAbsoluteTemp bool          `gorm:"not null;default:false" json:"show_absolute_temp" example:"false"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		ID:               1,
		SyncFrequency:    DefaultSyncFrequency,
		TargetSleepHours: DefaultTargetSleepHours,
	}
}

// UpdateSettingsRequest is the request body for changing settings.
// @Description Partial settings update; omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	// Refresh frequency
	SyncFrequency *SyncFrequency `json:"sync_frequency,omitempty" validate:"omitempty,oneof=immediate hourly daily" example:"daily" enums:"immediate,hourly,daily"`
	// Nightly sleep target in hours (3-14)
	TargetSleepHours *float64 `json:"target_sleep_hours,omitempty" validate:"omitempty,min=3,max=14" example:"7.5"`
	// Show absolute wrist temperature in °F instead of the delta
	ShowAbsoluteTemp *bool `json:"show_absolute_temp,omitempty" example:"true"`
}

// Apply returns a copy of s with the request's fields applied.
func (r *UpdateSettingsRequest) Apply(s Settings) Settings {
	if r.SyncFrequency != nil {
		s.SyncFrequency = *r.SyncFrequency
	}
	if r.TargetSleepHours != nil {
		s.TargetSleepHours = *r.TargetSleepHours
	}
	if r.ShowAbsoluteTemp != nil {
		s.ShowAbsoluteTemp = *r.ShowAbsoluteTemp
	}
	return s
}
