package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/health-insights/internal/domain"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the stored settings, or the defaults if none were saved.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", domain.DefaultSettings().ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	settings.ID = domain.DefaultSettings().ID
	return r.db.WithContext(ctx).Save(settings).Error
}
