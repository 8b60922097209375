package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/health-insights/internal/domain"
)

func TestSettingsHandler_Get(t *testing.T) {
	handler := NewSettingsHandler(&MockSettingsService{settings: domain.DefaultSettings()})

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Get() status = %d, want %d", rec.Code, http.StatusOK)
	}
	var response domain.Settings
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.SyncFrequency != domain.SyncHourly || response.TargetSleepHours != 8 {
		t.Errorf("unexpected settings: %+v", response)
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockSettingsService
		wantStatusCode int
		wantFrequency  domain.SyncFrequency
	}{
		{
			name:           "change frequency",
			body:           `{"sync_frequency": "daily"}`,
			mockService:    &MockSettingsService{settings: domain.DefaultSettings()},
			wantStatusCode: http.StatusOK,
			wantFrequency:  domain.SyncDaily,
		},
		{
			name:           "empty update",
			body:           `{}`,
			mockService:    &MockSettingsService{settings: domain.DefaultSettings()},
			wantStatusCode: http.StatusOK,
			wantFrequency:  domain.SyncHourly,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockSettingsService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown frequency",
			body:           `{"sync_frequency": "weekly"}`,
			mockService:    &MockSettingsService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "target out of range",
			body:           `{"target_sleep_hours": 20}`,
			mockService:    &MockSettingsService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "store failure",
			body:           `{"show_absolute_temp": true}`,
			mockService:    &MockSettingsService{err: errors.New("db down")},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSettingsHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Update() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK {
				var response domain.Settings
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.SyncFrequency != tt.wantFrequency {
					t.Errorf("SyncFrequency = %q, want %q", response.SyncFrequency, tt.wantFrequency)
				}
			}
		})
	}
}
