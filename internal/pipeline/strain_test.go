package pipeline

import (
	"testing"

	"github.com/blaisecz/health-insights/pkg/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateStrain(t *testing.T) {
	tests := []struct {
		name string
		hr   float64
		want float64
	}{
		{"resting clamps to zero", 50, 0},
		{"at floor", 60, 0},
		{"midrange", 110, 10.5},
		{"at ceiling", 160, 21},
		{"above ceiling clamps", 200, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateStrain(optional.Some(tt.hr)).Get()
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateStrain_NoHeartRate(t *testing.T) {
	assert.False(t, EstimateStrain(optional.None[float64]()).IsSome())
}
