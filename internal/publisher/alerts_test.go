package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "health-alerts", zap.NewNop())

	alert := domain.IllnessAlert{
		ID:          uuid.New(),
		Date:        time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		IllnessRisk: 4,
		GeneratedAt: time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), alert))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "2024-01-16", string(msg.Key))
	assert.Equal(t, alert.ID.String(), string(msg.Headers[0].Value))

	var got domain.IllnessAlert
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, alert.ID, got.ID)
	assert.Equal(t, 4, got.IllnessRisk)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, "health-alerts", zap.NewNop())

	err := p.Publish(context.Background(), domain.IllnessAlert{ID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health-alerts")
}

func TestNewKafkaPublisher_NoBrokers(t *testing.T) {
	p := NewKafkaPublisher(nil, "health-alerts", zap.NewNop())
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), domain.IllnessAlert{}))
	assert.NoError(t, p.Close())
}
