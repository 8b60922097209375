// Package publisher emits illness and anomaly alerts to Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/health-insights/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AlertPublisher delivers illness alerts to downstream consumers.
type AlertPublisher interface {
	Publish(ctx context.Context, alert domain.IllnessAlert) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes alerts as JSON keyed by day.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// NewKafkaPublisher returns a publisher for topic. With no brokers it returns
// a publisher that only logs.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) AlertPublisher {
	if len(brokers) == 0 {
		logger.Info("alert publishing disabled")
		return NopPublisher{}
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return newKafkaPublisher(w, topic, logger)
}

func newKafkaPublisher(w messageWriter, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		topic:  topic,
		logger: logger.With(zap.String("component", "alert_publisher")),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, alert domain.IllnessAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(alert.Date.Format("2006-01-02")),
		Value: payload,
		Time:  alert.GeneratedAt,
		Headers: []kafka.Header{
			{Key: "alert_id", Value: []byte(alert.ID.String())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish alert to %s: %w", p.topic, err)
	}

	p.logger.Info("illness alert published",
		zap.String("alert_id", alert.ID.String()),
		zap.Int("illness_risk", alert.IllnessRisk),
		zap.Bool("is_anomaly", alert.IsAnomaly),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards alerts.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.IllnessAlert) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
