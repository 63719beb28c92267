package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
)

// AlertEvent is the JSON payload published when the alert monitor raises a
// warning or critical alert. Consumed by the notification pipeline.
type AlertEvent struct {
	EventID  string    `json:"event_id"`
	Kind     string    `json:"kind"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raised_at"`
}

// Producer handles publishing alert events to Kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
	}

	return &Producer{
		writer: writer,
	}
}

// PublishAlertEvent publishes a raised alert, keyed by alert kind so repeated
// alerts of one kind land in order on the same partition.
func (p *Producer) PublishAlertEvent(ctx context.Context, alert entity.Alert) error {
	event := AlertEvent{
		EventID:  uuid.NewString(),
		Kind:     string(alert.Kind),
		Severity: string(alert.Severity),
		Message:  alert.Message,
		RaisedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.Kind),
		Value: data,
		Time:  event.RaisedAt,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}

	log.Printf("Published alert event: %s (%s)", event.Kind, event.Severity)
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
