package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/metrics"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher emits account activity events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID)
}

// CommitHook runs fn once the caller's unit of work is durable.
type CommitHook func(ctx context.Context, fn func())

// EventPublisher publishes account events to Kafka. Failures are logged, never returned.
type EventPublisher struct {
	writer   KafkaWriter
	onCommit CommitHook
}

// NewEventPublisher creates a publisher; a nil writer disables publishing.
// With a nil hook events are written straight away.
func NewEventPublisher(writer KafkaWriter, onCommit CommitHook) *EventPublisher {
	return &EventPublisher{writer: writer, onCommit: onCommit}
}

// Publish sends one event keyed by user id once the surrounding transaction commits.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, userID uuid.UUID) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		metrics.FailedEvents.WithLabelValues(eventType).Inc()
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if p.onCommit == nil {
		p.write(ctx, event, msg)
		return
	}
	p.onCommit(ctx, func() { p.write(ctx, event, msg) })
}

func (p *EventPublisher) write(ctx context.Context, event models.Event, msg kafka.Message) {
	eventType := event.Type
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		metrics.FailedEvents.WithLabelValues(eventType).Inc()
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType)
		metrics.PublishedEvents.WithLabelValues(eventType).Inc()
	}
}
