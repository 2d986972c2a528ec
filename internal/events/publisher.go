package events

import (
	"context"
	"time"

	"answering-service/internal/clients/kafka"
	"answering-service/internal/observability"
	"answering-service/internal/store"

	"github.com/google/uuid"
)

const (
	TypeCallStarted   = "call.started"
	TypeCallCompleted = "call.completed"
)

// Producer is the transport used to ship events.
type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing call lifecycle events to Kafka. A nil Publisher, or one
// without a producer, drops events silently.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishCallStarted publishes a call.started event
func (p *Publisher) PublishCallStarted(ctx context.Context, log store.CallLog) error {
	data := map[string]interface{}{
		"call_log_id":  log.ID,
		"caller_phone": log.CallerPhone,
		"call_status":  log.CallStatus,
	}
	if log.CallSID != nil {
		data["call_sid"] = *log.CallSID
	}
	return p.publish(ctx, TypeCallStarted, log, data)
}

// PublishCallCompleted publishes a call.completed event
func (p *Publisher) PublishCallCompleted(ctx context.Context, log store.CallLog) error {
	data := map[string]interface{}{
		"call_log_id":   log.ID,
		"caller_phone":  log.CallerPhone,
		"call_duration": log.CallDuration,
		"action_items":  log.ActionItems,
	}
	if log.CallSID != nil {
		data["call_sid"] = *log.CallSID
	}
	if log.CallerIntent != nil {
		data["caller_intent"] = *log.CallerIntent
	}
	return p.publish(ctx, TypeCallCompleted, log, data)
}

func (p *Publisher) publish(ctx context.Context, eventType string, log store.CallLog, data map[string]interface{}) error {
	if p == nil {
		return nil
	}
	if p.producer == nil {
		p.logger.Debug(ctx, "event publishing disabled, dropping "+eventType)
		return nil
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       log.CallerPhone,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	return p.producer.PublishEvent(ctx, event)
}
