package processor

import (
	"context"
	"errors"
	"strconv"

	"answering-service/internal/observability"
	"answering-service/internal/store"
	"answering-service/internal/validation"
)

// CallEndedEvent is the provider's status callback for a finished call.
type CallEndedEvent struct {
	CallSid    string `form:"CallSid" validate:"required"`
	Duration   string `form:"Duration" validate:"required,number"`
	CallStatus string `form:"CallStatus" validate:"required"`
	From       string `form:"From" validate:"required"`
	To         string `form:"To" validate:"required"`
}

// Outcome tells what a call-end notification did to the store.
type Outcome string

const (
	// OutcomeCompleted means a call log was moved to completed.
	OutcomeCompleted Outcome = "completed"
	// OutcomeNoMatch means no call log matched and nothing was written.
	OutcomeNoMatch Outcome = "no_match"
	// OutcomeDuplicate means the matched call log was already completed.
	OutcomeDuplicate Outcome = "duplicate"
)

var errAlreadyCompleted = errors.New("call log already completed")

// OnCallEnded validates the notification, finds the call log it belongs to and completes it.
// A notification that matches nothing, or matches an already completed call, is acknowledged
// without touching the store.
func (p VoiceCallProcessor) OnCallEnded(ctx context.Context, event CallEndedEvent) (Outcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: event.CallSid},
		observability.Field{Key: "caller_phone", Value: event.From},
		observability.Field{Key: "correlation_mode", Value: string(p.mode)},
	)

	duration, err := p.validateCallEnded(event)
	if err != nil {
		p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeInvalid)
		p.logger.Warn(ctx, "invalid call ended notification: "+err.Error())
		return "", err
	}

	log, err := p.findCallLog(ctx, event)
	if errors.Is(err, store.ErrNotFound) {
		return p.noMatch(ctx), nil
	}
	if err != nil {
		p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeFailed)
		return "", err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_log_id", Value: log.ID})
	if log.IsCompleted() {
		return p.duplicate(ctx), nil
	}

	completed, err := p.store.UpdateCallLog(ctx, log.ID, func(c *store.CallLog) error {
		if c.IsCompleted() {
			return errAlreadyCompleted
		}
		c.CallStatus = store.CallStatusCompleted
		c.CallDuration = duration
		c.UpdatedAt = p.now()
		return nil
	})
	switch {
	case errors.Is(err, errAlreadyCompleted):
		return p.duplicate(ctx), nil
	case errors.Is(err, store.ErrNotFound):
		return p.noMatch(ctx), nil
	case err != nil:
		p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeFailed)
		p.logger.Error(ctx, "failed to complete call log", err)
		return "", err
	}

	p.metrics.IncCorrelation(string(p.mode), observability.OutcomeMatched)
	p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeSuccess)
	p.logger.Info(ctx, "call log completed")

	if err := p.events.PublishCallCompleted(ctx, completed); err != nil {
		p.logger.Error(ctx, "failed to publish call completed event", err)
	}
	return OutcomeCompleted, nil
}

func (p VoiceCallProcessor) validateCallEnded(event CallEndedEvent) (int, error) {
	vErr := &validation.Error{}
	if err := p.validator.Struct(event, vErr); err != nil {
		return 0, err
	}
	if err := vErr.OrNil(); err != nil {
		return 0, err
	}

	duration, err := strconv.Atoi(event.Duration)
	if err != nil || duration < 0 {
		vErr.Add("Duration", "must be a non-negative integer")
		return 0, vErr
	}
	return duration, nil
}

func (p VoiceCallProcessor) findCallLog(ctx context.Context, event CallEndedEvent) (store.CallLog, error) {
	if p.mode == CorrelationByCallSID {
		return p.store.GetCallLogByCallSID(ctx, event.CallSid)
	}
	return p.store.GetLatestCallLogByPhone(ctx, event.From)
}

func (p VoiceCallProcessor) noMatch(ctx context.Context) Outcome {
	p.metrics.IncCorrelation(string(p.mode), observability.OutcomeMiss)
	p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeSuccess)
	p.logger.Warn(ctx, "no call log matches call ended notification")
	return OutcomeNoMatch
}

func (p VoiceCallProcessor) duplicate(ctx context.Context) Outcome {
	p.metrics.IncCorrelation(string(p.mode), observability.OutcomeDuplicate)
	p.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeSuccess)
	p.logger.Info(ctx, "call log already completed, ignoring repeated call ended notification")
	return OutcomeDuplicate
}
