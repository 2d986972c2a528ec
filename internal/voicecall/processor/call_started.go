package processor

import (
	"context"
	"strings"

	"answering-service/internal/observability"
	"answering-service/internal/store"
	"answering-service/internal/validation"
)

// CallStartedParams is what the provider sends when a call reaches the agent.
type CallStartedParams struct {
	CallSID     string
	CallerPhone string
	CalleePhone string
}

// OnCallStarted records a new in-progress call log for the caller.
func (p VoiceCallProcessor) OnCallStarted(ctx context.Context, params CallStartedParams) (store.CallLog, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: params.CallSID},
		observability.Field{Key: "caller_phone", Value: params.CallerPhone},
	)

	callerPhone := strings.TrimSpace(params.CallerPhone)
	if callerPhone == "" {
		vErr := &validation.Error{}
		vErr.Add("From", "is required")
		p.metrics.IncWebhookEvent(observability.EventCallStarted, observability.OutcomeInvalid)
		p.logger.Warn(ctx, "call started without caller phone")
		return store.CallLog{}, vErr
	}

	log := store.NewCallLog(store.NewCallLogParams{
		CallSID:     strings.TrimSpace(params.CallSID),
		CallerPhone: callerPhone,
		CalleePhone: strings.TrimSpace(params.CalleePhone),
	}, p.now())

	created, err := p.store.CreateCallLog(ctx, log)
	if err != nil {
		p.metrics.IncWebhookEvent(observability.EventCallStarted, observability.OutcomeFailed)
		p.logger.Error(ctx, "failed to create call log", err)
		return store.CallLog{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_log_id", Value: created.ID})
	p.metrics.IncWebhookEvent(observability.EventCallStarted, observability.OutcomeSuccess)
	p.logger.Info(ctx, "call log created")

	if err := p.events.PublishCallStarted(ctx, created); err != nil {
		p.logger.Error(ctx, "failed to publish call started event", err)
	}
	return created, nil
}
