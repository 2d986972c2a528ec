package processor

import (
	"fmt"
	"time"

	"answering-service/internal/observability"
	"answering-service/internal/validation"
)

// CorrelationMode selects how a call-end notification is matched to its call log.
type CorrelationMode string

const (
	// CorrelationByPhone picks the newest call log for the caller's number.
	CorrelationByPhone CorrelationMode = "phone"
	// CorrelationByCallSID picks the call log created for the same provider call id.
	CorrelationByCallSID CorrelationMode = "call_sid"
)

// ParseCorrelationMode accepts the configured mode name. An empty value means CorrelationByPhone.
func ParseCorrelationMode(s string) (CorrelationMode, error) {
	switch CorrelationMode(s) {
	case "", CorrelationByPhone:
		return CorrelationByPhone, nil
	case CorrelationByCallSID:
		return CorrelationByCallSID, nil
	default:
		return "", fmt.Errorf("unknown correlation mode %q", s)
	}
}

type VoiceCallProcessor struct {
	store     CallLogStore
	events    EventPublisher
	metrics   *observability.Metrics
	mode      CorrelationMode
	validator *validation.Validator
	logger    *observability.Logger
	now       func() time.Time
}

func New(store CallLogStore, events EventPublisher, metrics *observability.Metrics, mode CorrelationMode, logger *observability.Logger) VoiceCallProcessor {
	return VoiceCallProcessor{
		store:     store,
		events:    events,
		metrics:   metrics,
		mode:      mode,
		validator: validation.New(),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Mode reports the active correlation mode.
func (p VoiceCallProcessor) Mode() CorrelationMode {
	return p.mode
}
