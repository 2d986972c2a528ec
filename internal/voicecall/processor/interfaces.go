package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"answering-service/internal/store"
)

// CallLogStore defines the database operations required by VoiceCallProcessor
type CallLogStore interface {
	CreateCallLog(ctx context.Context, log store.CallLog) (store.CallLog, error)
	UpdateCallLog(ctx context.Context, id int64, mutate func(*store.CallLog) error) (store.CallLog, error)
	GetLatestCallLogByPhone(ctx context.Context, phone string) (store.CallLog, error)
	GetCallLogByCallSID(ctx context.Context, callSID string) (store.CallLog, error)
}

// EventPublisher announces call lifecycle changes to downstream consumers.
type EventPublisher interface {
	PublishCallStarted(ctx context.Context, log store.CallLog) error
	PublishCallCompleted(ctx context.Context, log store.CallLog) error
}
