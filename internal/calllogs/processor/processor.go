package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"answering-service/internal/observability"
	"answering-service/internal/store"
	"answering-service/internal/validation"
)

// CallLogStore defines the database operations required by CallLogProcessor
type CallLogStore interface {
	ListCallLogs(ctx context.Context, filter store.CallLogFilter, limit, offset int) ([]store.CallLog, error)
	CountCallLogs(ctx context.Context, filter store.CallLogFilter) (int, error)
	GetCallLogByID(ctx context.Context, id int64) (store.CallLog, error)
}

var ErrCallNotFound = errors.New("call not found")

type CallLogProcessor struct {
	store     CallLogStore
	validator *validation.Validator
	logger    *observability.Logger
}

func New(store CallLogStore, logger *observability.Logger) CallLogProcessor {
	return CallLogProcessor{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// GetCall returns a single call log or ErrCallNotFound.
func (p CallLogProcessor) GetCall(ctx context.Context, id int64) (store.CallLog, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_log_id", Value: id})

	log, err := p.store.GetCallLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CallLog{}, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to get call log", err)
		return store.CallLog{}, err
	}
	return log, nil
}
