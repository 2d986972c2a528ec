package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"fmt"
	"math"
	"time"

	"answering-service/internal/observability"
	"answering-service/internal/store"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetCallStats(ctx context.Context, now time.Time) (store.CallStats, error)
}

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CallStatsResponse is the dashboard summary of all call logs.
type CallStatsResponse struct {
	TotalCalls           int             `json:"total_calls"`
	CompletedCalls       int             `json:"completed_calls"`
	CallsToday           int             `json:"calls_today"`
	AvgDurationSeconds   int             `json:"avg_duration_seconds"`
	AvgDurationFormatted string          `json:"avg_duration_formatted"`
	RecentActivity       []store.CallLog `json:"recent_activity"`
}

// FormatDuration renders whole seconds as "{minutes}m {seconds}s".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// GetCallStats returns totals, today's volume, the mean completed-call duration truncated to
// whole seconds and the most recent calls.
func (p AnalyticsProcessor) GetCallStats(ctx context.Context) (CallStatsResponse, error) {
	stats, err := p.store.GetCallStats(ctx, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to get call stats", err)
		return CallStatsResponse{}, err
	}

	avg := int(math.Trunc(stats.AvgDuration))
	recent := stats.RecentActivity
	if recent == nil {
		recent = []store.CallLog{}
	}

	return CallStatsResponse{
		TotalCalls:           stats.TotalCalls,
		CompletedCalls:       stats.CompletedCalls,
		CallsToday:           stats.CallsToday,
		AvgDurationSeconds:   avg,
		AvgDurationFormatted: FormatDuration(avg),
		RecentActivity:       recent,
	}, nil
}
