package store

import (
	"context"
	"database/sql"
	"time"
)

// RecentActivityLimit is how many of the newest call logs a stats snapshot carries.
const RecentActivityLimit = 5

// CallStats is a consistent snapshot of call log aggregates.
type CallStats struct {
	TotalCalls     int       `db:"total_calls"`
	CompletedCalls int       `db:"completed_calls"`
	CallsToday     int       `db:"calls_today"`
	AvgDuration    float64   `db:"avg_duration"`
	RecentActivity []CallLog `db:"-"`
}

const sqlGetCallStats = `
SELECT COUNT(*)                                                        AS total_calls,
       COUNT(*) FILTER (WHERE call_status = $1)                        AS completed_calls,
       COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $3)    AS calls_today,
       COALESCE(AVG(call_duration) FILTER (WHERE call_status = $1), 0)::float8 AS avg_duration
FROM call_logs`

var sqlGetRecentCallLogs = `
SELECT ` + callLogColumns + `
FROM call_logs
ORDER BY created_at DESC, id DESC
LIMIT $1`

// GetCallStats computes totals, today's count (UTC calendar day of now), the mean duration of
// completed calls and the most recent call logs inside one read-only repeatable read
// transaction so every figure describes the same data.
func (s *Store) GetCallStats(ctx context.Context, now time.Time) (CallStats, error) {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return CallStats{}, s.fail(ctx, "begin call stats", err)
	}
	defer func() { _ = tx.Rollback() }()

	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var stats CallStats
	if err := tx.GetContext(ctx, &stats, sqlGetCallStats, CallStatusCompleted, dayStart, dayEnd); err != nil {
		return CallStats{}, s.fail(ctx, "aggregate call stats", err)
	}

	recent := []CallLog{}
	if err := tx.SelectContext(ctx, &recent, sqlGetRecentCallLogs, RecentActivityLimit); err != nil {
		return CallStats{}, s.fail(ctx, "list recent call logs", err)
	}
	for i := range recent {
		recent[i].normalize()
	}
	stats.RecentActivity = recent

	if err := tx.Commit(); err != nil {
		return CallStats{}, s.fail(ctx, "commit call stats", err)
	}
	return stats, nil
}
