package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidStatusTransition is returned when an update would move a completed call back.
var ErrInvalidStatusTransition = errors.New("invalid call status transition")

// CallLog is the stored representation of one handled phone call.
type CallLog struct {
	ID           int64      `db:"id" json:"id"`
	CallSID      *string    `db:"call_sid" json:"call_sid,omitempty"`
	CallerPhone  string     `db:"caller_phone" json:"caller_phone"`
	CalleePhone  *string    `db:"callee_phone" json:"callee_phone,omitempty"`
	CallDuration int        `db:"call_duration" json:"call_duration"`
	Transcript   *string    `db:"transcript" json:"transcript"`
	Summary      *string    `db:"summary" json:"summary"`
	CallerIntent *string    `db:"caller_intent" json:"caller_intent"`
	ActionItems  StringList `db:"action_items" json:"action_items"`
	CallStatus   string     `db:"call_status" json:"call_status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// IsCompleted reports whether the call has already been closed.
func (c CallLog) IsCompleted() bool {
	return c.CallStatus == CallStatusCompleted
}

func (c *CallLog) normalize() {
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	if c.ActionItems == nil {
		c.ActionItems = StringList{}
	}
}

// NewCallLogParams holds what the telephony provider tells us when a call starts.
type NewCallLogParams struct {
	CallSID     string
	CallerPhone string
	CalleePhone string
}

// NewCallLog builds a call log with every default set: in progress, zero duration and
// created/updated at now (UTC).
func NewCallLog(params NewCallLogParams, now time.Time) CallLog {
	now = now.UTC()
	return CallLog{
		CallSID:      optionalString(params.CallSID),
		CallerPhone:  params.CallerPhone,
		CalleePhone:  optionalString(params.CalleePhone),
		CallDuration: 0,
		ActionItems:  StringList{},
		CallStatus:   CallStatusInProgress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

const callLogColumns = `id, call_sid, caller_phone, callee_phone, call_duration, transcript, summary,
       caller_intent, action_items, call_status, created_at, updated_at`

var sqlCreateCallLog = `
INSERT INTO call_logs (call_sid, caller_phone, callee_phone, call_duration, transcript, summary,
                       caller_intent, action_items, call_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + callLogColumns

// CreateCallLog inserts log and returns it with its assigned id.
func (s *Store) CreateCallLog(ctx context.Context, log CallLog) (CallLog, error) {
	var created CallLog
	err := s.db.GetContext(ctx, &created, sqlCreateCallLog,
		log.CallSID,
		log.CallerPhone,
		log.CalleePhone,
		log.CallDuration,
		log.Transcript,
		log.Summary,
		log.CallerIntent,
		log.ActionItems,
		log.CallStatus,
		log.CreatedAt.UTC(),
		log.UpdatedAt.UTC(),
	)
	if err != nil {
		return CallLog{}, s.fail(ctx, "create call log", err)
	}
	created.normalize()
	return created, nil
}

var sqlGetCallLogByID = `
SELECT ` + callLogColumns + `
FROM call_logs
WHERE id = $1`

// GetCallLogByID returns the call log with the given id or ErrNotFound.
func (s *Store) GetCallLogByID(ctx context.Context, id int64) (CallLog, error) {
	return s.getOne(ctx, "get call log by id", sqlGetCallLogByID, id)
}

var sqlGetLatestCallLogByPhone = `
SELECT ` + callLogColumns + `
FROM call_logs
WHERE caller_phone = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

// GetLatestCallLogByPhone returns the most recently created call log for an exact caller
// phone number regardless of its status, or ErrNotFound.
func (s *Store) GetLatestCallLogByPhone(ctx context.Context, phone string) (CallLog, error) {
	return s.getOne(ctx, "get latest call log by phone", sqlGetLatestCallLogByPhone, phone)
}

var sqlGetCallLogByCallSID = `
SELECT ` + callLogColumns + `
FROM call_logs
WHERE call_sid = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

// GetCallLogByCallSID returns the call log created for a provider call id, or ErrNotFound.
func (s *Store) GetCallLogByCallSID(ctx context.Context, callSID string) (CallLog, error) {
	return s.getOne(ctx, "get call log by call sid", sqlGetCallLogByCallSID, callSID)
}

func (s *Store) getOne(ctx context.Context, op, query string, args ...interface{}) (CallLog, error) {
	var log CallLog
	err := s.db.GetContext(ctx, &log, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CallLog{}, ErrNotFound
		}
		return CallLog{}, s.fail(ctx, op, err)
	}
	log.normalize()
	return log, nil
}

var sqlLockCallLog = `
SELECT ` + callLogColumns + `
FROM call_logs
WHERE id = $1
FOR UPDATE`

const sqlUpdateCallLog = `
UPDATE call_logs
SET call_duration = $2,
    transcript = $3,
    summary = $4,
    caller_intent = $5,
    action_items = $6,
    call_status = $7,
    updated_at = $8
WHERE id = $1`

// UpdateCallLog locks the call log, applies mutate to a copy and writes the mutable fields back
// in one transaction. The id, phone numbers, call sid and created_at cannot be changed, and a
// completed call cannot go back to in progress. An error from mutate aborts the update and is
// returned unchanged.
func (s *Store) UpdateCallLog(ctx context.Context, id int64, mutate func(*CallLog) error) (CallLog, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return CallLog{}, s.fail(ctx, "begin call log update", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current CallLog
	if err := tx.GetContext(ctx, &current, sqlLockCallLog, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CallLog{}, ErrNotFound
		}
		return CallLog{}, s.fail(ctx, "lock call log", err)
	}
	current.normalize()

	updated := current
	if err := mutate(&updated); err != nil {
		return CallLog{}, err
	}

	updated.ID = current.ID
	updated.CallSID = current.CallSID
	updated.CallerPhone = current.CallerPhone
	updated.CalleePhone = current.CalleePhone
	updated.CreatedAt = current.CreatedAt
	if current.IsCompleted() && !updated.IsCompleted() {
		return CallLog{}, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, current.CallStatus, updated.CallStatus)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		updated.UpdatedAt = updated.CreatedAt
	}
	updated.normalize()

	_, err = tx.ExecContext(ctx, sqlUpdateCallLog,
		updated.ID,
		updated.CallDuration,
		updated.Transcript,
		updated.Summary,
		updated.CallerIntent,
		updated.ActionItems,
		updated.CallStatus,
		updated.UpdatedAt,
	)
	if err != nil {
		return CallLog{}, s.fail(ctx, "update call log", err)
	}

	if err := tx.Commit(); err != nil {
		return CallLog{}, s.fail(ctx, "commit call log update", err)
	}
	return updated, nil
}

// ListCallLogs returns one page of call logs matching filter, newest first with the id as a
// stable tiebreak.
func (s *Store) ListCallLogs(ctx context.Context, filter CallLogFilter, limit, offset int) ([]CallLog, error) {
	where, args := filter.where(nil)
	query := `SELECT ` + callLogColumns + ` FROM call_logs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	logs := []CallLog{}
	if err := s.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, s.fail(ctx, "list call logs", err)
	}
	for i := range logs {
		logs[i].normalize()
	}
	return logs, nil
}

// CountCallLogs returns how many call logs match filter, ignoring pagination.
func (s *Store) CountCallLogs(ctx context.Context, filter CallLogFilter) (int, error) {
	where, args := filter.where(nil)

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM call_logs`+where, args...); err != nil {
		return 0, s.fail(ctx, "count call logs", err)
	}
	return total, nil
}
