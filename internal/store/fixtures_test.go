package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, testDB: testDB, ctx: context.Background()}
}

// CallLogOpts customizes call log creation.
type CallLogOpts struct {
	CallSID      string
	CallerPhone  string
	CreatedAt    time.Time
	Completed    bool
	Duration     int
	Transcript   string
	Summary      string
	CallerIntent string
}

// CreateCallLog inserts a call log, optionally completing it in the same step.
func (f *Fixtures) CreateCallLog(opts ...func(*CallLogOpts)) CallLog {
	f.t.Helper()
	o := CallLogOpts{CallerPhone: "+15551234567", CreatedAt: fixedNow}
	for _, fn := range opts {
		fn(&o)
	}

	log := NewCallLog(NewCallLogParams{CallSID: o.CallSID, CallerPhone: o.CallerPhone}, o.CreatedAt)
	if o.Completed {
		log.CallStatus = CallStatusCompleted
		log.CallDuration = o.Duration
		log.UpdatedAt = o.CreatedAt.Add(time.Duration(o.Duration) * time.Second)
	}
	log.Transcript = optionalString(o.Transcript)
	log.Summary = optionalString(o.Summary)
	log.CallerIntent = optionalString(o.CallerIntent)

	created, err := f.testDB.Store.CreateCallLog(f.ctx, log)
	require.NoError(f.t, err, "failed to create call log fixture")
	return created
}
