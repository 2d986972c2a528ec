package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"answering-service/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a migrated PostgreSQL database used by the integration tests.
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the database described by the TEST_DB_* variables and applies the
// embedded migrations. Tests are skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "answering_user"),
		envOr("TEST_DB_PASSWORD", "answering_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "answering_db"),
	)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not reachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewWithDB(db, observability.NewLogger())
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{db: db, Store: store}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Truncate clears the call log table and resets its id sequence.
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if _, err := tdb.db.Exec("TRUNCATE TABLE call_logs RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to truncate call_logs: %v", err)
	}
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}
