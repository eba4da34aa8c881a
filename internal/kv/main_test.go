package kv_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/adventure-checklist/migrations"
	"github.com/pkordes/adventure-checklist/testutil"
)

// TestMain applies the Postgres migrations once for the whole test binary
// when TEST_DATABASE_URL is set. Without it, the Postgres tests skip and the
// memory and SQLite tests still run.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if err := migrations.Up(context.Background(), db, goose.DialectPostgres); err != nil {
		log.Fatalf("TestMain: %v", err)
	}

	os.Exit(m.Run())
}
