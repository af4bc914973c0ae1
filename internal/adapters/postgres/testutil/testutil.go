// Package testutil opens throwaway Postgres schemas for store tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres"
)

// OpenMigratedPool returns a pool whose search_path points at a fresh, migrated
// schema. The schema is dropped when the test finishes. Tests are skipped when
// DATABASE_URL is not set.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{MaxConns: 1})
	if err != nil {
		t.Fatalf("NewPool() err=%v", err)
	}
	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := admin.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		admin.Close()
		t.Fatalf("create schema err=%v", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{
		RuntimeParams: map[string]string{"search_path": schema},
	})
	if err != nil {
		admin.Close()
		t.Fatalf("NewPool(schema) err=%v", err)
	}
	t.Cleanup(func() {
		pool.Close()
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("Migrate() err=%v", err)
	}
	return pool
}
