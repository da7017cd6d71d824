// Package repo contains all database access logic for the travel portal API.
// Each collection has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// jsonList marshals a slice for a jsonb column, normalizing nil to an empty
// JSON array so readers never see null where a list is expected.
func jsonList[T any](v []T) ([]byte, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("repo: marshal list: %w", err)
	}
	return b, nil
}

// scanList unmarshals a jsonb column into a slice. Empty or null columns
// come back as an empty slice, never nil, so JSON responses always carry a
// list where readers expect one.
func scanList[T any](raw []byte, dst *[]T) error {
	if len(raw) == 0 {
		*dst = []T{}
		return nil
	}
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("repo: unmarshal list: %w", err)
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
	return nil
}
