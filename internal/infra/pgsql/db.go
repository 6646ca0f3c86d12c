// Package pgsql holds the parameterized SQL statements for the booking
// schema. Every method receives the DBTX to run on, so the same Queries value
// serves the pool and open transactions alike.
package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	timeout time.Duration
}

// New returns Queries that bound each statement by timeout; zero disables the bound.
func New(timeout time.Duration) *Queries {
	return &Queries{timeout: timeout}
}

func (q *Queries) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, q.timeout)
}
