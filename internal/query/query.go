// Package query defines the read-only store contract the workflow runs
// against.
package query

import (
	"context"
	"errors"
	"time"
)

// ErrConnection marks failures opening the database handle, as opposed to
// failures of the statement itself. Callers classify with errors.Is.
var ErrConnection = errors.New("database connection failed")

type Result struct {
	Columns  []string
	Rows     [][]any
	Duration time.Duration
}

// Store executes statements against the target database. Explain performs a
// dry-run plan check and never executes the statement.
type Store interface {
	Explain(ctx context.Context, sqlText string) error
	Execute(ctx context.Context, sqlText string) (Result, error)
}
