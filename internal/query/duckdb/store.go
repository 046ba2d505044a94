// Package duckdb implements the query store against a DuckDB database file.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/askql/askql/internal/query"
)

// Store opens a scoped read-only connection per call and releases it on
// every exit path. Connections are never held across calls.
type Store struct {
	path string
	open func() (*sql.DB, error)
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.open = func() (*sql.DB, error) {
		return sql.Open("duckdb", s.path+"?access_mode=read_only")
	}
	return s
}

// NewStoreWithOpener is used by tests to substitute the database handle.
func NewStoreWithOpener(open func() (*sql.DB, error)) *Store {
	return &Store{open: open}
}

func (s *Store) Explain(ctx context.Context, sqlText string) error {
	db, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, "EXPLAIN "+sqlText); err != nil {
		return fmt.Errorf("explain statement: %w", err)
	}
	return nil
}

func (s *Store) Execute(ctx context.Context, sqlText string) (query.Result, error) {
	db, err := s.connect(ctx)
	if err != nil {
		return query.Result{}, err
	}
	defer func() { _ = db.Close() }()

	start := time.Now()
	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return query.Result{}, fmt.Errorf("execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return query.Result{}, fmt.Errorf("query columns: %w", err)
	}

	resultRows := make([][]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return query.Result{}, fmt.Errorf("scan row: %w", err)
		}
		resultRows = append(resultRows, normalizeValues(values))
	}
	if err := rows.Err(); err != nil {
		return query.Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	return query.Result{
		Columns:  columns,
		Rows:     resultRows,
		Duration: time.Since(start),
	}, nil
}

// connect opens the handle and pings it so that a missing or locked database
// file surfaces as a connection failure rather than a statement failure.
func (s *Store) connect(ctx context.Context) (*sql.DB, error) {
	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrConnection, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", query.ErrConnection, err)
	}
	return db, nil
}

func normalizeValues(values []any) []any {
	normalized := make([]any, len(values))
	for i, value := range values {
		switch typed := value.(type) {
		case []byte:
			normalized[i] = string(typed)
		default:
			normalized[i] = typed
		}
	}
	return normalized
}
