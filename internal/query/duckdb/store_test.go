package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/askql/askql/internal/query"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	store := NewStoreWithOpener(func() (*sql.DB, error) { return db, nil })
	return store, mock
}

func assertMock(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestExplainRunsDryRunOnly(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()
	mock.ExpectExec("EXPLAIN SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	if err := store.Explain(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Explain() error = %v", err)
	}
	assertMock(t, mock)
}

func TestExplainSurfacesStatementError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()
	mock.ExpectExec("EXPLAIN SELECT bogus").WillReturnError(errors.New(`column "bogus" not found`))
	mock.ExpectClose()

	err := store.Explain(context.Background(), "SELECT bogus")
	if err == nil {
		t.Fatal("expected explain error")
	}
	if errors.Is(err, query.ErrConnection) {
		t.Fatalf("statement error misclassified as connection failure: %v", err)
	}
	assertMock(t, mock)
}

func TestExecuteCapturesColumnsAndRows(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()
	mock.ExpectQuery("SELECT name, age FROM customers").WillReturnRows(
		sqlmock.NewRows([]string{"name", "age"}).
			AddRow([]byte("Customer 1"), int64(34)).
			AddRow([]byte("Customer 2"), int64(41)),
	)
	mock.ExpectClose()

	result, err := store.Execute(context.Background(), "SELECT name, age FROM customers")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Columns) != 2 || result.Columns[0] != "name" {
		t.Fatalf("Columns = %v", result.Columns)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d", len(result.Rows))
	}
	if result.Rows[0][0] != "Customer 1" {
		t.Fatalf("Rows[0][0] = %#v, want normalized string", result.Rows[0][0])
	}
	if result.Duration < 0 {
		t.Fatalf("Duration = %v", result.Duration)
	}
	assertMock(t, mock)
}

func TestExecuteSurfacesQueryError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing()
	mock.ExpectQuery("SELECT customer_name FROM customers").WillReturnError(errors.New(`column "customer_name" not found`))
	mock.ExpectClose()

	_, err := store.Execute(context.Background(), "SELECT customer_name FROM customers")
	if err == nil {
		t.Fatal("expected execution error")
	}
	if errors.Is(err, query.ErrConnection) {
		t.Fatalf("query error misclassified as connection failure: %v", err)
	}
	assertMock(t, mock)
}

func TestPingFailureClassifiedAsConnectionError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectPing().WillReturnError(errors.New("file is locked"))
	mock.ExpectClose()

	err := store.Explain(context.Background(), "SELECT 1")
	if !errors.Is(err, query.ErrConnection) {
		t.Fatalf("Explain() error = %v, want ErrConnection", err)
	}

	_, err = store.Execute(context.Background(), "SELECT 1")
	if !errors.Is(err, query.ErrConnection) {
		t.Fatalf("Execute() error = %v, want ErrConnection", err)
	}
}

func TestOpenFailureClassifiedAsConnectionError(t *testing.T) {
	store := NewStoreWithOpener(func() (*sql.DB, error) {
		return nil, errors.New("no such file")
	})
	if err := store.Explain(context.Background(), "SELECT 1"); !errors.Is(err, query.ErrConnection) {
		t.Fatalf("Explain() error = %v, want ErrConnection", err)
	}
}
