package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func fastDBConfig() Config {
	cfg := DBConfig()
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func TestNewDBCircuitBreaker(t *testing.T) {
	db, _ := newMockDB(t)

	dcb := NewDBCircuitBreaker(db)

	if dcb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state to be Closed, got %s", dcb.State())
	}
}

func TestDBCircuitBreaker_QueryContext(t *testing.T) {
	db, mock := newMockDB(t)
	dcb := NewDBCircuitBreaker(db)

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Special Bundle 1"))

	rows, err := dcb.QueryContext(context.Background(), "SELECT id, title FROM articles")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_ = rows.Close()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBCircuitBreaker_ExecContext(t *testing.T) {
	db, mock := newMockDB(t)
	dcb := NewDBCircuitBreaker(db)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := dcb.ExecContext(context.Background(), "DELETE FROM products WHERE id = $1", int64(3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}
}

func TestDBCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	db, mock := newMockDB(t)
	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())
	ctx := context.Background()

	connErr := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(connErr)
	}
	for i := 0; i < 5; i++ {
		if _, err := dcb.QueryContext(ctx, "SELECT 1"); err == nil {
			t.Fatalf("attempt %d: expected error", i+1)
		}
	}

	if dcb.State() != gobreaker.StateOpen {
		t.Fatalf("expected circuit to be open, state: %s", dcb.State())
	}

	// Rejected without reaching the database: no expectation registered.
	_, err := dcb.ExecContext(ctx, "UPDATE articles SET title = $1", "x")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}

	time.Sleep(80 * time.Millisecond)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	rows, err := dcb.QueryContext(ctx, "SELECT 1")
	if err != nil {
		t.Fatalf("expected half-open probe to succeed, got %v", err)
	}
	_ = rows.Close()
}

func TestDBCircuitBreaker_ConstraintViolationsDoNotTrip(t *testing.T) {
	db, mock := newMockDB(t)
	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())

	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	for i := 0; i < 8; i++ {
		mock.ExpectExec("INSERT INTO articles").WillReturnError(unique)
	}
	for i := 0; i < 8; i++ {
		_, err := dcb.ExecContext(context.Background(), "INSERT INTO articles (title) VALUES ($1)", "dup")
		if !errors.As(err, new(*pgconn.PgError)) {
			t.Fatalf("attempt %d: expected PgError, got %v", i+1, err)
		}
	}

	if dcb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed, got %s", dcb.State())
	}
}

func TestIsHealthyDBResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "no rows", err: sql.ErrNoRows, want: true},
		{name: "wrapped no rows", err: fmt.Errorf("get: %w", sql.ErrNoRows), want: true},
		{name: "canceled", err: context.Canceled, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "invalid text", err: &pgconn.PgError{Code: "22P02"}, want: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "driver error", err: errors.New("driver: bad connection"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHealthyDBResult(tt.err); got != tt.want {
				t.Errorf("isHealthyDBResult(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()

	if cfg.Name != "database" {
		t.Errorf("expected name 'database', got '%s'", cfg.Name)
	}
	if cfg.MinRequests != 5 || cfg.FailureThreshold != 1.0 {
		t.Errorf("unexpected trip settings: %+v", cfg)
	}
	if cfg.IsSuccessful == nil {
		t.Error("expected IsSuccessful to be set")
	}
}
