// Package postgres implements the repository interfaces on PostgreSQL through database/sql
// and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"catalog-api/internal/domain/entity"
)

// DBTX is the subset of *sql.DB the repositories use.
// *circuitbreaker.DBCircuitBreaker satisfies it as well.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// queryOne runs a query expected to return at most one row and scans it with scan.
// It reports false when no row came back.
// Single-row reads go through QueryContext so a circuit breaker wrapping DBTX sees them.
func queryOne(ctx context.Context, db DBTX, query string, args []interface{}, scan func(*sql.Rows) error) (bool, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err := scan(rows); err != nil {
		return false, err
	}
	return true, rows.Err()
}

// classify wraps err with the matching entity sentinel.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected turns a write that touched no row into ErrPersistenceFailure.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: no rows affected: %w", op, entity.ErrPersistenceFailure)
	}
	return nil
}
