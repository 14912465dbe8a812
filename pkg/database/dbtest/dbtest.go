// Package dbtest wires a database.Executor to go-sqlmock for repository tests.
package dbtest

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"movies-api/pkg/database"
)

// New returns an executor backed by sqlmock. Unmet expectations fail the test.
func New(t *testing.T) (*database.SQLExecutor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		_ = db.Close()
	})

	return database.NewExecutor(sqlx.NewDb(db, "pgx")), mock
}

// ExpectQuery registers a single-statement transaction that returns rows.
func ExpectQuery(mock sqlmock.Sqlmock, sql string, rows *sqlmock.Rows, args ...any) {
	mock.ExpectBegin()
	q := mock.ExpectQuery(sql)
	if len(args) > 0 {
		q = q.WithArgs(toDriverArgs(args)...)
	}
	q.WillReturnRows(rows)
	mock.ExpectCommit()
}

// ExpectExec registers a single-statement transaction without rows.
func ExpectExec(mock sqlmock.Sqlmock, sql string, affected int64, args ...any) {
	mock.ExpectBegin()
	e := mock.ExpectExec(sql)
	if len(args) > 0 {
		e = e.WithArgs(toDriverArgs(args)...)
	}
	e.WillReturnResult(sqlmock.NewResult(0, affected))
	mock.ExpectCommit()
}

// ExpectQueryError registers a statement that fails and is rolled back.
func ExpectQueryError(mock sqlmock.Sqlmock, sql string, err error) {
	mock.ExpectBegin()
	mock.ExpectQuery(sql).WillReturnError(err)
	mock.ExpectRollback()
}

func toDriverArgs(args []any) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
