package database

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Mode tells the executor how many rows the statement is expected to return.
type Mode int

const (
	// ModeNone runs a statement without reading rows (UPDATE/DELETE without RETURNING).
	ModeNone Mode = iota
	// ModeOne keeps only the first row.
	ModeOne
	// ModeMany keeps every row in order.
	ModeMany
)

func (m Mode) String() string {
	switch m {
	case ModeOne:
		return "one"
	case ModeMany:
		return "many"
	default:
		return "none"
	}
}

// Record is a row decoded as column name -> value.
type Record map[string]any

// Result holds what a single statement produced.
type Result struct {
	Rows         []Record
	RowsAffected int64
}

// One returns the first row or nil.
func (r *Result) One() Record {
	if r == nil || len(r.Rows) == 0 {
		return nil
	}
	return r.Rows[0]
}

// Builder is the squirrel statement builder every repository starts from.
// PostgreSQL uses $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Executor runs one statement per call in its own transaction.
type Executor interface {
	Execute(ctx context.Context, stmt sq.Sqlizer, mode Mode) (*Result, error)
}

// SQLExecutor implements Executor on top of a database/sql pool.
type SQLExecutor struct {
	db *sqlx.DB
}

// NewExecutor wraps db. The pool behind db is owned by the caller.
func NewExecutor(db *sqlx.DB) *SQLExecutor {
	return &SQLExecutor{db: db}
}

// Execute builds stmt and runs it.
func (e *SQLExecutor) Execute(ctx context.Context, stmt sq.Sqlizer, mode Mode) (*Result, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, newDatabaseError("build", err)
	}
	return e.ExecuteRaw(ctx, query, args, mode)
}

// ExecuteRaw runs a prebuilt statement.
//
// One connection is acquired for the call and released on every path.
// The statement runs inside a transaction that is committed on success and
// rolled back on any failure, including failures while reading rows.
func (e *SQLExecutor) ExecuteRaw(ctx context.Context, query string, args []any, mode Mode) (res *Result, err error) {
	start := time.Now()
	defer func() { observeQuery(mode, start, err) }()

	conn, err := e.db.Connx(ctx)
	if err != nil {
		return nil, newDatabaseError("acquire", err)
	}
	defer conn.Close()

	err = withTransaction(ctx, conn, func(tx *sqlx.Tx) error {
		var runErr error
		if mode == ModeNone {
			res, runErr = execNoRows(ctx, tx, query, args)
		} else {
			res, runErr = execRows(ctx, tx, query, args, mode)
		}
		return runErr
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func execNoRows(ctx context.Context, tx *sqlx.Tx, query string, args []any) (*Result, error) {
	out, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, newDatabaseError("exec", err)
	}
	affected, err := out.RowsAffected()
	if err != nil {
		return nil, newDatabaseError("rows affected", err)
	}
	return &Result{RowsAffected: affected}, nil
}

func execRows(ctx context.Context, tx *sqlx.Tx, query string, args []any, mode Mode) (*Result, error) {
	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, newDatabaseError("query", err)
	}
	defer rows.Close()

	res := &Result{Rows: []Record{}}
	for rows.Next() {
		rec := Record{}
		if err := rows.MapScan(rec); err != nil {
			return nil, newDatabaseError("scan", err)
		}
		res.Rows = append(res.Rows, normalize(rec))
		if mode == ModeOne {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, newDatabaseError("rows", err)
	}
	// Close before commit so the connection is free for COMMIT.
	if err := rows.Close(); err != nil {
		return nil, newDatabaseError("close rows", err)
	}

	res.RowsAffected = int64(len(res.Rows))
	return res, nil
}

// normalize turns driver byte slices into strings so records decode the
// same way whatever driver produced them.
func normalize(rec Record) Record {
	for k, v := range rec {
		if b, ok := v.([]byte); ok {
			rec[k] = string(b)
		}
	}
	return rec
}
