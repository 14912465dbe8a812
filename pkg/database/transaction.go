package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxFunc là function được execute trong transaction của withTransaction.
type TxFunc func(tx *sqlx.Tx) error

// withTransaction begin transaction trên conn và chạy fn trong đó.
//   - fn return nil: commit
//   - fn return error hoặc panic: rollback, sau đó trả về error
//     (hoặc re-throw panic)
func withTransaction(ctx context.Context, conn *sqlx.Conn, fn TxFunc) (err error) {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return newDatabaseError("begin", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return newDatabaseError("commit", err)
	}

	return nil
}
