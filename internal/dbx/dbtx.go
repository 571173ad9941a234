// Package dbx holds the small database plumbing the intake repositories
// share: DBTX, the querier interface that lets a repository run against
// either a plain connection or a transaction, and WithTx, which wraps the
// multi-row writes (candidate upsert plus its experience inserts, lead plus
// its resume document) in a single transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the intake repositories use. Both
// *sql.DB and *sql.Tx satisfy it, so the repomanager can vend the same
// repository inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use (a batch save: the candidate row and its experiences land
// together or not at all):
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    candidate, err := rm.Candidates(tx).Upsert(ctx, c)
//	    if err != nil {
//	        return err
//	    }
//	    _, err = rm.Experiences(tx).Create(ctx, e)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
