package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

type txKey struct{}

// InTx reports whether ctx already carries a transaction.
func InTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok && tx != nil
}

// WithTx runs fn inside a single transaction. Repositories pick the transaction up through
// DB.Conn(ctx), so every statement fn issues commits or rolls back together.
// A nested call joins the outer transaction.
func WithTx(ctx context.Context, db *DB, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
