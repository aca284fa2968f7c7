package database

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// TransactionWithResult executes fn within a database transaction, rolling
// back when fn returns an error. The result is only meaningful when the
// returned error is nil.
func TransactionWithResult[T any](ctx context.Context, db *DB, fn func(ctx context.Context, tx bun.Tx) (T, error)) (T, error) {
	var result T

	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})

	return result, err
}
