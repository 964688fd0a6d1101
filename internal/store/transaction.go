package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
)

// TxFn executes within a database transaction. Returning nil commits the
// transaction; returning an error rolls it back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction begins a transaction on db, runs fn, and commits or rolls
// back based on fn's result. A panic inside fn rolls the transaction back
// and is re-raised.
//
// The generation service uses this to make "delete upcoming tasks, insert
// the regenerated set" a single atomic step.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic failed",
					"error", rbErr, "panic", p)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("transaction rollback failed",
				"rollback_error", rbErr, "cause", err)
			return fmt.Errorf("rollback failed: %v (caused by: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
