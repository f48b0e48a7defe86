package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// WithTx executes fn within a database transaction.
// It commits when fn returns nil and rolls back on every other exit path,
// including panics and cancelled contexts, so a multi-statement mutation
// either lands completely or leaves no trace.
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	logger := slog.With("tx_id", uuid.NewString())

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	logger.Debug("transaction started")

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("failed to rollback transaction", "error", err)
			return
		}
		logger.Debug("transaction rolled back")
	}()

	if err := fn(tx); err != nil {
		logger.Debug("transaction failed", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}
	committed = true
	logger.Debug("transaction committed")

	return nil
}
