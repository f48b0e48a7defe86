package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
)

// Counter names stored in op_counters
const (
	CounterInserts     = "inserts"
	CounterMoves       = "moves"
	CounterDeletes     = "deletes"
	CounterRowsShifted = "rows_shifted"
)

// CounterStore keeps the persistent operation totals
type CounterStore struct {
	q DBTX
}

// NewCounterStore binds a counter store to a transaction or the pool
func NewCounterStore(q DBTX) *CounterStore {
	return &CounterStore{q: q}
}

// Add increments counter name by delta, creating it on first use
func (s *CounterStore) Add(ctx context.Context, name string, delta int64) error {
	if delta == 0 {
		return nil
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO op_counters (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = value + excluded.value`,
		name, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to add to counter %s: %w", name, classify(err))
	}
	return nil
}

// Totals reads every counter; missing counters are zero
func (s *CounterStore) Totals(ctx context.Context) (models.OpTotals, error) {
	var totals models.OpTotals

	rows, err := s.q.QueryContext(ctx, "SELECT name, value FROM op_counters")
	if err != nil {
		return totals, fmt.Errorf("failed to read counters: %w", classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			value int64
		)
		if err := rows.Scan(&name, &value); err != nil {
			return totals, fmt.Errorf("failed to scan counter: %w", err)
		}
		switch name {
		case CounterInserts:
			totals.Inserts = value
		case CounterMoves:
			totals.Moves = value
		case CounterDeletes:
			totals.Deletes = value
		case CounterRowsShifted:
			totals.RowsShifted = value
		}
	}

	if err := rows.Err(); err != nil {
		return totals, fmt.Errorf("failed to read counters: %w", classify(err))
	}
	return totals, nil
}
