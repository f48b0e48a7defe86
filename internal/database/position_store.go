package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/config"
	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// PositionStore handles pure data access for card_positions.
// No business rules: callers sequence shifts and writes so that the
// unique (column_id, position) constraint is never hit.
type PositionStore struct {
	q        DBTX
	strategy string
}

// NewPositionStore binds a position store to a transaction (or the pool for reads).
// strategy is config.ShiftBulk or config.ShiftStepwise; anything else means bulk.
func NewPositionStore(q DBTX, strategy string) *PositionStore {
	if strategy != config.ShiftStepwise {
		strategy = config.ShiftBulk
	}
	return &PositionStore{q: q, strategy: strategy}
}

// ============================================================================
// READS
// ============================================================================

// PositionsInColumn returns the column's rows ascending by position
func (s *PositionStore) PositionsInColumn(ctx context.Context, columnID types.ColumnID) ([]models.CardPosition, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT card_id, column_id, position
		 FROM card_positions
		 WHERE column_id = ?
		 ORDER BY position`,
		columnID.Int64(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions for column %d: %w", columnID, classify(err))
	}
	defer rows.Close()

	var positions []models.CardPosition
	for rows.Next() {
		var p models.CardPosition
		if err := rows.Scan(&p.CardID, &p.ColumnID, &p.Position); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions for column %d: %w", columnID, classify(err))
	}

	return positions, nil
}

// CountInColumn returns the number of cards placed in a column
func (s *PositionStore) CountInColumn(ctx context.Context, columnID types.ColumnID) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM card_positions WHERE column_id = ?",
		columnID.Int64(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count column %d: %w", columnID, classify(err))
	}
	return count, nil
}

// PositionOf returns where a card currently sits
func (s *PositionStore) PositionOf(ctx context.Context, cardID types.CardID) (models.CardPosition, error) {
	var p models.CardPosition
	err := s.q.QueryRowContext(ctx,
		"SELECT card_id, column_id, position FROM card_positions WHERE card_id = ?",
		cardID.Int64(),
	).Scan(&p.CardID, &p.ColumnID, &p.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("card %d: %w", cardID, models.ErrCardNotFound)
	}
	if err != nil {
		return p, fmt.Errorf("failed to get position of card %d: %w", cardID, classify(err))
	}
	return p, nil
}

// ============================================================================
// WRITES
// ============================================================================

// WritePosition upserts the single row for pos.CardID
func (s *PositionStore) WritePosition(ctx context.Context, pos models.CardPosition) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO card_positions (card_id, column_id, position)
		 VALUES (?, ?, ?)
		 ON CONFLICT (card_id) DO UPDATE
		 SET column_id = excluded.column_id, position = excluded.position`,
		pos.CardID.Int64(), pos.ColumnID.Int64(), int(pos.Position),
	)
	if err != nil {
		return fmt.Errorf("failed to write card %d at %d/%d: %w",
			pos.CardID, pos.ColumnID, pos.Position, classify(err))
	}
	return nil
}

// RemovePosition deletes the row for cardID, leaving a gap in its column
func (s *PositionStore) RemovePosition(ctx context.Context, cardID types.CardID) error {
	result, err := s.q.ExecContext(ctx, "DELETE FROM card_positions WHERE card_id = ?", cardID.Int64())
	if err != nil {
		return fmt.Errorf("failed to remove position of card %d: %w", cardID, classify(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove position of card %d: %w", cardID, classify(err))
	}
	if affected == 0 {
		return fmt.Errorf("card %d: %w", cardID, models.ErrCardNotFound)
	}
	return nil
}

// ShiftRange adds delta (+1 or -1) to every position >= from in the column
// and returns the number of rows renumbered
func (s *PositionStore) ShiftRange(ctx context.Context, columnID types.ColumnID, from types.Position, delta int) (int64, error) {
	return s.shift(ctx, columnID, from, nil, delta)
}

// ShiftInterval adds delta to every position in [from, to] in the column
func (s *PositionStore) ShiftInterval(ctx context.Context, columnID types.ColumnID, from, to types.Position, delta int) (int64, error) {
	if from > to {
		return 0, nil
	}
	return s.shift(ctx, columnID, from, &to, delta)
}

func (s *PositionStore) shift(ctx context.Context, columnID types.ColumnID, from types.Position, to *types.Position, delta int) (int64, error) {
	if delta != 1 && delta != -1 {
		return 0, fmt.Errorf("shift delta must be +1 or -1, got %d", delta)
	}
	if int(from)+delta < 0 {
		return 0, fmt.Errorf("%w: shifting column %d from %d by %d yields a negative position",
			models.ErrConstraintViolation, columnID, from, delta)
	}

	var (
		n   int64
		err error
	)
	if s.strategy == config.ShiftStepwise {
		n, err = s.shiftStepwise(ctx, columnID, from, to, delta)
	} else {
		n, err = s.shiftBulk(ctx, columnID, from, to, delta)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to shift column %d from %d by %d: %w", columnID, from, delta, classify(err))
	}
	return n, nil
}

// shiftBulk renumbers the range with two statements regardless of its size.
// SQLite checks UNIQUE per row during an UPDATE, so position+1 can collide
// with a neighbour that has not moved yet. Phase one parks every affected
// row at -(p+delta)-1, which is negative and distinct per row; phase two
// flips the parked rows back to p+delta.
func (s *PositionStore) shiftBulk(ctx context.Context, columnID types.ColumnID, from types.Position, to *types.Position, delta int) (int64, error) {
	query := `UPDATE card_positions
		SET position = -(position + ?) - 1
		WHERE column_id = ? AND position >= ?`
	args := []any{delta, columnID.Int64(), int(from)}
	if to != nil {
		query += " AND position <= ?"
		args = append(args, int(*to))
	}

	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	parked, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if parked == 0 {
		return 0, nil
	}

	_, err = s.q.ExecContext(ctx,
		`UPDATE card_positions
		 SET position = -position - 1
		 WHERE column_id = ? AND position < 0`,
		columnID.Int64(),
	)
	if err != nil {
		return 0, err
	}

	return parked, nil
}

// shiftStepwise moves one row at a time, walking away from the gap:
// descending when opening (+1), ascending when closing (-1)
func (s *PositionStore) shiftStepwise(ctx context.Context, columnID types.ColumnID, from types.Position, to *types.Position, delta int) (int64, error) {
	order := "DESC"
	if delta < 0 {
		order = "ASC"
	}

	query := "SELECT card_id FROM card_positions WHERE column_id = ? AND position >= ?"
	args := []any{columnID.Int64(), int(from)}
	if to != nil {
		query += " AND position <= ?"
		args = append(args, int(*to))
	}
	query += " ORDER BY position " + order

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	var cardIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		cardIDs = append(cardIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, id := range cardIDs {
		_, err := s.q.ExecContext(ctx,
			"UPDATE card_positions SET position = position + ? WHERE card_id = ?",
			delta, id,
		)
		if err != nil {
			return 0, err
		}
	}

	return int64(len(cardIDs)), nil
}
