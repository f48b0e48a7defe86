// Package ordering keeps cards densely numbered 0..n-1 within each column.
// Every operation is a sequence of position store calls that must run inside
// one transaction; intermediate states are never visible outside it.
package ordering

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// Store is the position data access the engine sequences.
// database.PositionStore implements it against a *sql.Tx.
type Store interface {
	CountInColumn(ctx context.Context, columnID types.ColumnID) (int, error)
	ShiftRange(ctx context.Context, columnID types.ColumnID, from types.Position, delta int) (int64, error)
	ShiftInterval(ctx context.Context, columnID types.ColumnID, from, to types.Position, delta int) (int64, error)
	WritePosition(ctx context.Context, pos models.CardPosition) error
	RemovePosition(ctx context.Context, cardID types.CardID) error
}

// Slot addresses a position within a column
type Slot struct {
	ColumnID types.ColumnID
	Position types.Position
}

// Result reports where the card ended up and how many other rows were renumbered
type Result struct {
	Position models.CardPosition
	Shifted  int64
	NoOp     bool
}

// Engine implements insert, move and delete over a Store
type Engine struct {
	store Store
}

// New creates an engine bound to a transaction-scoped store
func New(store Store) *Engine {
	return &Engine{store: store}
}

// Insert places cardID at target, clamped to [0, n]. The occupant of the
// target slot and everything after it move one step toward the end.
func (e *Engine) Insert(ctx context.Context, cardID types.CardID, target Slot) (Result, error) {
	n, err := e.store.CountInColumn(ctx, target.ColumnID)
	if err != nil {
		return Result{}, err
	}
	pos := target.Position.Clamp(0, types.Position(n))

	shifted, err := e.store.ShiftRange(ctx, target.ColumnID, pos, +1)
	if err != nil {
		return Result{}, err
	}

	placed := models.CardPosition{ColumnID: target.ColumnID, CardID: cardID, Position: pos}
	if err := e.store.WritePosition(ctx, placed); err != nil {
		return Result{}, err
	}

	return Result{Position: placed, Shifted: shifted}, nil
}

// Move relocates cardID from its current slot to the target slot.
// Within a column only the cards between the old and new slot are renumbered;
// across columns the source is compacted and the card inserted at the target.
func (e *Engine) Move(ctx context.Context, cardID types.CardID, from, to Slot) (Result, error) {
	if from.ColumnID == to.ColumnID {
		return e.moveWithinColumn(ctx, cardID, from, to.Position)
	}

	compacted, err := e.remove(ctx, cardID, from)
	if err != nil {
		return Result{}, err
	}

	res, err := e.Insert(ctx, cardID, to)
	if err != nil {
		return Result{}, err
	}
	res.Shifted += compacted
	return res, nil
}

func (e *Engine) moveWithinColumn(ctx context.Context, cardID types.CardID, from Slot, target types.Position) (Result, error) {
	n, err := e.store.CountInColumn(ctx, from.ColumnID)
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{}, fmt.Errorf("column %d is empty but holds card %d: %w",
			from.ColumnID, cardID, models.ErrConstraintViolation)
	}
	to := target.Clamp(0, types.Position(n-1))

	current := models.CardPosition{ColumnID: from.ColumnID, CardID: cardID, Position: from.Position}
	if to == from.Position {
		return Result{Position: current, NoOp: true}, nil
	}

	// Vacate the card's slot first so the shifted neighbours can take it
	if err := e.store.RemovePosition(ctx, cardID); err != nil {
		return Result{}, err
	}

	var shifted int64
	if to > from.Position {
		// Forward: (from, to] slide back by one
		shifted, err = e.store.ShiftInterval(ctx, from.ColumnID, from.Position+1, to, -1)
	} else {
		// Backward: [to, from) slide forward by one
		shifted, err = e.store.ShiftInterval(ctx, from.ColumnID, to, from.Position-1, +1)
	}
	if err != nil {
		return Result{}, err
	}

	placed := models.CardPosition{ColumnID: from.ColumnID, CardID: cardID, Position: to}
	if err := e.store.WritePosition(ctx, placed); err != nil {
		return Result{}, err
	}

	return Result{Position: placed, Shifted: shifted}, nil
}

// Delete removes cardID's position row and compacts its column.
// The caller deletes the content row in the same transaction.
func (e *Engine) Delete(ctx context.Context, cardID types.CardID, at Slot) (Result, error) {
	shifted, err := e.remove(ctx, cardID, at)
	if err != nil {
		return Result{}, err
	}
	removed := models.CardPosition{ColumnID: at.ColumnID, CardID: cardID, Position: at.Position}
	return Result{Position: removed, Shifted: shifted}, nil
}

// remove deletes the row and closes the gap it leaves behind
func (e *Engine) remove(ctx context.Context, cardID types.CardID, at Slot) (int64, error) {
	if err := e.store.RemovePosition(ctx, cardID); err != nil {
		return 0, err
	}
	return e.store.ShiftRange(ctx, at.ColumnID, at.Position+1, -1)
}
