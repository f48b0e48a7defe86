package types

// ID types give semantic meaning to the integers that flow between layers.

// CardID identifies a card for its whole lifetime
type CardID int64

// ColumnID identifies a column on the board
type ColumnID int64

// Position is a zero-based rank of a card within its column
type Position int

// Int64 converts the ID back to the driver representation
func (id CardID) Int64() int64 {
	return int64(id)
}

func (id ColumnID) Int64() int64 {
	return int64(id)
}

// Valid reports whether the ID can reference a stored row.
// Card IDs are caller-assigned, so zero is allowed.
func (id CardID) Valid() bool {
	return id >= 0
}

func (id ColumnID) Valid() bool {
	return id > 0
}

// Clamp bounds p to [lo, hi]
func (p Position) Clamp(lo, hi Position) Position {
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}
