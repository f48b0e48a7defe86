package models

import "github.com/thenoetrevino/cardstack/internal/types"

// Column represents a kanban board column (e.g., "Backlog", "In Progress").
// Its lifecycle belongs to the board; the card store only references it.
type Column struct {
	ID   types.ColumnID `json:"id"`
	Name string         `json:"name"`
}

func (c *Column) GetID() int {
	return int(c.ID)
}

// ColumnCards is a column together with its cards in position order
type ColumnCards struct {
	Column
	Cards []*CardSummary `json:"cards"`
}
