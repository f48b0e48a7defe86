package models

import (
	"time"

	"github.com/thenoetrevino/cardstack/internal/types"
)

// Card is the content row of a card on the board
type Card struct {
	ID          types.CardID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// GetID lets the CLI output formatter print the ID in quiet mode
func (c *Card) GetID() int {
	return int(c.ID)
}

// CardSummary is a DTO for listing cards in column order
type CardSummary struct {
	ID       types.CardID   `json:"id"`
	Title    string         `json:"title"`
	ColumnID types.ColumnID `json:"column_id"`
	Position types.Position `json:"position"`
}

// CardDetail is a DTO for the full card view
// Contains the content row plus the card's current placement
type CardDetail struct {
	ID          types.CardID   `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ColumnID    types.ColumnID `json:"column_id"`
	ColumnName  string         `json:"column_name"`
	Position    types.Position `json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (d *CardDetail) GetID() int {
	return int(d.ID)
}
