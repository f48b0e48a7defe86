package models

import "github.com/thenoetrevino/cardstack/internal/types"

// CardPosition places a card in a column.
// For every column the positions form the dense range 0..n-1, and a card has
// exactly one position row at a time.
type CardPosition struct {
	ColumnID types.ColumnID `json:"column_id"`
	CardID   types.CardID   `json:"card_id"`
	Position types.Position `json:"position"`
}

func (p *CardPosition) GetID() int {
	return int(p.CardID)
}
