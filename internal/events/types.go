package events

import (
	"slices"
	"time"

	"github.com/thenoetrevino/cardstack/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCardsChanged EventType = "cards_changed"
)

// Event represents a committed change to one or more columns
type Event struct {
	Type       EventType
	ColumnIDs  []types.ColumnID // Columns whose ordering or content changed
	Timestamp  time.Time        // When the change committed
	SequenceID int64            // Monotonically increasing sequence number for ordering
}

// Touches reports whether the event concerns columnID
func (e Event) Touches(columnID types.ColumnID) bool {
	return slices.Contains(e.ColumnIDs, columnID)
}
