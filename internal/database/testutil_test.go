package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:", 0)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestColumn inserts a column and returns its id
func createTestColumn(t *testing.T, db *sql.DB, name string) types.ColumnID {
	t.Helper()
	col, err := NewColumnStore(db).Create(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create column %q: %v", name, err)
	}
	return col.ID
}

// placeCards creates cards ids[i] at position i of the column
func placeCards(t *testing.T, db *sql.DB, columnID types.ColumnID, ids ...types.CardID) {
	t.Helper()
	ctx := context.Background()
	cards := NewCardStore(db)
	positions := NewPositionStore(db, "")
	for i, id := range ids {
		if err := cards.Insert(ctx, &models.Card{ID: id, Title: "card"}); err != nil {
			t.Fatalf("Failed to insert card %d: %v", id, err)
		}
		pos := models.CardPosition{ColumnID: columnID, CardID: id, Position: types.Position(i)}
		if err := positions.WritePosition(ctx, pos); err != nil {
			t.Fatalf("Failed to place card %d: %v", id, err)
		}
	}
}

// columnOrder reads card ids in position order, failing on any gap
func columnOrder(t *testing.T, db *sql.DB, columnID types.ColumnID) []types.CardID {
	t.Helper()
	positions, err := NewPositionStore(db, "").PositionsInColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to read positions: %v", err)
	}
	ids := make([]types.CardID, 0, len(positions))
	for i, p := range positions {
		if int(p.Position) != i {
			t.Fatalf("column %d not dense: card %d at %d, expected %d", columnID, p.CardID, p.Position, i)
		}
		ids = append(ids, p.CardID)
	}
	return ids
}
