package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/cardstack/internal/database"
	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:", 0)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// CreateTestColumn creates a test column and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, name string) types.ColumnID {
	t.Helper()
	col, err := database.NewColumnStore(db).Create(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col.ID
}

// CreateTestCard appends a card to the end of a column, keeping positions dense
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, id types.CardID, title string) {
	t.Helper()
	ctx := context.Background()

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		positions := database.NewPositionStore(tx, "")
		n, err := positions.CountInColumn(ctx, columnID)
		if err != nil {
			return err
		}
		if err := database.NewCardStore(tx).Insert(ctx, &models.Card{ID: id, Title: title}); err != nil {
			return err
		}
		return positions.WritePosition(ctx, models.CardPosition{
			ColumnID: columnID,
			CardID:   id,
			Position: types.Position(n),
		})
	})
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
}

// ColumnOrder returns the card ids of a column in position order
func ColumnOrder(t *testing.T, db *sql.DB, columnID types.ColumnID) []types.CardID {
	t.Helper()
	positions, err := database.NewPositionStore(db, "").PositionsInColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to read column %d: %v", columnID, err)
	}
	ids := make([]types.CardID, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, p.CardID)
	}
	return ids
}
