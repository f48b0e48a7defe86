package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// CardStore handles pure data access for card content rows
type CardStore struct {
	q DBTX
}

// NewCardStore binds a card store to a transaction or the pool
func NewCardStore(q DBTX) *CardStore {
	return &CardStore{q: q}
}

// Insert writes a new content row. A taken id surfaces as ErrDuplicateID.
func (s *CardStore) Insert(ctx context.Context, card *models.Card) error {
	_, err := s.q.ExecContext(ctx,
		"INSERT INTO cards (id, title, description) VALUES (?, ?, ?)",
		card.ID.Int64(), card.Title, card.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert card %d: %w", card.ID, classify(err))
	}
	return nil
}

// Exists reports whether a content row exists for id
func (s *CardStore) Exists(ctx context.Context, id types.CardID) (bool, error) {
	var one int
	err := s.q.QueryRowContext(ctx, "SELECT 1 FROM cards WHERE id = ?", id.Int64()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up card %d: %w", id, classify(err))
	}
	return true, nil
}

// Get retrieves a card's content row
func (s *CardStore) Get(ctx context.Context, id types.CardID) (*models.Card, error) {
	card := &models.Card{}
	err := s.q.QueryRowContext(ctx,
		`SELECT id, title, description, created_at, updated_at
		 FROM cards WHERE id = ?`,
		id.Int64(),
	).Scan(&card.ID, &card.Title, &card.Description, &card.CreatedAt, &card.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, models.ErrCardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, classify(err))
	}
	return card, nil
}

// Detail retrieves the content row joined with the card's placement
func (s *CardStore) Detail(ctx context.Context, id types.CardID) (*models.CardDetail, error) {
	d := &models.CardDetail{}
	err := s.q.QueryRowContext(ctx,
		`SELECT c.id, c.title, c.description, p.column_id, col.name, p.position,
		        c.created_at, c.updated_at
		 FROM cards c
		 JOIN card_positions p ON p.card_id = c.id
		 JOIN columns col ON col.id = p.column_id
		 WHERE c.id = ?`,
		id.Int64(),
	).Scan(
		&d.ID, &d.Title, &d.Description, &d.ColumnID, &d.ColumnName, &d.Position,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %d: %w", id, models.ErrCardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, classify(err))
	}
	return d, nil
}

// Update rewrites title and description, leaving the placement alone
func (s *CardStore) Update(ctx context.Context, id types.CardID, title, description string) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, description, id.Int64(),
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", id, classify(err))
	}
	return expectOneRow(result, id)
}

// Delete removes the content row. The position row must already be gone.
func (s *CardStore) Delete(ctx context.Context, id types.CardID) error {
	result, err := s.q.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, classify(err))
	}
	return expectOneRow(result, id)
}

// ListByColumn returns the column's cards in position order
func (s *CardStore) ListByColumn(ctx context.Context, columnID types.ColumnID) ([]*models.CardSummary, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT c.id, c.title, p.column_id, p.position
		 FROM card_positions p
		 JOIN cards c ON c.id = p.card_id
		 WHERE p.column_id = ?
		 ORDER BY p.position`,
		columnID.Int64(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for column %d: %w", columnID, classify(err))
	}
	defer rows.Close()

	summaries := []*models.CardSummary{}
	for rows.Next() {
		summary := &models.CardSummary{}
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.ColumnID, &summary.Position); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func expectOneRow(result sql.Result, id types.CardID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read result for card %d: %w", id, classify(err))
	}
	if affected == 0 {
		return fmt.Errorf("card %d: %w", id, models.ErrCardNotFound)
	}
	return nil
}
