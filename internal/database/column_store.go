package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// ColumnStore gives the card store just enough of the board's columns to
// validate references; the board owns their lifecycle
type ColumnStore struct {
	q DBTX
}

// NewColumnStore binds a column store to a transaction or the pool
func NewColumnStore(q DBTX) *ColumnStore {
	return &ColumnStore{q: q}
}

// Create inserts a column and returns it
func (s *ColumnStore) Create(ctx context.Context, name string) (*models.Column, error) {
	result, err := s.q.ExecContext(ctx, "INSERT INTO columns (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", classify(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read column id: %w", classify(err))
	}
	return &models.Column{ID: types.ColumnID(id), Name: name}, nil
}

// Get retrieves a column; a missing row is ErrInvalidColumn
func (s *ColumnStore) Get(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	col := &models.Column{}
	err := s.q.QueryRowContext(ctx, "SELECT id, name FROM columns WHERE id = ?", id.Int64()).
		Scan(&col.ID, &col.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("column %d: %w", id, models.ErrInvalidColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get column %d: %w", id, classify(err))
	}
	return col, nil
}

// Exists reports whether the column can be referenced
func (s *ColumnStore) Exists(ctx context.Context, id types.ColumnID) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, models.ErrInvalidColumn) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all columns in creation order
func (s *ColumnStore) List(ctx context.Context) ([]*models.Column, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT id, name FROM columns ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", classify(err))
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.Name); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, rows.Err()
}
