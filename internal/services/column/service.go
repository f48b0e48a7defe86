package column

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/cardstack/internal/database"
	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

const maxNameLength = 50

// Service defines the column operations the card store needs from the board
type Service interface {
	// Read operations
	ListColumns(ctx context.Context) ([]*models.Column, error)
	GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, name string) (*models.Column, error)
}

// service implements Service interface
type service struct {
	db *sql.DB
}

// NewService creates a new column service
func NewService(db *sql.DB) Service {
	return &service{db: db}
}

// ListColumns retrieves all columns in creation order
func (s *service) ListColumns(ctx context.Context) ([]*models.Column, error) {
	columns, err := database.NewColumnStore(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return columns, nil
}

// GetColumn retrieves a specific column
func (s *service) GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	if !id.Valid() {
		return nil, ErrInvalidColumnID
	}
	return database.NewColumnStore(s.db).Get(ctx, id)
}

// CreateColumn appends a new column to the board
func (s *service) CreateColumn(ctx context.Context, name string) (*models.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}

	var column *models.Column
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		column, err = database.NewColumnStore(tx).Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	slog.Debug("column created", "column_id", column.ID, "name", column.Name)
	return column, nil
}
