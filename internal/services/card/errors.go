package card

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
)

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("card title cannot be empty")
	ErrTitleTooLong  = errors.New("card title cannot exceed 255 characters")
	ErrInvalidCardID = errors.New("invalid card ID")

	// ErrInvalidColumnID still matches models.ErrInvalidColumn: an id that
	// cannot exist is reported the same way as one that does not
	ErrInvalidColumnID = fmt.Errorf("invalid column ID: %w", models.ErrInvalidColumn)
)
