package ordering

import (
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
)

// CheckDense verifies that positions, read ascending from one column, are
// exactly 0..n-1. It reports the first gap or duplicate it finds.
func CheckDense(positions []models.CardPosition) error {
	for i, p := range positions {
		if int(p.Position) != i {
			return fmt.Errorf("column %d: card %d at position %d, expected %d: %w",
				p.ColumnID, p.CardID, p.Position, i, models.ErrConstraintViolation)
		}
	}
	return nil
}
