package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
	cardservice "github.com/thenoetrevino/cardstack/internal/services/card"
	columnservice "github.com/thenoetrevino/cardstack/internal/services/column"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: constraint violations, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unparseable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or oversized titles, invalid ids, duplicate card ids.
	ExitValidation = 5

	// ExitStoreUnavailable indicates the database could not be reached or was locked.
	// The command may succeed if retried.
	ExitStoreUnavailable = 6
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// UsageError wraps a flag or argument error so it maps to ExitUsage
func UsageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

var validationErrors = []error{
	models.ErrDuplicateID,
	cardservice.ErrEmptyTitle,
	cardservice.ErrTitleTooLong,
	cardservice.ErrInvalidCardID,
	columnservice.ErrEmptyName,
	columnservice.ErrNameTooLong,
	columnservice.ErrInvalidColumnID,
}

// ExitCodeFor maps an error returned by a command to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrStoreUnavailable):
		return ExitStoreUnavailable
	case errors.Is(err, models.ErrCardNotFound):
		return ExitNotFound
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return ExitValidation
		}
	}

	// Checked after validation: ErrInvalidColumnID also wraps ErrInvalidColumn
	if errors.Is(err, models.ErrInvalidColumn) {
		return ExitNotFound
	}

	return ExitError
}

// ErrorCode returns the machine readable code printed with an error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrStoreUnavailable):
		return "STORE_UNAVAILABLE"
	case errors.Is(err, models.ErrCardNotFound):
		return "CARD_NOT_FOUND"
	case errors.Is(err, models.ErrDuplicateID):
		return "DUPLICATE_ID"
	case errors.Is(err, models.ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	}

	if ExitCodeFor(err) == ExitValidation {
		return "VALIDATION_ERROR"
	}
	if errors.Is(err, models.ErrInvalidColumn) {
		return "COLUMN_NOT_FOUND"
	}
	return "ERROR"
}
