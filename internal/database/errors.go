package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/thenoetrevino/cardstack/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify maps driver errors onto the domain error taxonomy.
// The original error stays in the chain so both the sentinel and the
// driver error match with errors.Is / errors.As.
func classify(err error) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	for _, known := range []error{
		models.ErrInvalidColumn,
		models.ErrCardNotFound,
		models.ErrDuplicateID,
		models.ErrConstraintViolation,
		models.ErrStoreUnavailable,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	code := sqliteErr.Code()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %w", models.ErrDuplicateID, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %w", models.ErrInvalidColumn, err)
	}

	// Primary result code lives in the low byte of extended codes
	switch code & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return fmt.Errorf("%w: %w", models.ErrConstraintViolation, err)
	case sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_FULL,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_NOTADB,
		sqlite3.SQLITE_CORRUPT:
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	return err
}

// IsRetryable reports whether the caller may retry the whole operation
func IsRetryable(err error) bool {
	return errors.Is(err, models.ErrStoreUnavailable)
}
