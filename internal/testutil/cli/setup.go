package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/cardstack/internal/app"
	"github.com/thenoetrevino/cardstack/internal/testutil"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db)
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance
}

// CreateTestColumn wraps testutil.CreateTestColumn for CLI tests
func CreateTestColumn(t *testing.T, db *sql.DB, name string) types.ColumnID {
	t.Helper()
	return testutil.CreateTestColumn(t, db, name)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
func CreateTestCard(t *testing.T, db *sql.DB, columnID types.ColumnID, id types.CardID, title string) {
	t.Helper()
	testutil.CreateTestCard(t, db, columnID, id, title)
}

// ColumnOrder wraps testutil.ColumnOrder for CLI tests
func ColumnOrder(t *testing.T, db *sql.DB, columnID types.ColumnID) []types.CardID {
	t.Helper()
	return testutil.ColumnOrder(t, db, columnID)
}
