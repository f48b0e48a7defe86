package card

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/cardstack/internal/cli"
	testcli "github.com/thenoetrevino/cardstack/internal/testutil/cli"
	"github.com/thenoetrevino/cardstack/internal/types"
)

func colArg(id types.ColumnID) string {
	return strconv.FormatInt(int64(id), 10)
}

func TestCardCmd_Subcommands(t *testing.T) {
	cmd := CardCmd()

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"insert", "move", "delete", "update", "show", "list"}, names)
}

func TestInsertCard(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	testcli.CreateTestCard(t, db, col, 1, "A")
	testcli.CreateTestCard(t, db, col, 2, "B")

	t.Run("Appends by default", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, InsertCmd(),
			[]string{"--id", "3", "--title", "C", "--column", colArg(col), "--json"})
		require.NoError(t, err)

		data := testcli.JSONData(t, output)
		assert.Equal(t, float64(3), data["id"])
		assert.Equal(t, float64(2), data["position"])
		assert.Equal(t, "Todo", data["column_name"])
	})

	t.Run("Inserts before the occupant", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, InsertCmd(),
			[]string{"--id", "4", "--title", "D", "--column", colArg(col), "--position", "1", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []types.CardID{1, 4, 2, 3}, testcli.ColumnOrder(t, db, col))
	})

	t.Run("Negative position goes to the top", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, InsertCmd(),
			[]string{"--id", "5", "--title", "E", "--column", colArg(col), "--position", "-4", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []types.CardID{5, 1, 4, 2, 3}, testcli.ColumnOrder(t, db, col))
	})

	t.Run("Human output", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, InsertCmd(),
			[]string{"--id", "6", "--title", "F", "--column", colArg(col)})
		require.NoError(t, err)
		assert.Contains(t, output, "Card #6 'F' inserted into Todo at position 5")
	})
}

func TestInsertCard_Errors(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	testcli.CreateTestCard(t, db, col, 1, "A")

	tests := []struct {
		name     string
		args     []string
		code     string
		exitCode int
	}{
		{"duplicate id", []string{"--id", "1", "--title", "X", "--column", colArg(col)}, "DUPLICATE_ID", cli.ExitValidation},
		{"missing column", []string{"--id", "2", "--title", "X", "--column", "999"}, "COLUMN_NOT_FOUND", cli.ExitNotFound},
		{"blank title", []string{"--id", "2", "--title", " ", "--column", colArg(col)}, "VALIDATION_ERROR", cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testcli.ExecuteCLICommand(t, app, InsertCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Contains(t, output, tt.code)
			assert.Equal(t, tt.exitCode, cli.ExitCodeFor(err))
		})
	}

	assert.Equal(t, []types.CardID{1}, testcli.ColumnOrder(t, db, col))
}

func TestMoveCard(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	todo := testcli.CreateTestColumn(t, db, "Todo")
	done := testcli.CreateTestColumn(t, db, "Done")
	for i, title := range []string{"A", "B", "C"} {
		testcli.CreateTestCard(t, db, todo, types.CardID(i+1), title)
	}

	t.Run("Within column", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "3", "--position", "0", "--json"})
		require.NoError(t, err)

		data := testcli.JSONData(t, output)
		assert.Equal(t, float64(0), data["position"])
		assert.Equal(t, []types.CardID{3, 1, 2}, testcli.ColumnOrder(t, db, todo))
	})

	t.Run("Across columns defaults to the end", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "1", "--column", colArg(done), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []types.CardID{3, 2}, testcli.ColumnOrder(t, db, todo))
		assert.Equal(t, []types.CardID{1}, testcli.ColumnOrder(t, db, done))
	})

	t.Run("Needs a target", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "1"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("Unknown card", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "42", "--position", "0", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})
}

func TestDeleteCard(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	for i, title := range []string{"A", "B", "C"} {
		testcli.CreateTestCard(t, db, col, types.CardID(i+1), title)
	}

	output, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "Card #1 deleted successfully")
	assert.Equal(t, []types.CardID{2, 3}, testcli.ColumnOrder(t, db, col))

	_, err = testcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestUpdateCard(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	testcli.CreateTestCard(t, db, col, 1, "A")
	testcli.CreateTestCard(t, db, col, 2, "B")

	output, err := testcli.ExecuteCLICommand(t, app, UpdateCmd(),
		[]string{"--id", "2", "--title", "Renamed", "--description", "# Notes", "--json"})
	require.NoError(t, err)

	data := testcli.JSONData(t, output)
	assert.Equal(t, "Renamed", data["title"])
	assert.Equal(t, []types.CardID{1, 2}, testcli.ColumnOrder(t, db, col))

	_, err = testcli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", "2"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestShowCard(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	testcli.CreateTestCard(t, db, col, 7, "Write docs")

	t.Run("Positional id", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"7", "--json"})
		require.NoError(t, err)

		data := testcli.JSONData(t, output)
		assert.Equal(t, "Write docs", data["title"])
		assert.Equal(t, "Todo", data["column_name"])
	})

	t.Run("Human output", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "7"})
		require.NoError(t, err)
		assert.Contains(t, output, "Write docs")
	})

	t.Run("Bad id", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"seven"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})
}

func TestListCards(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	testcli.CreateTestCard(t, db, col, 3, "C")
	testcli.CreateTestCard(t, db, col, 1, "A")

	output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", colArg(col), "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "3\n1\n", output)

	output, err = testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", colArg(col), "--json"})
	require.NoError(t, err)
	cards := testcli.ParseJSON(t, output)["data"].([]interface{})
	require.Len(t, cards, 2)
	assert.Equal(t, float64(3), cards[0].(map[string]interface{})["id"])

	_, err = testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--column", "999", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

// The insert/delete/move walkthrough from the README, driven through the commands
func TestScenarioThroughCommands(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	defer db.Close()

	col := testcli.CreateTestColumn(t, db, "Todo")
	c := colArg(col)

	steps := [][]string{
		{"--id", "1", "--title", "A", "--column", c},
		{"--id", "2", "--title", "B", "--column", c},
		{"--id", "3", "--title", "C", "--column", c},
		{"--id", "4", "--title", "D", "--column", c, "--position", "1"},
	}
	for _, args := range steps {
		_, err := testcli.ExecuteCLICommand(t, app, InsertCmd(), append(args, "--quiet"))
		require.NoError(t, err)
	}
	assert.Equal(t, []types.CardID{1, 4, 2, 3}, testcli.ColumnOrder(t, db, col))

	_, err := testcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "2", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []types.CardID{1, 4, 3}, testcli.ColumnOrder(t, db, col))

	_, err = testcli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "1", "--position", "2", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []types.CardID{4, 3, 1}, testcli.ColumnOrder(t, db, col))
}
