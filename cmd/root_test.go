package cmd

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/testutil"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"column", "card", "board", "check", "stats"} {
		assert.Contains(t, names, want)
	}
}

// None of these reach a RunE, so no database is opened
func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"bad flag value", []string{"card", "insert", "--id", "not-a-number"}, "invalid argument"},
		{"missing required flag", []string{"card", "insert", "--title", "x", "--column", "1"}, `required flag(s) "id" not set`},
		{"unknown command", []string{"crad", "list"}, `unknown command "crad"`},
		{"too many arguments", []string{"card", "show", "1", "2"}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			stderr := testutil.CaptureStderr(t, func() {
				err = run(context.Background(), newRootCmd(), tt.args)
			})

			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
			assert.True(t, cli.IsReported(err))
			assert.Contains(t, stderr, tt.message)
		})
	}
}

func TestRun_UsageErrorAsJSON(t *testing.T) {
	var err error
	stdout := testutil.CaptureOutput(t, func() {
		err = run(context.Background(), newRootCmd(), []string{"card", "insert", "--title", "x", "--column", "1", "--json"})
	})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "USAGE_ERROR", errData["code"])
	assert.Contains(t, errData["message"], `required flag(s) "id" not set`)
}
