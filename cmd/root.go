package cmd

import (
	"context"
	"errors"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/board"
	"github.com/thenoetrevino/cardstack/internal/cli/card"
	"github.com/thenoetrevino/cardstack/internal/cli/column"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cardstack",
		Short: "cardstack - ordered kanban cards in SQLite",
		Long: `cardstack stores kanban cards in columns and keeps every column's
positions dense (0..n-1) across inserts, moves and deletes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	cmd.AddCommand(column.ColumnCmd())
	cmd.AddCommand(card.CardCmd())
	cmd.AddCommand(board.BoardCmd())
	cmd.AddCommand(board.CheckCmd())
	cmd.AddCommand(board.StatsCmd())

	return cmd
}

// Execute runs the root command and exits with the code mapped from its error
func Execute(ctx context.Context) {
	err := run(ctx, rootCmd, os.Args[1:])
	os.Exit(cli.ExitCodeFor(err))
}

// run executes root with args. Commands report their own failures; anything
// cobra rejects before a command runs (unknown command, missing required
// flag, bad arguments) is printed here as a usage error.
func run(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil || cli.IsReported(err) {
		return err
	}

	if !errors.Is(err, cli.ErrUsage) {
		err = cli.UsageError(err)
	}
	formatter := &cli.OutputFormatter{JSON: wantsJSON(cmd, args)}
	return formatter.Report(err)
}

// wantsJSON checks the parsed --json flag, falling back to the raw args
// when parsing stopped before flags were read
func wantsJSON(cmd *cobra.Command, args []string) bool {
	if cmd != nil {
		if on, err := cmd.Flags().GetBool("json"); err == nil && on {
			return true
		}
	}
	return slices.Contains(args, "--json") || slices.Contains(args, "--json=true")
}
