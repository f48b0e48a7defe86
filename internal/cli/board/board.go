package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
)

// BoardCmd returns the board command, which prints every column side by side
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show every column with its cards in order",
		RunE:  runBoard,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (column:card pairs)")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Report(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	board, err := cliInstance.App.CardService.Board(ctx)
	if err != nil {
		return formatter.Report(err)
	}

	if quietMode {
		for _, column := range board {
			for _, card := range column.Cards {
				fmt.Printf("%d:%d\n", column.ID, card.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(board)
	}

	if len(board) == 0 {
		fmt.Println("No columns found")
		return nil
	}

	fmt.Println(styles.RenderBoard(board))
	return nil
}
