package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	cardservice "github.com/thenoetrevino/cardstack/internal/services/card"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card within or across columns",
		Long: `Move a card to a position, optionally in another column.
Within a column only the cards between the old and new slot are renumbered.

Examples:
  # Move card 7 to the top of its column
  cardstack card move --id=7 --position=0

  # Move card 7 to the end of column 2
  cardstack card move --id=7 --column=2

  # Move card 7 to position 1 of column 2
  cardstack card move --id=7 --column=2 --position=1 --json
`,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Int64("column", 0, "Target column ID (default: current column)")
	cmd.Flags().Int("position", 0, "Zero-based target position (default: end of column)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetInt64("id")
	columnID, _ := cmd.Flags().GetInt64("column")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if !cmd.Flags().Changed("column") && !cmd.Flags().Changed("position") {
		return formatter.Report(cli.UsageError(fmt.Errorf("one of --column or --position is required")))
	}

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

	cards := cliInstance.App.CardService

	target := types.ColumnID(columnID)
	if !cmd.Flags().Changed("column") {
		current, err := cards.GetCard(ctx, types.CardID(cardID))
		if err != nil {
			return formatter.Report(err)
		}
		target = current.ColumnID
	}

	placed, err := cards.MoveCard(ctx, types.CardID(cardID), cardservice.Position{
		ColumnID: target,
		Position: positionFlag(cmd),
	})
	if err != nil {
		return formatter.Report(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(placed)
	}

	fmt.Printf("✓ Card #%d moved to column %d, position %d\n", placed.CardID, placed.ColumnID, placed.Position)
	return nil
}
