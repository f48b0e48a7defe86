package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards of a column in order",
		Long: `List the cards of a column by position.

Examples:
  cardstack card list --column=1
  cardstack card list --column=1 --json
  cardstack card list --column=1 --quiet
`,
		RunE: runList,
	}

	// Required flags
	cmd.Flags().Int64("column", 0, "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnID, _ := cmd.Flags().GetInt64("column")
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

	cards, err := cliInstance.App.CardService.ListColumn(ctx, types.ColumnID(columnID))
	if err != nil {
		return formatter.Report(err)
	}

	// Output based on mode
	if quietMode {
		for _, c := range cards {
			fmt.Printf("%d\n", c.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(cards)
	}

	if len(cards) == 0 {
		fmt.Printf("No cards in column %d\n", columnID)
		return nil
	}

	for _, c := range cards {
		fmt.Println(styles.RenderCardLine(c))
	}
	return nil
}
