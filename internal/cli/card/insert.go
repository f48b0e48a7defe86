package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/models"
	cardservice "github.com/thenoetrevino/cardstack/internal/services/card"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// InsertCmd returns the card insert subcommand
func InsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a card into a column",
		Long: `Insert a card at a position in a column. Cards at and after that
position move down by one. Positions past the end append; negative
positions insert at the top.

Examples:
  # Append to the end of column 1
  cardstack card insert --id=7 --title="Write docs" --column=1

  # Insert at the top
  cardstack card insert --id=8 --title="Urgent" --column=1 --position=0

  # JSON output for agents
  cardstack card insert --id=9 --title="Review" --column=2 --json
`,
		RunE: runInsert,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Card ID (required)")
	cmd.Flags().String("title", "", "Card title (required)")
	cmd.Flags().Int64("column", 0, "Column ID (required)")
	for _, name := range []string{"id", "title", "column"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	// Optional flags
	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().Int("position", 0, "Zero-based position (default: end of column)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runInsert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetInt64("id")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
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

	cards := cliInstance.App.CardService
	card, err := cards.InsertCard(ctx, cardservice.InsertCardRequest{
		Card: models.Card{
			ID:          types.CardID(cardID),
			Title:       title,
			Description: description,
		},
		Position: cardservice.Position{
			ColumnID: types.ColumnID(columnID),
			Position: positionFlag(cmd),
		},
	})
	if err != nil {
		return formatter.Report(err)
	}

	detail, err := cards.GetCard(ctx, card.ID)
	if err != nil {
		return formatter.Report(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(detail)
	}

	fmt.Printf("✓ Card #%d '%s' inserted into %s at position %d\n",
		detail.ID, detail.Title, detail.ColumnName, detail.Position)
	return nil
}
