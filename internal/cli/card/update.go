package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	cardservice "github.com/thenoetrevino/cardstack/internal/services/card"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a card's title or description",
		Long: `Update a card's content. Its position is not changed.

Examples:
  cardstack card update --id=7 --title="Write better docs"
  cardstack card update --id=7 --description="## Notes"
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags (at least one)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetInt64("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := cardservice.UpdateCardRequest{CardID: types.CardID(cardID)}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if req.Title == nil && req.Description == nil {
		return formatter.Report(cli.UsageError(fmt.Errorf("one of --title or --description is required")))
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

	card, err := cliInstance.App.CardService.UpdateCard(ctx, req)
	if err != nil {
		return formatter.Report(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(card)
	}

	fmt.Printf("✓ Card #%d updated successfully\n", card.ID)
	return nil
}
