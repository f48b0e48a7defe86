package card

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card by ID (requires confirmation unless --force, --json or --quiet).
The cards below it in its column move up by one.

Examples:
  # Delete with confirmation
  cardstack card delete --id=7

  # Skip confirmation
  cardstack card delete --id=7 --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")
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

	// Ask for confirmation unless force, json or quiet mode
	if !force && !jsonOutput && !quietMode {
		card, err := cards.GetCard(ctx, types.CardID(cardID))
		if err != nil {
			return formatter.Report(err)
		}
		fmt.Printf("Delete card #%d: '%s'? (y/N): ", card.ID, card.Title)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			slog.Debug("failed to read confirmation", "error", err)
		}
		if r := strings.ToLower(response); r != "y" && r != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cards.DeleteCard(ctx, types.CardID(cardID)); err != nil {
		return formatter.Report(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{"card_id": cardID})
	}

	fmt.Printf("✓ Card #%d deleted successfully\n", cardID)
	return nil
}
