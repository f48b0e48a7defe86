package card

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display a card with its column, position, timestamps and rendered description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	// Flags
	cmd.Flags().Int64("id", 0, "Card ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse card ID from positional arg or flag
	cardID, _ := cmd.Flags().GetInt64("id")
	if len(args) > 0 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return formatter.Report(cli.UsageError(fmt.Errorf("invalid card id %q", args[0])))
		}
		cardID = parsed
	} else if !cmd.Flags().Changed("id") {
		return formatter.Report(cli.UsageError(fmt.Errorf("card id is required")))
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

	card, err := cliInstance.App.CardService.GetCard(ctx, types.CardID(cardID))
	if err != nil {
		return formatter.Report(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(card)
	}

	fmt.Println(renderCard(card))
	return nil
}

func renderCard(card *models.CardDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", card.ID, card.Title)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		styles.LabelStyle.Render("Column:"),
		styles.ValueStyle.Render(card.ColumnName),
		styles.LabelStyle.Render("Position:"),
		styles.ValueStyle.Render(strconv.Itoa(int(card.Position))),
	))

	if !card.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(card.CreatedAt.Format("Jan 2, 2006 3:04 PM")),
		))
	}
	if !card.UpdatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Updated:"),
			styles.SubtitleStyle.Render(card.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
		))
	}

	if card.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(styles.RenderMarkdown(card.Description, styles.CardWidth-8))
	}

	return styles.RenderCard(content.String())
}
