package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
	"github.com/thenoetrevino/cardstack/internal/models"
)

// ColumnCount is the per-column line of the stats output
type ColumnCount struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cards int    `json:"cards"`
}

// Stats is the stats command payload
type Stats struct {
	Columns    []ColumnCount   `json:"columns"`
	TotalCards int             `json:"total_cards"`
	Operations models.OpTotals `json:"operations"`
}

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show card counts and committed operation totals",
		RunE:  runStats,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	totals, err := cliInstance.App.CardService.Totals(ctx)
	if err != nil {
		return formatter.Report(err)
	}

	stats := Stats{Operations: totals}
	for _, column := range board {
		stats.Columns = append(stats.Columns, ColumnCount{
			ID:    column.ID.Int64(),
			Name:  column.Name,
			Cards: len(column.Cards),
		})
		stats.TotalCards += len(column.Cards)
	}

	if jsonOutput {
		return formatter.Success(stats)
	}

	fmt.Println(styles.TitleStyle.Render("Columns"))
	for _, c := range stats.Columns {
		fmt.Printf("  %s %s\n", styles.LabelStyle.Render(c.Name+":"), styles.ValueStyle.Render(fmt.Sprintf("%d", c.Cards)))
	}
	fmt.Printf("  %s %d\n\n", styles.LabelStyle.Render("Total:"), stats.TotalCards)

	ops := stats.Operations
	fmt.Println(styles.TitleStyle.Render("Operations"))
	fmt.Printf("  inserts %d, moves %d, deletes %d, rows shifted %d\n", ops.Inserts, ops.Moves, ops.Deletes, ops.RowsShifted)
	return nil
}
