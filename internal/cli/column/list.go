package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List all columns on the board (in creation order).

Examples:
  # Human-readable list
  cardstack column list

  # JSON output for agents
  cardstack column list --json

  # Quiet mode (one ID per line)
  cardstack column list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx)
	if err != nil {
		return formatter.Report(err)
	}

	// Output based on mode
	if quietMode {
		for _, col := range columns {
			fmt.Printf("%d\n", col.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(columns)
	}

	if len(columns) == 0 {
		fmt.Println("No columns found")
		return nil
	}

	fmt.Println("Columns:")
	for i, col := range columns {
		fmt.Printf("  %d. %s (ID: %d)\n", i+1, col.Name, col.ID)
	}
	return nil
}
