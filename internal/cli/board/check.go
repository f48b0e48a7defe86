package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/cli"
	"github.com/thenoetrevino/cardstack/internal/cli/styles"
)

// CheckCmd returns the check command, which verifies that every column's
// positions run 0..n-1 without gaps or duplicates
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify card positions are dense in every column",
		Long: `Re-read every column and report gaps or duplicate positions.
Exits non-zero when the ordering is damaged.`,
		RunE: runCheck,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.CardService.VerifyDensity(ctx); err != nil {
		return formatter.Report(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{"dense": true})
	}

	fmt.Println(styles.SuccessStyle.Render("✓ All columns are dense"))
	return nil
}
