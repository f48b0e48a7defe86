package card

import (
	"math"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/cardstack/internal/types"
)

// endOfColumn is clamped by the ordering engine to the last slot
const endOfColumn = types.Position(math.MaxInt32)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(InsertCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// positionFlag returns --position when given, otherwise the end of the column
func positionFlag(cmd *cobra.Command) types.Position {
	if !cmd.Flags().Changed("position") {
		return endOfColumn
	}
	pos, _ := cmd.Flags().GetInt("position")
	return types.Position(pos)
}
