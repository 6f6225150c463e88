package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/match"
)

// newCheckCmd creates the check command.
// It decides feasibility and reports the reason; the exit status lets
// scripts branch on the verdict without parsing output.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <group-file>",
		Short: "Check whether a valid assignment exists for a group",
		Long: `Check whether a complete valid assignment exists for a group.

The verdict comes with a reason: which participant has nobody left to
give to, who cannot receive from anyone, or that the exclusion lists
conflict globally even though everyone has options individually.

Exits 0 when the group is solvable and 1 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, participants, err := loadParticipants(ctx, args[0])
			if err != nil {
				return err
			}

			spinner := newSpinner(ctx, "Checking feasibility...")
			spinner.Start()
			result := match.CheckSolvable(participants)
			spinner.Stop()

			if !result.Possible {
				printError("Not solvable: %s", result.Reason)
				return fmt.Errorf("group is not solvable")
			}
			printSuccess("Solvable: %s", result.Reason)
			return nil
		},
	}
}
