package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/match"
)

// newStatsCmd creates the stats command showing constraint pressure.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <group-file>",
		Short: "Show per-participant constraint pressure",
		Long: `Show how constrained each participant is.

For every participant the table lists their exclusion count, how many
receivers remain available, and the share of the group they exclude.
Participants are sorted most-constrained-first, so the people most
likely to make matching fail are at the top.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, participants, err := loadParticipants(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			stats := match.ComputeStats(participants)
			fmt.Println(renderStatsTable(stats))
			printInfo("%d participants", stats.TotalParticipants)
			return nil
		},
	}
}

// renderStatsTable formats constraint statistics as a lipgloss table.
func renderStatsTable(stats match.Stats) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Headers("PARTICIPANT", "EXCLUSIONS", "AVAILABLE", "PRESSURE")

	for _, ps := range stats.Participants {
		t.Row(
			ps.Name,
			strconv.Itoa(ps.Exclusions),
			strconv.Itoa(ps.AvailableReceivers),
			fmt.Sprintf("%.0f%%", ps.ConstraintLevel*100),
		)
	}
	return t.Render()
}
