package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/health"
	"github.com/manav03panchal/healthdash/internal/output"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "td"},
	Short:   "Show today's water and stretch logs",
	Long: `Display everything logged since local midnight: water entries with the
running total against the daily goal, and completed stretches.

Examples:
  healthdash today
  healthdash t --format json`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	c := cmd.Context()
	return ctx.Printer().Today(output.TodayView{
		Date:      health.StartOfDay(ctx.Now()),
		Store:     ctx.Health.StoreName(),
		Hydration: ctx.Health.GetTodayHydrationLogs(c),
		Stretches: ctx.Health.GetTodayStretchLogs(c),
	})
}
