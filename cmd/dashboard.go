package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard with the clock, current weather,
and hydration, stretch and sleep trackers.

Keyboard Controls:
  1/2/3      Log 250/500/750ml of water
  x          Dismiss the hydration reminder
  n/b/l/e/f  Start a stretch
  k          Skip the stretch reminder
  enter      Complete the running stretch early
  r          Refresh weather and today's logs
  q          Quit dashboard

Examples:
  healthdash dashboard
  healthdash dash`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	config := tui.DashboardConfig{
		Health:   ctx.Health,
		Settings: ctx.Settings,
		Weather:  ctx,
		Clock:    ctx.Clock,
		Refresh:  ctx.Config.Refresh,
		Timeout:  ctx.Config.HTTP.Timeout,
	}
	return tui.Run(config)
}
