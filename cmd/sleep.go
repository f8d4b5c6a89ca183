package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/reminder"
)

// sleepCmd shows the sleep schedule.
var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Show the sleep schedule and a recommendation",
	Long: `Show bedtime and wake time, the hours until each, the planned sleep
duration and a recommendation for the current time of day.

Change the schedule with:
  healthdash config set sleep_time 22:30
  healthdash config set wake_time 6:45am`,
	Args: cobra.NoArgs,
	RunE: runSleep,
}

func init() {
	rootCmd.AddCommand(sleepCmd)
}

func runSleep(cmd *cobra.Command, args []string) error {
	prefs := ctx.Settings.Load(cmd.Context())
	return ctx.Printer().Sleep(reminder.SleepStats(ctx.Now(), prefs))
}
