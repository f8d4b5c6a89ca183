package cmd

import (
	"github.com/spf13/cobra"
)

// weatherCmd shows current conditions.
var weatherCmd = &cobra.Command{
	Use:     "weather",
	Aliases: []string{"w"},
	Short:   "Show current weather and health alerts",
	Long: `Fetch current conditions for your location and list any health alerts
(heat, UV, humidity, cold, storms).

The location comes from HEALTHDASH_LATITUDE/HEALTHDASH_LONGITUDE, then IP
geolocation when HEALTHDASH_IP_LOCATE is set, then a built-in default.

Examples:
  healthdash weather
  healthdash weather --format json`,
	Args: cobra.NoArgs,
	RunE: runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	view := ctx.CurrentWeather(cmd.Context())
	return ctx.Printer().Weather(view)
}
