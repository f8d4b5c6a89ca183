package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/settings"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "View and change preferences",
	Long: `View and change reminder preferences. Changes are written to the local
cache immediately and then to the remote store when it is reachable.

Examples:
  healthdash config
  healthdash config get stretch_interval
  healthdash config set hydration_threshold_temp 27
  healthdash config set stretch_interval 45m
  healthdash config set sleep_time 10:30pm
  healthdash config reset`,
	Args: cobra.NoArgs,
	RunE: runConfigGet,
}

// configGetCmd gets configuration values.
var configGetCmd = &cobra.Command{
	Use:               "get [KEY]",
	Short:             "Show one or all preferences",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigGet,
}

// configSetCmd sets configuration values.
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a preference",
	Long: `Change a preference.

Keys and values:
  hydration_threshold_temp      °C, remind to drink above it
  hydration_threshold_humidity  %, remind to drink below it
  hydration_threshold_uv        UV index, remind to drink above it
  hydration_interval            Minutes between hydration reminders (e.g. 60, 1h)
  stretch_interval              Minutes between stretch reminders (e.g. 30, 45m)
  sleep_time                    Bedtime (e.g. 22:00, 10:30pm)
  wake_time                     Wake time (e.g. 07:00, 6:45am)`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigSet,
}

// configResetCmd restores the defaults.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

// settingRows builds the listing for prefs, optionally filtered to one key.
func settingRows(prefs model.Preferences, key string) ([]output.SettingRow, error) {
	fields := settings.Fields()
	if key != "" {
		f, err := settings.Lookup(key)
		if err != nil {
			return nil, err
		}
		fields = []settings.Field{f}
	}

	rows := make([]output.SettingRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, output.SettingRow{
			Key:         f.Key,
			Value:       f.Get(prefs),
			Description: f.Description,
			Range:       f.Range,
		})
	}
	return rows, nil
}

// runConfigGet handles the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) > 0 {
		key = args[0]
	}

	prefs := ctx.Settings.Load(cmd.Context())
	rows, err := settingRows(prefs, key)
	if err != nil {
		return err
	}

	return ctx.Printer().Settings(output.SettingsView{
		Rows:   rows,
		Source: string(ctx.Settings.Source()),
		Store:  ctx.Health.StoreName(),
	})
}

// runConfigSet handles the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := strings.Join(args[1:], " ")

	prefs := ctx.Settings.Load(cmd.Context())
	updated, err := settings.Apply(prefs, key, value)
	if err != nil {
		return userError(err)
	}

	synced, err := ctx.Settings.Save(cmd.Context(), updated)
	if err != nil {
		return err
	}

	f, _ := settings.Lookup(key)
	return ctx.Printer().Saved(output.SavedView{
		Action: "updated",
		Key:    f.Key,
		Value:  f.Get(ctx.Settings.Current()),
		Synced: synced,
	})
}

// runConfigReset handles the config reset command.
func runConfigReset(cmd *cobra.Command, args []string) error {
	synced, err := ctx.Settings.Reset(cmd.Context())
	if err != nil {
		return err
	}
	return ctx.Printer().Saved(output.SavedView{
		Action: "reset to defaults",
		Synced: synced,
	})
}
