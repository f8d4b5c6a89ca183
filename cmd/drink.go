package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/parser"
	"github.com/manav03panchal/healthdash/internal/validate"
)

var flagDrinkNoWeather bool

// drinkCmd logs water intake.
var drinkCmd = &cobra.Command{
	Use:     "drink AMOUNT",
	Aliases: []string{"water", "h2o"},
	Short:   "Log water intake",
	Long: `Log a glass of water. The amount is millilitres unless a unit is given.
Current temperature and humidity are recorded with the entry.

Examples:
  healthdash drink 250
  healthdash drink 500ml
  healthdash drink 0.75l
  healthdash drink 12oz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDrink,
}

func init() {
	drinkCmd.Flags().BoolVar(&flagDrinkNoWeather, "no-weather", false,
		"Do not fetch weather for the entry")
	rootCmd.AddCommand(drinkCmd)
}

func runDrink(cmd *cobra.Command, args []string) error {
	amount, err := parser.ParseAmount(strings.Join(args, " "))
	if err != nil {
		return userError(err)
	}
	if err := validate.Amount(amount); err != nil {
		return err
	}

	var temp, humidity *float64
	if !flagDrinkNoWeather {
		view := ctx.CurrentWeather(cmd.Context())
		if view.Live {
			t := float64(view.Snapshot.TemperatureC)
			h := view.Snapshot.Humidity
			temp, humidity = &t, &h
		}
	}

	synced := ctx.Health.LogHydration(cmd.Context(), amount, temp, humidity)
	total := model.TotalHydration(ctx.Health.GetTodayHydrationLogs(cmd.Context()))

	return ctx.Printer().Hydration(output.HydrationView{
		AmountML: amount,
		TotalML:  total,
		Synced:   synced,
	})
}
