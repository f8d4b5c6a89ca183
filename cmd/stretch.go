package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/timer"
	"github.com/manav03panchal/healthdash/internal/validate"
)

var flagStretchMinutes int

// stretchCmd groups the stretch commands.
var stretchCmd = &cobra.Command{
	Use:     "stretch",
	Aliases: []string{"s", "move"},
	Short:   "List, run or log stretches",
	Long: `Run a guided stretch countdown or log one you already did.

Stretch types can be given by name, shortcut or a short slug:
  neck, back, leg, eye, full-body (or n, b, l, e, f)

Examples:
  healthdash stretch
  healthdash stretch start neck
  healthdash stretch start full-body --minutes 15
  healthdash stretch log eye`,
	Args: cobra.NoArgs,
	RunE: runStretchList,
}

var stretchListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stretch types",
	Args:    cobra.NoArgs,
	RunE:    runStretchList,
}

var stretchStartCmd = &cobra.Command{
	Use:   "start TYPE",
	Short: "Run a stretch countdown and log it when done",
	Long: `Run a countdown in the terminal. The stretch is logged when the
countdown ends or when you finish early; quitting logs nothing.

Controls:
  SPACE  Pause or resume
  ENTER  Finish early
  Q      Quit without logging`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeStretchTypes,
	RunE:              runStretchStart,
}

var stretchLogCmd = &cobra.Command{
	Use:               "log TYPE",
	Short:             "Log a completed stretch",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeStretchTypes,
	RunE:              runStretchLog,
}

func init() {
	stretchStartCmd.Flags().IntVarP(&flagStretchMinutes, "minutes", "m", 0,
		"Override the stretch length in minutes")
	stretchLogCmd.Flags().IntVarP(&flagStretchMinutes, "minutes", "m", 0,
		"Override the logged length in minutes")

	stretchCmd.AddCommand(stretchListCmd)
	stretchCmd.AddCommand(stretchStartCmd)
	stretchCmd.AddCommand(stretchLogCmd)
	rootCmd.AddCommand(stretchCmd)
}

func runStretchList(cmd *cobra.Command, args []string) error {
	return ctx.Printer().StretchTypes(model.StretchTypes())
}

// lookupStretch resolves the TYPE argument and the minutes to log.
func lookupStretch(args []string) (model.StretchType, int, error) {
	query := strings.Join(args, " ")
	s, ok := model.FindStretchType(query)
	if !ok {
		return model.StretchType{}, 0, apperrors.NewUserErrorWithField("type", query,
			"Unknown stretch type",
			"Run 'healthdash stretch list' to see stretch types.").WithCause(apperrors.ErrUnknownStretch)
	}

	minutes := s.DurationMin
	if flagStretchMinutes != 0 {
		if err := validate.StretchMinutes(flagStretchMinutes); err != nil {
			return model.StretchType{}, 0, err
		}
		minutes = flagStretchMinutes
	}
	return s, minutes, nil
}

func runStretchStart(cmd *cobra.Command, args []string) error {
	s, minutes, err := lookupStretch(args)
	if err != nil {
		return err
	}

	display := timer.NewCountdownDisplay()
	display.UseColor = ctx.Formatter.IsColorEnabled()
	if !ctx.IsCLI() {
		// Keep stdout clean for the structured result.
		display.Writer = os.Stderr
	}

	session := timer.NewSession(s, time.Duration(minutes)*time.Minute)
	session.SetDisplay(display)
	session.SetCallback(func(event timer.Event, state timer.SessionState) {
		switch event {
		case timer.EventPaused, timer.EventResumed, timer.EventComplete, timer.EventQuit:
			logging.DebugLog("stretch session event",
				logging.KeyStretch, state.Stretch.Name,
				"event", int(event),
				"remaining", state.Remaining.Round(time.Second).String())
		}
	})

	outcome, err := session.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(display.Writer)

	if !outcome.Logged() {
		fmt.Fprintln(display.Writer, display.RenderCancelled(s.Name))
		return nil
	}

	synced := ctx.Health.LogStretch(cmd.Context(), s.Name, minutes)
	if ctx.IsCLI() {
		fmt.Fprintln(display.Writer, display.RenderComplete(s.Name, minutes, outcome == timer.OutcomeCompletedEarly))
		if !synced {
			ctx.CLIFormatter().Muted("  Not synced: remote store unavailable.")
		}
		return nil
	}
	return printStretch(cmd, s.Name, minutes, synced)
}

func runStretchLog(cmd *cobra.Command, args []string) error {
	s, minutes, err := lookupStretch(args)
	if err != nil {
		return err
	}
	synced := ctx.Health.LogStretch(cmd.Context(), s.Name, minutes)
	return printStretch(cmd, s.Name, minutes, synced)
}

func printStretch(cmd *cobra.Command, name string, minutes int, synced bool) error {
	count := len(ctx.Health.GetTodayStretchLogs(cmd.Context()))
	return ctx.Printer().Stretch(output.StretchView{
		Type:        name,
		DurationMin: minutes,
		Count:       count,
		Synced:      synced,
	})
}
