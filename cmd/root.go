// Package cmd provides the CLI commands for healthdash.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/config"
	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/logging"
	"github.com/manav03panchal/healthdash/internal/output"
	"github.com/manav03panchal/healthdash/internal/parser"
	"github.com/manav03panchal/healthdash/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagStore  string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "healthdash",
	Short: "A terminal wellness dashboard",
	Long: `healthdash keeps an eye on the weather and reminds you to drink water,
stretch and get to bed on time.

Running healthdash with no command opens the dashboard.

Examples:
  healthdash
  healthdash drink 500ml
  healthdash stretch start neck
  healthdash sleep
  healthdash config set sleep_time 10:30pm`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		format, err := output.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		colorMode, err := output.ParseColorMode(flagColor)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if flagStore != "" {
			cfg.Remote.Store = flagStore
		}

		opts := runtime.DefaultOptions()
		opts.Config = cfg
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		ctx, err = runtime.New(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if ctx.CacheFallback {
			logging.Warn("local cache is locked by another process, using a temporary cache")
		}
		logging.DebugLog("runtime ready",
			logging.KeyStore, ctx.Health.StoreName(),
			"database", ctx.DB.Path())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: runDashboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		Die(err)
		_ = closeContext()
	}
	return err
}

// closeContext releases the runtime context once. PersistentPostRunE is
// skipped when a command fails, so Execute closes it on that path.
func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "",
		"Remote store: auto, offline, memory, rest, postgres (overrides HEALTHDASH_STORE)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("healthdash %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error in the selected output format. The runtime context
// may not exist yet when configuration itself failed.
func Die(err error) {
	if ctx != nil {
		if perr := ctx.Printer().Error(err); perr == nil {
			return
		}
	}
	fmt.Fprintln(os.Stderr, "Error: "+apperrors.FormatError(err))
}

// userError converts parse failures into user errors with examples.
func userError(err error) error {
	var pe *parser.ParseError
	if apperrors.As(err, &pe) {
		return pe.ToUserError()
	}
	return err
}
