// Package cli implements the ecopayback command line.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ecopayback/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ecopayback CLI.
// It wires up logging and the calculator, compare, form, serve and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "ecopayback",
		Short:         "Payback and CO2 calculator for sustainable investments",
		Long:          "ecopayback: Estimate payback time and avoided CO2 for solar, water reuse, aerator and LED investments",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(
		NewSolarCmd(), NewWaterCmd(), NewAeratorCmd(), NewLEDCmd(),
		NewCompareCmd(), NewFormCmd(), NewServeCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Payback of a solar installation
  ecopayback solar --investment-cost 10000 --annual-generation-kwh 4000 --tariff-per-kwh 1

  # LED retrofit as JSON, English labels
  ecopayback led --old-wattage 60 --new-wattage 9 --lamp-count 10 \
    --hours-per-day 5 --kit-cost 200 --tariff-per-kwh 0.75 --output json --locale en

  # Compare every investment in a scenario file
  ecopayback compare --file scenario.yaml

  # Interactive form
  ecopayback form

  # Serve the web form on port 8080
  ecopayback serve --addr :8080

  # Initialize configuration
  ecopayback config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
