package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecopayback/internal/logging"
	"github.com/rshade/ecopayback/internal/payback"
)

// Scenario is a YAML document listing the investments to compare. Absent
// sections are not calculated.
type Scenario struct {
	Solar   *payback.SolarInput   `yaml:"solar"`
	Water   *payback.WaterInput   `yaml:"water"`
	Aerator *payback.AeratorInput `yaml:"aerator"`
	LED     *payback.LEDInput     `yaml:"led"`
}

// errEmptyScenario is returned for a scenario without any section.
var errEmptyScenario = errors.New("scenario has no solar, water, aerator or led section")

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err = yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if s.Solar == nil && s.Water == nil && s.Aerator == nil && s.LED == nil {
		return nil, errEmptyScenario
	}
	return &s, nil
}

// Run applies every present section to state and returns the joined
// calculation errors. Solar and water together are submitted as one form:
// if either is invalid both are cleared.
func (s *Scenario) Run(state *payback.ResultState) error {
	var errs []error

	switch {
	case s.Solar != nil && s.Water != nil:
		if _, _, err := state.RunSolarAndWater(*s.Solar, *s.Water); err != nil {
			errs = append(errs, err)
		}
	case s.Solar != nil:
		if _, err := state.RunSolar(*s.Solar); err != nil {
			errs = append(errs, fmt.Errorf("solar: %w", err))
		}
	case s.Water != nil:
		if _, err := state.RunWater(*s.Water); err != nil {
			errs = append(errs, fmt.Errorf("water: %w", err))
		}
	}

	if s.Aerator != nil {
		if _, err := state.RunAerator(*s.Aerator); err != nil {
			errs = append(errs, fmt.Errorf("aerator: %w", err))
		}
	}
	if s.LED != nil {
		if _, err := state.RunLED(*s.LED); err != nil {
			errs = append(errs, fmt.Errorf("led: %w", err))
		}
	}

	return errors.Join(errs...)
}

// NewCompareCmd creates the "compare" subcommand.
func NewCompareCmd() *cobra.Command {
	var (
		params OutputParams
		file   string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every investment in a scenario file",
		Long: `Runs each investment section of a YAML scenario file and renders all results
together with the tree equivalence of the avoided CO2 and the option with
the fastest payback.`,
		Example: `  # scenario.yaml
  # solar: {investment_cost: 10000, annual_generation_kwh: 4000, tariff_per_kwh: 1}
  # led:   {old_wattage: 60, new_wattage: 9, lamp_count: 10, hours_per_day: 5, kit_cost: 200, tariff_per_kwh: 0.75}
  ecopayback compare --file scenario.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompare(cmd, file, params)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the scenario YAML file")
	_ = cmd.MarkFlagRequired("file")
	addOutputFlags(cmd, &params)

	return cmd
}

func executeCompare(cmd *cobra.Command, path string, params OutputParams) error {
	f, err := params.formatter()
	if err != nil {
		return err
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	state := payback.NewResultState().WithLogger(*log)
	calcErr := scenario.Run(state)

	log.Debug().Int("results", len(state.Results())).Msg("scenario compared")

	if err = renderResults(cmd.OutOrStdout(), params, f, state, calcErr); err != nil {
		return err
	}
	return invalidInput(calcErr)
}
