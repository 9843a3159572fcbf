package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ecopayback/internal/logging"
	"github.com/rshade/ecopayback/internal/payback"
)

// calculatorDef describes one calculator subcommand.
type calculatorDef struct {
	investment payback.InvestmentType
	short      string
	long       string
	example    string
	usage      map[string]string
}

// NewSolarCmd creates the "solar" calculator subcommand.
func NewSolarCmd() *cobra.Command {
	return newCalculatorCmd(calculatorDef{
		investment: payback.Solar,
		short:      "Payback and avoided CO2 of a solar installation",
		long: `Computes the payback time of a solar installation from its cost, yearly
generation and electricity tariff, and the CO2 its generation avoids per year.`,
		example: `  ecopayback solar --investment-cost 10000 --annual-generation-kwh 4000 --tariff-per-kwh 1`,
		usage: map[string]string{
			payback.FieldInvestmentCost:      "Installation cost",
			payback.FieldAnnualGenerationKWh: "Energy generated per year in kWh",
			payback.FieldTariffPerKWh:        "Electricity tariff per kWh",
		},
	})
}

// NewWaterCmd creates the "water" calculator subcommand.
func NewWaterCmd() *cobra.Command {
	return newCalculatorCmd(calculatorDef{
		investment: payback.Water,
		short:      "Payback and avoided CO2 of a greywater reuse system",
		long: `Computes the payback time of a water reuse system from its cost, the yearly
volume it reuses and the water tariff, and the CO2 avoided by not treating
and pumping that volume.`,
		example: `  ecopayback water --investment-cost 3000 --annual-volume-m3 100 --water-tariff 10`,
		usage: map[string]string{
			payback.FieldInvestmentCost: "System cost",
			payback.FieldAnnualVolumeM3: "Water reused per year in m³",
			payback.FieldWaterTariff:    "Water tariff per m³",
		},
	})
}

// NewAeratorCmd creates the "aerator" calculator subcommand.
func NewAeratorCmd() *cobra.Command {
	return newCalculatorCmd(calculatorDef{
		investment: payback.Aerator,
		short:      "Payback of a low-flow faucet aerator",
		long: `Computes the water saved per year by a low-flow aerator, the yearly savings at
the given water tariff and the payback time of the part.`,
		example: `  ecopayback aerator --old-flow-l-per-min 8 --new-flow-l-per-min 4 \
    --minutes-per-day 30 --part-cost 50 --water-tariff 10`,
		usage: map[string]string{
			payback.FieldOldFlowLPerMin: "Current flow in L/min",
			payback.FieldNewFlowLPerMin: "Flow with the aerator in L/min (must be lower)",
			payback.FieldMinutesPerDay:  "Minutes of use per day",
			payback.FieldPartCost:       "Aerator cost",
			payback.FieldWaterTariff:    "Water tariff per m³",
		},
	})
}

// NewLEDCmd creates the "led" calculator subcommand.
func NewLEDCmd() *cobra.Command {
	return newCalculatorCmd(calculatorDef{
		investment: payback.LED,
		short:      "Payback and avoided CO2 of an LED retrofit",
		long: `Computes the energy saved per year by replacing lamps with LEDs, the yearly
savings at the given tariff, the payback time of the kit and the CO2 avoided.`,
		example: `  ecopayback led --old-wattage 60 --new-wattage 9 --lamp-count 10 \
    --hours-per-day 5 --kit-cost 200 --tariff-per-kwh 0.75`,
		usage: map[string]string{
			payback.FieldOldWattage:   "Current lamp wattage",
			payback.FieldNewWattage:   "LED lamp wattage (must be lower)",
			payback.FieldLampCount:    "Number of lamps replaced",
			payback.FieldHoursPerDay:  "Hours of use per day",
			payback.FieldKitCost:      "Retrofit kit cost",
			payback.FieldTariffPerKWh: "Electricity tariff per kWh",
		},
	})
}

// flagName turns a field name into its flag spelling.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func newCalculatorCmd(def calculatorDef) *cobra.Command {
	var params OutputParams
	fields := payback.FieldNames(def.investment)
	values := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:     def.investment.String(),
		Short:   def.short,
		Long:    def.long,
		Example: def.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := make(payback.FieldSet, len(values))
			for name, v := range values {
				raw[name] = *v
			}
			return executeCalculation(cmd, def.investment, raw, params)
		},
	}

	// Raw strings; ParseField decides what counts as a number.
	for _, name := range fields {
		values[name] = cmd.Flags().String(flagName(name), "", def.usage[name])
	}
	addOutputFlags(cmd, &params)

	return cmd
}

func executeCalculation(cmd *cobra.Command, inv payback.InvestmentType, fields payback.FieldSet, params OutputParams) error {
	f, err := params.formatter()
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	state := payback.NewResultState().WithLogger(*log)

	_, calcErr := state.Run(inv, fields)
	if calcErr != nil {
		log.Debug().Str("investment", inv.String()).Err(calcErr).Msg("calculation rejected")
	}

	if err = renderResults(cmd.OutOrStdout(), params, f, state, calcErr); err != nil {
		return err
	}
	return invalidInput(calcErr)
}
