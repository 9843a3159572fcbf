// Package payback estimates financial payback and avoided CO2 emissions for
// household sustainability investments.
//
// Four independent calculators (solar generation, greywater reuse, low-flow
// aerators and LED retrofits) turn validated inputs into an InvestmentResult.
// A ResultState keeps the latest result per investment type, and two pure
// functions derive cross-cutting views from it: TreeEquivalence sums the CO2
// avoided into an equivalent tree count, and BestOption picks the investment
// with the strictly shortest payback.
//
// Everything in this package is synchronous and free of formatting concerns;
// values are returned as raw decimals and rendered by the presentation layer.
package payback

import (
	"fmt"
	"strings"
)

// InvestmentType identifies one of the supported sustainability investments.
type InvestmentType int

const (
	// Solar is rooftop photovoltaic generation offsetting grid electricity.
	Solar InvestmentType = iota

	// Water is greywater reuse offsetting treated water consumption.
	Water

	// Aerator is a low-flow tap aerator. It reports no CO2 metric.
	Aerator

	// LED is a lighting retrofit replacing higher-wattage lamps.
	LED
)

// AllInvestments lists every investment type in display order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var AllInvestments = []InvestmentType{Solar, Water, Aerator, LED}

// String returns the canonical lower-case name of the investment type.
func (t InvestmentType) String() string {
	switch t {
	case Solar:
		return "solar"
	case Water:
		return "water"
	case Aerator:
		return "aerator"
	case LED:
		return "led"
	default:
		return fmt.Sprintf("InvestmentType(%d)", int(t))
	}
}

// ParseInvestmentType converts a name such as "solar" or "LED" into an
// InvestmentType. Matching is case-insensitive.
func ParseInvestmentType(name string) (InvestmentType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "solar":
		return Solar, nil
	case "water":
		return Water, nil
	case "aerator":
		return Aerator, nil
	case "led":
		return LED, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInvestment, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InvestmentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InvestmentType) UnmarshalText(text []byte) error {
	parsed, err := ParseInvestmentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// HasCO2 reports whether the investment type produces an avoided-CO2 metric.
func (t InvestmentType) HasCO2() bool {
	return t != Aerator
}

// InvestmentResult holds the metrics produced by one successful calculator run.
//
// PaybackYears is always set on a returned result. Optional metrics are nil
// when the investment type does not produce them.
type InvestmentResult struct {
	// Type identifies the calculator that produced the result.
	Type InvestmentType `json:"type"`

	// PaybackYears is the time to recoup the investment, rounded to 1 decimal.
	PaybackYears float64 `json:"payback_years"`

	// CO2AvoidedKg is kg CO2 avoided per year. Solar and Water round it to a
	// whole number; LED keeps full precision. Nil for Aerator.
	CO2AvoidedKg *float64 `json:"co2_avoided_kg,omitempty"`

	// AnnualSavings is currency saved per year, rounded to 2 decimals.
	// Set for Aerator and LED only.
	AnnualSavings *float64 `json:"annual_savings,omitempty"`

	// WaterSavedM3 is cubic meters of water saved per year (Aerator).
	WaterSavedM3 *float64 `json:"water_saved_m3,omitempty"`

	// EnergySavedKWh is kWh saved per year, unrounded (LED).
	EnergySavedKWh *float64 `json:"energy_saved_kwh,omitempty"`
}

// SolarInput are the fields of the solar generation calculator.
type SolarInput struct {
	InvestmentCost      float64 `json:"investment_cost" yaml:"investment_cost"`
	AnnualGenerationKWh float64 `json:"annual_generation_kwh" yaml:"annual_generation_kwh"`
	TariffPerKWh        float64 `json:"tariff_per_kwh" yaml:"tariff_per_kwh"`
}

// WaterInput are the fields of the greywater reuse calculator.
type WaterInput struct {
	InvestmentCost float64 `json:"investment_cost" yaml:"investment_cost"`
	AnnualVolumeM3 float64 `json:"annual_volume_m3" yaml:"annual_volume_m3"`
	WaterTariff    float64 `json:"water_tariff" yaml:"water_tariff"`
}

// AeratorInput are the fields of the low-flow aerator calculator.
type AeratorInput struct {
	OldFlowLPerMin float64 `json:"old_flow_l_per_min" yaml:"old_flow_l_per_min"`
	NewFlowLPerMin float64 `json:"new_flow_l_per_min" yaml:"new_flow_l_per_min"`
	MinutesPerDay  float64 `json:"minutes_per_day" yaml:"minutes_per_day"`
	PartCost       float64 `json:"part_cost" yaml:"part_cost"`
	WaterTariff    float64 `json:"water_tariff" yaml:"water_tariff"`
}

// LEDInput are the fields of the LED retrofit calculator.
type LEDInput struct {
	OldWattage   float64 `json:"old_wattage" yaml:"old_wattage"`
	NewWattage   float64 `json:"new_wattage" yaml:"new_wattage"`
	LampCount    float64 `json:"lamp_count" yaml:"lamp_count"`
	HoursPerDay  float64 `json:"hours_per_day" yaml:"hours_per_day"`
	KitCost      float64 `json:"kit_cost" yaml:"kit_cost"`
	TariffPerKWh float64 `json:"tariff_per_kwh" yaml:"tariff_per_kwh"`
}

// float64Ptr returns a pointer to v.
func float64Ptr(v float64) *float64 { return &v }
