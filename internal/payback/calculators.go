package payback

import (
	"fmt"
	"math"
)

// field pairs an input name with its value for validation.
type field struct {
	name  string
	value float64
}

// requirePositive returns ErrInvalidInput for the first field that is NaN,
// infinite, zero or negative.
func requirePositive(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// requireReduction returns ErrInvalidInput unless newValue < oldValue.
func requireReduction(newName string, newValue float64, oldName string, oldValue float64) error {
	if newValue >= oldValue {
		return fmt.Errorf("%w: %s must be lower than %s", ErrInvalidInput, newName, oldName)
	}
	return nil
}

// paybackFrom divides cost by annual savings and rejects results that would
// surface a meaningless payback (zero, negative or non-finite savings).
func paybackFrom(cost, annualSavings float64) (float64, error) {
	if math.IsNaN(annualSavings) || math.IsInf(annualSavings, 0) || annualSavings <= 0 {
		return 0, fmt.Errorf("%w: annual savings must be positive, got %v", ErrInvalidInput, annualSavings)
	}
	years := cost / annualSavings
	if math.IsNaN(years) || math.IsInf(years, 0) || years <= 0 {
		return 0, fmt.Errorf("%w: payback is not a finite positive number", ErrInvalidInput)
	}
	return RoundTo(years, PaybackDecimals), nil
}

// CalculateSolar computes the payback of a solar installation and the CO2 its
// generation avoids.
//
//	payback = cost / (generation * tariff)        rounded to 1 decimal
//	co2     = generation * EmissionFactorKgPerKWh rounded to 0 decimals
func CalculateSolar(in SolarInput) (InvestmentResult, error) {
	if err := requirePositive(
		field{"investment_cost", in.InvestmentCost},
		field{"annual_generation_kwh", in.AnnualGenerationKWh},
		field{"tariff_per_kwh", in.TariffPerKWh},
	); err != nil {
		return InvestmentResult{}, err
	}

	years, err := paybackFrom(in.InvestmentCost, in.AnnualGenerationKWh*in.TariffPerKWh)
	if err != nil {
		return InvestmentResult{}, err
	}

	co2 := RoundTo(in.AnnualGenerationKWh*EmissionFactorKgPerKWh, CO2Decimals)
	return InvestmentResult{
		Type:         Solar,
		PaybackYears: years,
		CO2AvoidedKg: float64Ptr(co2),
	}, nil
}

// CalculateWater computes the payback of a greywater reuse system and the CO2
// avoided by not treating and pumping the reused volume.
//
//	payback = cost / (volume * tariff)                                     rounded to 1 decimal
//	co2     = volume * KWhPerCubicMeterWater * EmissionFactorKgPerKWh      rounded to 0 decimals
func CalculateWater(in WaterInput) (InvestmentResult, error) {
	if err := requirePositive(
		field{"investment_cost", in.InvestmentCost},
		field{"annual_volume_m3", in.AnnualVolumeM3},
		field{"water_tariff", in.WaterTariff},
	); err != nil {
		return InvestmentResult{}, err
	}

	years, err := paybackFrom(in.InvestmentCost, in.AnnualVolumeM3*in.WaterTariff)
	if err != nil {
		return InvestmentResult{}, err
	}

	kwh := in.AnnualVolumeM3 * KWhPerCubicMeterWater
	co2 := RoundTo(kwh*EmissionFactorKgPerKWh, CO2Decimals)
	return InvestmentResult{
		Type:         Water,
		PaybackYears: years,
		CO2AvoidedKg: float64Ptr(co2),
	}, nil
}

// CalculateAerator computes the water saved by a low-flow aerator and its
// payback. The new flow rate must be lower than the old one.
//
// Payback is derived from the unrounded annual savings; WaterSavedM3 and
// AnnualSavings are rounded to 2 decimals for the result.
func CalculateAerator(in AeratorInput) (InvestmentResult, error) {
	if err := requirePositive(
		field{"old_flow_l_per_min", in.OldFlowLPerMin},
		field{"new_flow_l_per_min", in.NewFlowLPerMin},
		field{"minutes_per_day", in.MinutesPerDay},
		field{"part_cost", in.PartCost},
		field{"water_tariff", in.WaterTariff},
	); err != nil {
		return InvestmentResult{}, err
	}
	if err := requireReduction(
		"new_flow_l_per_min", in.NewFlowLPerMin, "old_flow_l_per_min", in.OldFlowLPerMin,
	); err != nil {
		return InvestmentResult{}, err
	}

	flowDiff := in.OldFlowLPerMin - in.NewFlowLPerMin
	litersPerYear := flowDiff * in.MinutesPerDay * DaysPerYear
	m3PerYear := litersPerYear / LitersPerCubicMeter
	savings := m3PerYear * in.WaterTariff

	years, err := paybackFrom(in.PartCost, savings)
	if err != nil {
		return InvestmentResult{}, err
	}

	return InvestmentResult{
		Type:          Aerator,
		PaybackYears:  years,
		AnnualSavings: float64Ptr(RoundTo(savings, SavingsDecimals)),
		WaterSavedM3:  float64Ptr(RoundTo(m3PerYear, VolumeDecimals)),
	}, nil
}

// CalculateLED computes the energy saved by an LED retrofit, its payback and
// the CO2 avoided. The new wattage must be lower than the old one.
//
// CO2AvoidedKg and EnergySavedKWh keep full precision because they feed the
// tree aggregation before any display rounding.
func CalculateLED(in LEDInput) (InvestmentResult, error) {
	if err := requirePositive(
		field{"old_wattage", in.OldWattage},
		field{"new_wattage", in.NewWattage},
		field{"lamp_count", in.LampCount},
		field{"hours_per_day", in.HoursPerDay},
		field{"kit_cost", in.KitCost},
		field{"tariff_per_kwh", in.TariffPerKWh},
	); err != nil {
		return InvestmentResult{}, err
	}
	if err := requireReduction("new_wattage", in.NewWattage, "old_wattage", in.OldWattage); err != nil {
		return InvestmentResult{}, err
	}

	wattDiffTotal := (in.OldWattage - in.NewWattage) * in.LampCount
	kwhPerYear := wattDiffTotal * in.HoursPerDay * DaysPerYear / WattsPerKilowatt
	savings := kwhPerYear * in.TariffPerKWh

	years, err := paybackFrom(in.KitCost, savings)
	if err != nil {
		return InvestmentResult{}, err
	}

	return InvestmentResult{
		Type:           LED,
		PaybackYears:   years,
		CO2AvoidedKg:   float64Ptr(kwhPerYear * EmissionFactorKgPerKWh),
		AnnualSavings:  float64Ptr(RoundTo(savings, SavingsDecimals)),
		EnergySavedKWh: float64Ptr(kwhPerYear),
	}, nil
}
