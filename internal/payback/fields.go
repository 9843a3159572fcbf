package payback

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Field names accepted from forms, flags and API payloads.
const (
	FieldInvestmentCost      = "investment_cost"
	FieldAnnualGenerationKWh = "annual_generation_kwh"
	FieldTariffPerKWh        = "tariff_per_kwh"
	FieldAnnualVolumeM3      = "annual_volume_m3"
	FieldWaterTariff         = "water_tariff"
	FieldOldFlowLPerMin      = "old_flow_l_per_min"
	FieldNewFlowLPerMin      = "new_flow_l_per_min"
	FieldMinutesPerDay       = "minutes_per_day"
	FieldPartCost            = "part_cost"
	FieldOldWattage          = "old_wattage"
	FieldNewWattage          = "new_wattage"
	FieldLampCount           = "lamp_count"
	FieldHoursPerDay         = "hours_per_day"
	FieldKitCost             = "kit_cost"
)

// FieldNames returns the ordered input field names of an investment type.
func FieldNames(t InvestmentType) []string {
	switch t {
	case Solar:
		return []string{FieldInvestmentCost, FieldAnnualGenerationKWh, FieldTariffPerKWh}
	case Water:
		return []string{FieldInvestmentCost, FieldAnnualVolumeM3, FieldWaterTariff}
	case Aerator:
		return []string{FieldOldFlowLPerMin, FieldNewFlowLPerMin, FieldMinutesPerDay, FieldPartCost, FieldWaterTariff}
	case LED:
		return []string{FieldOldWattage, FieldNewWattage, FieldLampCount, FieldHoursPerDay, FieldKitCost, FieldTariffPerKWh}
	default:
		return nil
	}
}

// ParseField converts a raw form value to a number the way a browser number
// conversion does: surrounding whitespace is ignored, an empty value is 0,
// unsigned 0x, 0o and 0b literals are read as integers and anything else that
// is not a decimal number is NaN. The result is never an error; invalid values
// are rejected later by the calculators.
func ParseField(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, ok := parsePrefixedInt(s); ok {
		return v
	}
	if strings.ContainsAny(s, "_xXpP") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parsePrefixedInt reads 0x, 0o and 0b literals. ok is false when s has no
// such prefix; a prefix followed by invalid digits is NaN.
func parsePrefixedInt(s string) (float64, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, false
	}

	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}

	digits := s[2:]
	if digits == "" || strings.ContainsAny(digits[:1], "+-") {
		return math.NaN(), true
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN(), true
	}
	v, _ := new(big.Float).SetInt(n).Float64()
	return v, true
}

// FieldSet holds raw field values keyed by field name.
// Missing keys read as empty values.
type FieldSet map[string]string

// Number returns the parsed value of the named field.
func (f FieldSet) Number(name string) float64 {
	return ParseField(f[name])
}

// SolarInput builds a SolarInput from raw fields.
func (f FieldSet) SolarInput() SolarInput {
	return SolarInput{
		InvestmentCost:      f.Number(FieldInvestmentCost),
		AnnualGenerationKWh: f.Number(FieldAnnualGenerationKWh),
		TariffPerKWh:        f.Number(FieldTariffPerKWh),
	}
}

// WaterInput builds a WaterInput from raw fields.
func (f FieldSet) WaterInput() WaterInput {
	return WaterInput{
		InvestmentCost: f.Number(FieldInvestmentCost),
		AnnualVolumeM3: f.Number(FieldAnnualVolumeM3),
		WaterTariff:    f.Number(FieldWaterTariff),
	}
}

// AeratorInput builds an AeratorInput from raw fields.
func (f FieldSet) AeratorInput() AeratorInput {
	return AeratorInput{
		OldFlowLPerMin: f.Number(FieldOldFlowLPerMin),
		NewFlowLPerMin: f.Number(FieldNewFlowLPerMin),
		MinutesPerDay:  f.Number(FieldMinutesPerDay),
		PartCost:       f.Number(FieldPartCost),
		WaterTariff:    f.Number(FieldWaterTariff),
	}
}

// LEDInput builds an LEDInput from raw fields.
func (f FieldSet) LEDInput() LEDInput {
	return LEDInput{
		OldWattage:   f.Number(FieldOldWattage),
		NewWattage:   f.Number(FieldNewWattage),
		LampCount:    f.Number(FieldLampCount),
		HoursPerDay:  f.Number(FieldHoursPerDay),
		KitCost:      f.Number(FieldKitCost),
		TariffPerKWh: f.Number(FieldTariffPerKWh),
	}
}

// Run dispatches the fields to the calculator for t and records the outcome.
func (s *ResultState) Run(t InvestmentType, fields FieldSet) (InvestmentResult, error) {
	switch t {
	case Solar:
		return s.RunSolar(fields.SolarInput())
	case Water:
		return s.RunWater(fields.WaterInput())
	case Aerator:
		return s.RunAerator(fields.AeratorInput())
	case LED:
		return s.RunLED(fields.LEDInput())
	default:
		return InvestmentResult{}, ErrUnknownInvestment
	}
}
