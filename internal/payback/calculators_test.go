package payback

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSolar(t *testing.T) {
	tests := []struct {
		name        string
		input       SolarInput
		wantPayback float64
		wantCO2     float64
		wantErr     bool
	}{
		{
			name:        "typical installation",
			input:       SolarInput{InvestmentCost: 10000, AnnualGenerationKWh: 4000, TariffPerKWh: 1},
			wantPayback: 2.5,
			wantCO2:     154, // 4000 * 0.0385
		},
		{
			name:        "payback rounded to one decimal",
			input:       SolarInput{InvestmentCost: 20000, AnnualGenerationKWh: 6000, TariffPerKWh: 0.9},
			wantPayback: 3.7, // 20000 / 5400 = 3.7037
			wantCO2:     231, // 6000 * 0.0385
		},
		{"zero cost", SolarInput{InvestmentCost: 0, AnnualGenerationKWh: 4000, TariffPerKWh: 1}, 0, 0, true},
		{"negative generation", SolarInput{InvestmentCost: 100, AnnualGenerationKWh: -1, TariffPerKWh: 1}, 0, 0, true},
		{"NaN tariff", SolarInput{InvestmentCost: 100, AnnualGenerationKWh: 10, TariffPerKWh: math.NaN()}, 0, 0, true},
		{"infinite cost", SolarInput{InvestmentCost: math.Inf(1), AnnualGenerationKWh: 10, TariffPerKWh: 1}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSolar(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Equal(t, InvestmentResult{}, got, "no partial result on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Solar, got.Type)
			assert.InDelta(t, tt.wantPayback, got.PaybackYears, 1e-9)
			require.NotNil(t, got.CO2AvoidedKg)
			assert.InDelta(t, tt.wantCO2, *got.CO2AvoidedKg, 1e-9)
			assert.Nil(t, got.AnnualSavings)
		})
	}
}

func TestCalculateSolar_PaybackMatchesFormula(t *testing.T) {
	inputs := []SolarInput{
		{InvestmentCost: 15000, AnnualGenerationKWh: 3200, TariffPerKWh: 0.82},
		{InvestmentCost: 999, AnnualGenerationKWh: 1, TariffPerKWh: 7},
		{InvestmentCost: 0.5, AnnualGenerationKWh: 12000, TariffPerKWh: 0.1},
		{InvestmentCost: 42000, AnnualGenerationKWh: 7777, TariffPerKWh: 1.13},
	}

	for _, in := range inputs {
		got, err := CalculateSolar(in)
		require.NoError(t, err)
		want := RoundTo(in.InvestmentCost/(in.AnnualGenerationKWh*in.TariffPerKWh), 1)
		assert.Equal(t, want, got.PaybackYears)
	}
}

func TestCalculateSolar_TariffMonotonicity(t *testing.T) {
	tariffs := []float64{0.25, 0.5, 1, 2, 4}
	previous := math.Inf(1)

	for _, tariff := range tariffs {
		got, err := CalculateSolar(SolarInput{InvestmentCost: 12000, AnnualGenerationKWh: 3000, TariffPerKWh: tariff})
		require.NoError(t, err)
		assert.Less(t, got.PaybackYears, previous, "tariff %v", tariff)
		previous = got.PaybackYears
	}
}

func TestCalculateWater(t *testing.T) {
	t.Run("payback and co2", func(t *testing.T) {
		got, err := CalculateWater(WaterInput{InvestmentCost: 3000, AnnualVolumeM3: 100, WaterTariff: 10})
		require.NoError(t, err)
		assert.Equal(t, Water, got.Type)
		assert.InDelta(t, 3.0, got.PaybackYears, 1e-9)
		require.NotNil(t, got.CO2AvoidedKg)
		assert.InDelta(t, 3.0, *got.CO2AvoidedKg, 1e-9) // 100 * 0.67 * 0.0385 = 2.5795
	})

	t.Run("co2 matches formula", func(t *testing.T) {
		for _, volume := range []float64{1, 37.5, 250, 1200, 98765} {
			got, err := CalculateWater(WaterInput{InvestmentCost: 500, AnnualVolumeM3: volume, WaterTariff: 4.2})
			require.NoError(t, err)
			require.NotNil(t, got.CO2AvoidedKg)
			assert.Equal(t, RoundTo(volume*0.67*0.0385, 0), *got.CO2AvoidedKg, "volume %v", volume)
		}
	})

	t.Run("rejects zero tariff", func(t *testing.T) {
		_, err := CalculateWater(WaterInput{InvestmentCost: 3000, AnnualVolumeM3: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCalculateAerator(t *testing.T) {
	valid := AeratorInput{OldFlowLPerMin: 8, NewFlowLPerMin: 4, MinutesPerDay: 30, PartCost: 50, WaterTariff: 10}

	t.Run("derives savings and payback", func(t *testing.T) {
		got, err := CalculateAerator(valid)
		require.NoError(t, err)
		assert.Equal(t, Aerator, got.Type)

		// (8-4) * 30 * 365 = 43800 L = 43.8 m³; 43.8 * 10 = 438 per year.
		require.NotNil(t, got.WaterSavedM3)
		require.NotNil(t, got.AnnualSavings)
		assert.InDelta(t, 43.8, *got.WaterSavedM3, 1e-9)
		assert.InDelta(t, 438.0, *got.AnnualSavings, 1e-9)
		assert.InDelta(t, 0.1, got.PaybackYears, 1e-9) // 50 / 438 = 0.114
		assert.Nil(t, got.CO2AvoidedKg, "aerator has no CO2 metric")
	})

	tests := []struct {
		name  string
		input AeratorInput
	}{
		{"new flow equal to old", AeratorInput{OldFlowLPerMin: 6, NewFlowLPerMin: 6, MinutesPerDay: 30, PartCost: 50, WaterTariff: 10}},
		{"new flow above old", AeratorInput{OldFlowLPerMin: 4, NewFlowLPerMin: 8, MinutesPerDay: 30, PartCost: 50, WaterTariff: 10}},
		{"missing minutes", AeratorInput{OldFlowLPerMin: 8, NewFlowLPerMin: 4, PartCost: 50, WaterTariff: 10}},
		{"negative part cost", AeratorInput{OldFlowLPerMin: 8, NewFlowLPerMin: 4, MinutesPerDay: 30, PartCost: -5, WaterTariff: 10}},
		{"NaN new flow", AeratorInput{OldFlowLPerMin: 8, NewFlowLPerMin: math.NaN(), MinutesPerDay: 30, PartCost: 50, WaterTariff: 10}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			got, err := CalculateAerator(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, InvestmentResult{}, got)
		})
	}
}

func TestCalculateLED(t *testing.T) {
	t.Run("retrofit of ten lamps", func(t *testing.T) {
		got, err := CalculateLED(LEDInput{
			OldWattage: 60, NewWattage: 9, LampCount: 10, HoursPerDay: 5, KitCost: 200, TariffPerKWh: 0.75,
		})
		require.NoError(t, err)
		assert.Equal(t, LED, got.Type)

		// (60-9) * 10 * 5 * 365 / 1000 = 930.75 kWh per year.
		require.NotNil(t, got.EnergySavedKWh)
		assert.InDelta(t, 930.75, *got.EnergySavedKWh, 1e-9)

		require.NotNil(t, got.AnnualSavings)
		assert.InDelta(t, 698.06, *got.AnnualSavings, 1e-9)
		assert.InDelta(t, 0.3, got.PaybackYears, 1e-9)

		// CO2 is kept unrounded.
		require.NotNil(t, got.CO2AvoidedKg)
		assert.InDelta(t, 930.75*0.0385, *got.CO2AvoidedKg, 1e-9)
		assert.NotEqual(t, math.Round(*got.CO2AvoidedKg), *got.CO2AvoidedKg)
	})

	t.Run("rejects new wattage not lower than old", func(t *testing.T) {
		for _, newWattage := range []float64{60, 75} {
			_, err := CalculateLED(LEDInput{
				OldWattage: 60, NewWattage: newWattage, LampCount: 10, HoursPerDay: 5, KitCost: 200, TariffPerKWh: 0.75,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("ordering constraint checked regardless of other fields", func(t *testing.T) {
		_, err := CalculateLED(LEDInput{
			OldWattage: 9, NewWattage: 60, LampCount: 1, HoursPerDay: 1, KitCost: 1, TariffPerKWh: 1,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "new_wattage must be lower than old_wattage")
	})
}

func TestCalculators_Idempotent(t *testing.T) {
	led := LEDInput{OldWattage: 40, NewWattage: 7, LampCount: 4, HoursPerDay: 6, KitCost: 80, TariffPerKWh: 0.6}
	first, err := CalculateLED(led)
	require.NoError(t, err)
	second, err := CalculateLED(led)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	solar := SolarInput{InvestmentCost: 9000, AnnualGenerationKWh: 2500, TariffPerKWh: 0.7}
	s1, err := CalculateSolar(solar)
	require.NoError(t, err)
	s2, err := CalculateSolar(solar)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"exact tie rounds away from zero", 0.25, 1, 0.3},
		{"binary value below tie rounds down", 1.005, 2, 1.0},
		{"binary value above tie rounds up", 2.45, 1, 2.5},
		{"1.45 is stored below the tie", 1.45, 1, 1.4},
		{"whole number", 2.5, 0, 3},
		{"small value", 0.04, 1, 0},
		{"no change needed", 3.2, 1, 3.2},
		{"negative", -2.25, 1, -2.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTo(tt.value, tt.decimals))
		})
	}

	t.Run("non-finite values pass through", func(t *testing.T) {
		assert.True(t, math.IsNaN(RoundTo(math.NaN(), 1)))
		assert.True(t, math.IsInf(RoundTo(math.Inf(1), 1), 1))
	})
}
