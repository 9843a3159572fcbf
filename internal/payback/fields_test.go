package payback

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantNaN bool
	}{
		{raw: "12", want: 12},
		{raw: " 3.5 ", want: 3.5},
		{raw: "1e3", want: 1000},
		{raw: ".5", want: 0.5},
		{raw: "-4", want: -4},
		{raw: "", want: 0},
		{raw: "   ", want: 0},
		{raw: "abc", wantNaN: true},
		{raw: "1,5", wantNaN: true},
		{raw: "0x10", want: 16},
		{raw: "0XfF", want: 255},
		{raw: "0b11", want: 3},
		{raw: "0o17", want: 15},
		{raw: "010", want: 10},
		{raw: "-0x10", wantNaN: true},
		{raw: "0x", wantNaN: true},
		{raw: "0x-5", wantNaN: true},
		{raw: "0xg", wantNaN: true},
		{raw: "0x1p3", wantNaN: true},
		{raw: "0b1_0", wantNaN: true},
		{raw: "1_000", wantNaN: true},
		{raw: "12kg", wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseField(tt.raw)
			if tt.wantNaN {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldSet_MissingAndMalformedCollapse(t *testing.T) {
	missing := FieldSet{FieldInvestmentCost: "100", FieldAnnualGenerationKWh: "200"}
	malformed := FieldSet{FieldInvestmentCost: "100", FieldAnnualGenerationKWh: "200", FieldTariffPerKWh: "x"}

	_, errMissing := CalculateSolar(missing.SolarInput())
	_, errMalformed := CalculateSolar(malformed.SolarInput())

	require.Error(t, errMissing)
	require.Error(t, errMalformed)
	assert.ErrorIs(t, errMissing, ErrInvalidInput)
	assert.ErrorIs(t, errMalformed, ErrInvalidInput)
}

func TestFieldSet_Inputs(t *testing.T) {
	fields := FieldSet{
		FieldOldWattage:   "60",
		FieldNewWattage:   "9",
		FieldLampCount:    "10",
		FieldHoursPerDay:  "5",
		FieldKitCost:      "200",
		FieldTariffPerKWh: "0.75",
	}
	assert.Equal(t, validLED, fields.LEDInput())

	water := FieldSet{FieldInvestmentCost: "3000", FieldAnnualVolumeM3: "100", FieldWaterTariff: "10"}
	assert.Equal(t, validWater, water.WaterInput())
}

func TestFieldNames(t *testing.T) {
	for _, inv := range AllInvestments {
		assert.NotEmpty(t, FieldNames(inv), inv.String())
	}
	assert.Len(t, FieldNames(LED), 6)
	assert.Nil(t, FieldNames(InvestmentType(99)))
}

func TestParseInvestmentType(t *testing.T) {
	for _, inv := range AllInvestments {
		got, err := ParseInvestmentType(inv.String())
		require.NoError(t, err)
		assert.Equal(t, inv, got)
	}

	got, err := ParseInvestmentType(" LED ")
	require.NoError(t, err)
	assert.Equal(t, LED, got)

	_, err = ParseInvestmentType("wind")
	assert.ErrorIs(t, err, ErrUnknownInvestment)

	var decoded InvestmentType
	require.NoError(t, decoded.UnmarshalText([]byte("water")))
	assert.Equal(t, Water, decoded)

	text, err := Aerator.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "aerator", string(text))
	assert.Equal(t, "InvestmentType(7)", InvestmentType(7).String())
}
