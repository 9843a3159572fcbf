package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecopayback/internal/payback"
)

func TestNew(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "pt-BR", want: LocalePortuguese},
		{input: "pt_br", want: LocalePortuguese},
		{input: "pt", want: LocalePortuguese},
		{input: "en", want: LocaleEnglish},
		{input: "EN-US", want: LocaleEnglish},
		{input: "fr", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := New(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedLocale)
				assert.False(t, IsSupportedLocale(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Locale())
		})
	}

	assert.Panics(t, func() { MustNew("xx") })
}

func TestNumber(t *testing.T) {
	en := MustNew(LocaleEnglish)
	pt := MustNew(LocalePortuguese)

	tests := []struct {
		name      string
		v         float64
		precision int
		wantEN    string
		wantPT    string
	}{
		{"integer", 154, 0, "154", "154"},
		{"one decimal", 2.5, 1, "2.5", "2,5"},
		{"pads fraction", 12, 1, "12.0", "12,0"},
		{"groups thousands", 12345.6, 1, "12,345.6", "12.345,6"},
		{"millions", 1234567.89, 2, "1,234,567.89", "1.234.567,89"},
		{"negative", -12345.5, 1, "-12,345.5", "-12.345,5"},
		{"negative zero collapses", -0.01, 1, "0.0", "0,0"},
		{"nineteen digits", 1e18, 0, "1,000,000,000,000,000,000", "1.000.000.000.000.000.000"},
		{"beyond int64", 1e20, 1, "100,000,000,000,000,000,000.0", "100.000.000.000.000.000.000,0"},
		{"twenty-two digits", 1234e18, 0, "1,234,000,000,000,000,000,000", "1.234.000.000.000.000.000.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEN, en.Number(tt.v, tt.precision))
			assert.Equal(t, tt.wantPT, pt.Number(tt.v, tt.precision))
		})
	}

	assert.Equal(t, Placeholder, en.Number(math.NaN(), 1))
	assert.Equal(t, Placeholder, pt.Number(math.Inf(1), 1))
}

func TestCompact(t *testing.T) {
	pt := MustNew(LocalePortuguese)

	assert.Equal(t, "35,83", pt.Compact(35.833875, 2))
	assert.Equal(t, "35,8", pt.Compact(35.8, 2))
	assert.Equal(t, "43", pt.Compact(43, 2))
	assert.Equal(t, "12.345", pt.Compact(12345, 2))
}

func TestDisplayUnits(t *testing.T) {
	en := MustNew(LocaleEnglish)
	pt := MustNew(LocalePortuguese)

	t.Run("years", func(t *testing.T) {
		assert.Equal(t, "2.5 years", en.Years(2.5))
		assert.Equal(t, "2,5 anos", pt.Years(2.5))
		assert.Equal(t, "3,0 anos", pt.Years(3))
	})

	t.Run("kg", func(t *testing.T) {
		assert.Equal(t, "154 kg", pt.Kg(154))
		assert.Equal(t, "12,345 kg", en.Kg(12345))
		assert.Equal(t, "35,83 kg", pt.Kg(35.833875))
	})

	t.Run("currency", func(t *testing.T) {
		assert.Equal(t, "R$ 698,06", pt.Currency(698.06))
		assert.Equal(t, "$698.06", en.Currency(698.06))
		assert.Equal(t, "$438.00", en.Currency(438))
	})

	t.Run("volume and energy", func(t *testing.T) {
		assert.Equal(t, "43,8 m³", pt.VolumeM3(43.8))
		assert.Equal(t, "930.75 kWh", en.EnergyKWh(930.75))
	})

	t.Run("large values", func(t *testing.T) {
		assert.Equal(t, "100,000,000,000,000,000,000 kg", en.Kg(1e20))
		assert.Equal(t, "10.000.000.000.000.000.905.969.664,0 anos", pt.Years(1e25))
		assert.Equal(t, "2,467,948,717,948,717,760,512 trees", en.Trees(math.Ceil(3.85e22/15.6)))
	})

	t.Run("trees", func(t *testing.T) {
		assert.Equal(t, "13 trees", en.Trees(13))
		assert.Equal(t, "13 árvores", pt.Trees(13))
		assert.Equal(t, "12,345 trees", en.Trees(12345))
	})

	t.Run("optional", func(t *testing.T) {
		v := 154.0
		assert.Equal(t, "154 kg", Optional(&v, pt.Kg))
		assert.Equal(t, Placeholder, Optional(nil, pt.Kg))
	})
}

func TestMessages(t *testing.T) {
	en := MustNew(LocaleEnglish)
	pt := MustNew(LocalePortuguese)

	t.Run("feedback", func(t *testing.T) {
		assert.Equal(t, "Resultados atualizados. Compare as opções abaixo.", pt.Feedback(nil))
		assert.Equal(t, "Revise os campos: use apenas números positivos para o cálculo.",
			pt.Feedback(errors.New("bad")))
		assert.Equal(t, MsgUpdated, en.Feedback(nil))
		assert.Equal(t, MsgInvalid, en.Feedback(payback.ErrInvalidInput))
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Energia solar", pt.InvestmentLabel(payback.Solar))
		assert.Equal(t, "LED retrofit", en.InvestmentLabel(payback.LED))
		assert.Equal(t, "InvestmentType(9)", en.InvestmentLabel(payback.InvestmentType(9)))
	})

	t.Run("best option", func(t *testing.T) {
		assert.Equal(t, "Fastest payback: Solar generation", en.BestOption(payback.Solar, true))
		assert.Equal(t, MsgNoWinner, en.BestOption(payback.Solar, false))
		assert.Equal(t, "Retorno mais rápido: Reúso de água", pt.BestOption(payback.Water, true))
	})

	t.Run("tree summary", func(t *testing.T) {
		assert.Equal(t, MsgNoTrees, en.TreeSummary(payback.TreeSummary{IsEmpty: true}))
		got := en.TreeSummary(payback.TreeSummary{TotalCO2Kg: 157, TreeCount: 11})
		assert.Equal(t, "157 kg of CO2 avoided per year, equivalent to 11 trees", got)
	})
}

func TestFieldLabel(t *testing.T) {
	en := MustNew(LocaleEnglish)
	pt := MustNew(LocalePortuguese)

	for _, inv := range payback.AllInvestments {
		for _, name := range payback.FieldNames(inv) {
			assert.NotEqual(t, name, en.FieldLabel(name), "missing label for %s", name)
			assert.NotEqual(t, en.FieldLabel(name), pt.FieldLabel(name), "missing translation for %s", name)
		}
	}
	assert.Equal(t, "Potência LED (W)", pt.FieldLabel(payback.FieldNewWattage))
	assert.Equal(t, "mystery", en.FieldLabel("mystery"))
}
