package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecopayback/internal/payback"
)

func TestReport(t *testing.T) {
	state := payback.NewResultState()
	_, err := state.RunSolar(payback.SolarInput{InvestmentCost: 10000, AnnualGenerationKWh: 4000, TariffPerKWh: 1})
	require.NoError(t, err)
	_, err = state.RunLED(payback.LEDInput{
		OldWattage: 60, NewWattage: 9, LampCount: 10, HoursPerDay: 5, KitCost: 200, TariffPerKWh: 0.75,
	})
	require.NoError(t, err)

	rep := MustNew(LocalePortuguese).Report(state)

	require.Len(t, rep.Cards, len(payback.AllInvestments))
	assert.True(t, rep.HasWinner)
	assert.Equal(t, payback.LED, rep.Winner)
	assert.Equal(t, "Retorno mais rápido: Troca por LED", rep.BestLine)

	solar, water, aerator, led := rep.Cards[0], rep.Cards[1], rep.Cards[2], rep.Cards[3]

	assert.True(t, solar.Present)
	assert.False(t, solar.Highlight)
	assert.Equal(t, []Metric{
		{Label: "Retorno", Value: "2,5 anos"},
		{Label: "CO2 evitado", Value: "154 kg"},
	}, solar.Metrics)

	assert.False(t, water.Present)
	assert.Equal(t, Placeholder, water.Metrics[0].Value)
	assert.Equal(t, Placeholder, water.Metrics[1].Value)

	assert.False(t, aerator.Present)
	assert.Len(t, aerator.Metrics, 3, "aerator has no CO2 metric")

	assert.True(t, led.Present)
	assert.True(t, led.Highlight)
	assert.Equal(t, []Metric{
		{Label: "Retorno", Value: "0,3 anos"},
		{Label: "CO2 evitado", Value: "35,83 kg"},
		{Label: "Energia economizada", Value: "930,75 kWh"},
		{Label: "Economia anual", Value: "R$ 698,06"},
	}, led.Metrics)

	assert.Len(t, rep.PresentCards(), 2)
	assert.False(t, rep.Trees.IsEmpty)
	assert.InDelta(t, 13.0, rep.Trees.TreeCount, 0) // ceil(189.83 / 15.6)
}

func TestReport_NoWinnerNoHighlight(t *testing.T) {
	state := payback.NewResultState()
	_, err := state.RunSolar(payback.SolarInput{InvestmentCost: 10000, AnnualGenerationKWh: 4000, TariffPerKWh: 1})
	require.NoError(t, err)

	rep := MustNew(LocaleEnglish).Report(state)
	assert.False(t, rep.HasWinner)
	assert.Equal(t, MsgNoWinner, rep.BestLine)
	for _, c := range rep.Cards {
		assert.False(t, c.Highlight, c.Title)
	}
}

func TestReport_Empty(t *testing.T) {
	rep := MustNew(LocaleEnglish).Report(payback.NewResultState())
	assert.Empty(t, rep.PresentCards())
	assert.Equal(t, MsgNoTrees, rep.TreeLine)
}
