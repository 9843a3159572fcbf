package format

import (
	"github.com/rshade/ecopayback/internal/payback"
)

// Metric is one labelled, display-ready value on a card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Card is the display form of one investment's latest result.
// An absent result yields a card whose values are all Placeholder.
type Card struct {
	Investment payback.InvestmentType `json:"investment"`
	Title      string                 `json:"title"`
	Present    bool                   `json:"present"`
	Highlight  bool                   `json:"highlight"`
	Metrics    []Metric               `json:"metrics"`
}

// Report is the complete display form of a result state.
type Report struct {
	Cards     []Card                 `json:"cards"`
	Trees     payback.TreeSummary    `json:"-"`
	TreeLine  string                 `json:"trees"`
	Winner    payback.InvestmentType `json:"-"`
	HasWinner bool                   `json:"-"`
	BestLine  string                 `json:"best"`
}

// Card renders a single result. A nil result renders as absent.
func (f *Formatter) Card(t payback.InvestmentType, r *payback.InvestmentResult, highlight bool) Card {
	card := Card{
		Investment: t,
		Title:      f.InvestmentLabel(t),
		Present:    r != nil,
		Highlight:  highlight && r != nil,
	}

	var (
		paybackYears *float64
		co2          *float64
		savings      *float64
		water        *float64
		energy       *float64
	)
	if r != nil {
		v := r.PaybackYears
		paybackYears = &v
		co2, savings, water, energy = r.CO2AvoidedKg, r.AnnualSavings, r.WaterSavedM3, r.EnergySavedKWh
	}

	card.Metrics = append(card.Metrics, Metric{Label: f.Text(LabelPayback), Value: Optional(paybackYears, f.Years)})
	if t.HasCO2() {
		card.Metrics = append(card.Metrics, Metric{Label: f.Text(LabelCO2), Value: Optional(co2, f.Kg)})
	}

	switch t {
	case payback.Aerator:
		card.Metrics = append(card.Metrics,
			Metric{Label: f.Text(LabelWater), Value: Optional(water, f.VolumeM3)},
			Metric{Label: f.Text(LabelSavings), Value: Optional(savings, f.Currency)},
		)
	case payback.LED:
		card.Metrics = append(card.Metrics,
			Metric{Label: f.Text(LabelEnergy), Value: Optional(energy, f.EnergyKWh)},
			Metric{Label: f.Text(LabelSavings), Value: Optional(savings, f.Currency)},
		)
	case payback.Solar, payback.Water:
	}

	return card
}

// Report renders every investment's card, the tree summary and the
// fastest-payback line. Only the winning card is highlighted.
func (f *Formatter) Report(r payback.ResultReader) Report {
	winner, ok := payback.BestOption(r)
	trees := payback.TreeEquivalence(r)

	rep := Report{
		Cards:     make([]Card, 0, len(payback.AllInvestments)),
		Trees:     trees,
		TreeLine:  f.TreeSummary(trees),
		Winner:    winner,
		HasWinner: ok,
		BestLine:  f.BestOption(winner, ok),
	}

	for _, t := range payback.AllInvestments {
		var res *payback.InvestmentResult
		if got, present := r.Result(t); present {
			res = &got
		}
		rep.Cards = append(rep.Cards, f.Card(t, res, ok && t == winner))
	}
	return rep
}

// PresentCards returns only the cards that carry a result.
func (r Report) PresentCards() []Card {
	out := make([]Card, 0, len(r.Cards))
	for _, c := range r.Cards {
		if c.Present {
			out = append(out, c)
		}
	}
	return out
}
