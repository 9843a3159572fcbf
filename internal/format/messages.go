package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"

	"github.com/rshade/ecopayback/internal/payback"
)

// Message keys. The English text doubles as the key.
const (
	msgYears = "%s years"
	msgTrees = "%s trees"

	MsgUpdated   = "Results updated. Compare the options below."
	MsgInvalid   = "Check the fields: use only positive numbers for the calculation."
	MsgBest      = "Fastest payback: %s"
	MsgNoWinner  = "No single option has the fastest payback."
	MsgNoTrees   = "No CO2 reduction calculated yet."
	MsgTreeTotal = "%s of CO2 avoided per year, equivalent to %s"

	labelSolar   = "Solar generation"
	labelWater   = "Greywater reuse"
	labelAerator = "Low-flow aerator"
	labelLED     = "LED retrofit"

	LabelPayback = "Payback"
	LabelCO2     = "CO2 avoided"
	LabelSavings = "Annual savings"
	LabelWater   = "Water saved"
	LabelEnergy  = "Energy saved"
)

// fieldLabels maps input field names to their English labels.
//
//nolint:gochecknoglobals // Static label table.
var fieldLabels = map[string]string{
	payback.FieldInvestmentCost:      "Investment cost",
	payback.FieldAnnualGenerationKWh: "Annual generation (kWh)",
	payback.FieldTariffPerKWh:        "Tariff per kWh",
	payback.FieldAnnualVolumeM3:      "Annual volume (m³)",
	payback.FieldWaterTariff:         "Water tariff per m³",
	payback.FieldOldFlowLPerMin:      "Current flow (L/min)",
	payback.FieldNewFlowLPerMin:      "New flow (L/min)",
	payback.FieldMinutesPerDay:       "Minutes per day",
	payback.FieldPartCost:            "Part cost",
	payback.FieldOldWattage:          "Current wattage (W)",
	payback.FieldNewWattage:          "LED wattage (W)",
	payback.FieldLampCount:           "Lamp count",
	payback.FieldHoursPerDay:         "Hours per day",
	payback.FieldKitCost:             "Kit cost",
}

// translations maps each key to its pt-BR text.
//
//nolint:gochecknoglobals // Static translation table.
var translations = map[string]string{
	msgYears:     "%s anos",
	msgTrees:     "%s árvores",
	MsgUpdated:   "Resultados atualizados. Compare as opções abaixo.",
	MsgInvalid:   "Revise os campos: use apenas números positivos para o cálculo.",
	MsgBest:      "Retorno mais rápido: %s",
	MsgNoWinner:  "Nenhuma opção tem sozinha o retorno mais rápido.",
	MsgNoTrees:   "Nenhuma redução de CO2 calculada ainda.",
	MsgTreeTotal: "%s de CO2 evitados por ano, o equivalente a %s",
	labelSolar:   "Energia solar",
	labelWater:   "Reúso de água",
	labelAerator: "Arejador de baixa vazão",
	labelLED:     "Troca por LED",
	LabelPayback: "Retorno",
	LabelCO2:     "CO2 evitado",
	LabelSavings: "Economia anual",
	LabelWater:   "Água economizada",
	LabelEnergy:  "Energia economizada",

	"Investment cost":         "Investimento",
	"Annual generation (kWh)": "Geração anual (kWh)",
	"Tariff per kWh":          "Tarifa por kWh",
	"Annual volume (m³)":      "Volume anual (m³)",
	"Water tariff per m³":     "Tarifa de água por m³",
	"Current flow (L/min)":    "Vazão atual (L/min)",
	"New flow (L/min)":        "Vazão nova (L/min)",
	"Minutes per day":         "Minutos por dia",
	"Part cost":               "Custo da peça",
	"Current wattage (W)":     "Potência atual (W)",
	"LED wattage (W)":         "Potência LED (W)",
	"Lamp count":              "Quantidade de lâmpadas",
	"Hours per day":           "Horas por dia",
	"Kit cost":                "Custo do kit",
}

// messages holds every message in both supported languages.
//
//nolint:gochecknoglobals // Built once; read-only afterwards.
var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, pt := range translations {
		// SetString only fails for malformed tags; both tags are constants.
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.BrazilianPortuguese, key, pt)
	}
	return b
}

// Text returns the localized text for a message key, applying args as in
// fmt.Sprintf. Unknown keys are formatted as-is.
func (f *Formatter) Text(key string, args ...interface{}) string {
	return f.printer.Sprintf(key, args...)
}

// InvestmentLabel returns the localized display name of an investment type.
func (f *Formatter) InvestmentLabel(t payback.InvestmentType) string {
	switch t {
	case payback.Solar:
		return f.Text(labelSolar)
	case payback.Water:
		return f.Text(labelWater)
	case payback.Aerator:
		return f.Text(labelAerator)
	case payback.LED:
		return f.Text(labelLED)
	default:
		return t.String()
	}
}

// FieldLabel returns the localized label of an input field, or the field
// name itself when it is not known.
func (f *Formatter) FieldLabel(name string) string {
	label, ok := fieldLabels[name]
	if !ok {
		return name
	}
	return f.Text(label)
}

// Feedback returns the message shown after a submission.
func (f *Formatter) Feedback(err error) string {
	if err != nil {
		return f.Text(MsgInvalid)
	}
	return f.Text(MsgUpdated)
}

// BestOption returns the highlight line for the selector outcome.
func (f *Formatter) BestOption(t payback.InvestmentType, ok bool) string {
	if !ok {
		return f.Text(MsgNoWinner)
	}
	return f.Text(MsgBest, f.InvestmentLabel(t))
}

// TreeSummary returns the tree equivalence line.
func (f *Formatter) TreeSummary(s payback.TreeSummary) string {
	if s.IsEmpty {
		return f.Text(MsgNoTrees)
	}
	return f.Text(MsgTreeTotal, f.Kg(s.TotalCO2Kg), f.Trees(s.TreeCount))
}
