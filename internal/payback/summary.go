package payback

import "math"

// TreeSummary is the tree equivalence of the CO2 avoided across results.
type TreeSummary struct {
	// TotalCO2Kg is the summed kg CO2 avoided per year.
	TotalCO2Kg float64 `json:"total_co2_kg"`

	// TreeCount is the number of trees absorbing TotalCO2Kg in a year, rounded
	// up. It is a float64 so totals beyond the int64 range stay exact in sign
	// and magnitude.
	TreeCount float64 `json:"tree_count"`

	// Contributors lists the investment types included in the sum.
	Contributors []InvestmentType `json:"contributors"`

	// IsEmpty is true when no result contributes a positive CO2 value.
	// It is distinct from a zero total.
	IsEmpty bool `json:"is_empty"`

	// Overflow is set with IsEmpty when the summed CO2 is not representable.
	Overflow bool `json:"overflow,omitempty"`
}

// TreeEquivalence sums the CO2 avoided by the current Solar, Water and LED
// results and converts it to a tree count.
//
// Only finite, strictly positive values contribute. When none remain the
// summary is empty. The sum is recomputed from r on every call.
func TreeEquivalence(r ResultReader) TreeSummary {
	var total float64
	var contributors []InvestmentType

	for _, t := range AllInvestments {
		if !t.HasCO2() {
			continue
		}
		result, ok := r.Result(t)
		if !ok || result.CO2AvoidedKg == nil {
			continue
		}
		co2 := *result.CO2AvoidedKg
		if math.IsNaN(co2) || math.IsInf(co2, 0) || co2 <= 0 {
			continue
		}
		total += co2
		contributors = append(contributors, t)
	}

	if len(contributors) == 0 {
		return TreeSummary{IsEmpty: true}
	}

	trees := math.Ceil(total / CO2PerTreePerYearKg)
	if math.IsInf(total, 0) || math.IsInf(trees, 0) {
		return TreeSummary{IsEmpty: true, Overflow: true}
	}

	return TreeSummary{
		TotalCO2Kg:   total,
		TreeCount:    trees,
		Contributors: contributors,
	}
}

// minCandidates is the number of valid paybacks needed before one can be
// called the best.
const minCandidates = 2

// BestOption returns the investment type with the strictly shortest payback.
//
// Only finite, strictly positive paybacks are candidates. There is no winner
// when fewer than two candidates exist or when the minimum is shared. Because
// PaybackYears is already rounded to 1 decimal, ties are decided on the value
// the user sees.
func BestOption(r ResultReader) (InvestmentType, bool) {
	var (
		best       InvestmentType
		bestYears  = math.Inf(1)
		candidates int
		tied       bool
	)

	for _, t := range AllInvestments {
		result, ok := r.Result(t)
		if !ok {
			continue
		}
		years := result.PaybackYears
		if math.IsNaN(years) || math.IsInf(years, 0) || years <= 0 {
			continue
		}
		candidates++

		switch {
		case years < bestYears:
			best, bestYears, tied = t, years, false
		case years == bestYears:
			tied = true
		}
	}

	if candidates < minCandidates || tied {
		return 0, false
	}
	return best, true
}
