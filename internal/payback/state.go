package payback

import (
	"errors"

	"github.com/rs/zerolog"
)

// ResultReader exposes the latest result per investment type.
// It is the only view TreeEquivalence and BestOption need.
type ResultReader interface {
	// Result returns the current result for t, or false when it is absent.
	Result(t InvestmentType) (InvestmentResult, bool)
}

// ResultState records the latest calculator outcome for each investment type.
//
// An entry is created the first time its calculator runs. A successful run
// overwrites it; a run with invalid input clears it, dropping payback and CO2
// together, so that no stale value survives an invalidated submission.
//
// ResultState is not safe for concurrent use.
type ResultState struct {
	entries map[InvestmentType]*InvestmentResult
	logger  zerolog.Logger
}

// NewResultState returns an empty state with logging disabled.
func NewResultState() *ResultState {
	return &ResultState{
		entries: make(map[InvestmentType]*InvestmentResult, len(AllInvestments)),
		logger:  zerolog.Nop(),
	}
}

// WithLogger attaches a logger that receives a debug event per run.
func (s *ResultState) WithLogger(logger zerolog.Logger) *ResultState {
	s.logger = logger
	return s
}

// Result implements ResultReader.
func (s *ResultState) Result(t InvestmentType) (InvestmentResult, bool) {
	r, ok := s.entries[t]
	if !ok || r == nil {
		return InvestmentResult{}, false
	}
	return *r, true
}

// Known reports whether the calculator for t has run at least once, whether
// or not its latest run succeeded.
func (s *ResultState) Known(t InvestmentType) bool {
	_, ok := s.entries[t]
	return ok
}

// Results returns the present results in display order.
func (s *ResultState) Results() []InvestmentResult {
	out := make([]InvestmentResult, 0, len(AllInvestments))
	for _, t := range AllInvestments {
		if r, ok := s.Result(t); ok {
			out = append(out, r)
		}
	}
	return out
}

// Reset clears every known entry.
func (s *ResultState) Reset() {
	for t := range s.entries {
		s.entries[t] = nil
	}
	s.logger.Debug().Msg("result state reset")
}

// RunSolar calculates and records the solar result.
func (s *ResultState) RunSolar(in SolarInput) (InvestmentResult, error) {
	return s.record(Solar, func() (InvestmentResult, error) { return CalculateSolar(in) })
}

// RunWater calculates and records the greywater reuse result.
func (s *ResultState) RunWater(in WaterInput) (InvestmentResult, error) {
	return s.record(Water, func() (InvestmentResult, error) { return CalculateWater(in) })
}

// RunAerator calculates and records the aerator result.
func (s *ResultState) RunAerator(in AeratorInput) (InvestmentResult, error) {
	return s.record(Aerator, func() (InvestmentResult, error) { return CalculateAerator(in) })
}

// RunLED calculates and records the LED retrofit result.
func (s *ResultState) RunLED(in LEDInput) (InvestmentResult, error) {
	return s.record(LED, func() (InvestmentResult, error) { return CalculateLED(in) })
}

// RunSolarAndWater handles the combined solar and greywater submission.
// Both inputs are calculated before either is stored; if either is invalid
// both entries are cleared and the joined error is returned.
func (s *ResultState) RunSolarAndWater(solar SolarInput, water WaterInput) (InvestmentResult, InvestmentResult, error) {
	solarResult, solarErr := CalculateSolar(solar)
	waterResult, waterErr := CalculateWater(water)

	if err := errors.Join(solarErr, waterErr); err != nil {
		s.clear(Solar, err)
		s.clear(Water, err)
		return InvestmentResult{}, InvestmentResult{}, err
	}

	s.store(solarResult)
	s.store(waterResult)
	return solarResult, waterResult, nil
}

// record runs calc and stores or clears the entry for t.
func (s *ResultState) record(t InvestmentType, calc func() (InvestmentResult, error)) (InvestmentResult, error) {
	result, err := calc()
	if err != nil {
		s.clear(t, err)
		return InvestmentResult{}, err
	}
	s.store(result)
	return result, nil
}

func (s *ResultState) store(result InvestmentResult) {
	r := result
	s.entries[result.Type] = &r

	event := s.logger.Debug().
		Str("investment", result.Type.String()).
		Float64("payback_years", result.PaybackYears)
	if result.CO2AvoidedKg != nil {
		event = event.Float64("co2_avoided_kg", *result.CO2AvoidedKg)
	}
	event.Msg("result recorded")
}

func (s *ResultState) clear(t InvestmentType, cause error) {
	s.entries[t] = nil
	s.logger.Debug().
		Err(cause).
		Str("investment", t.String()).
		Msg("result cleared")
}
