package forecast

import (
	"fmt"
	"math"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/scenario"
)

// maxForecastSpan bounds a single projection. There is no backpressure
// upstream, so unreasonable ranges are rejected instead of computed.
const maxForecastSpan = 120

// Tables bundles the four input tables the engine reads. The engine
// never mutates them; repeated calls over the same tables are
// deterministic.
type Tables struct {
	Mortality    *dataset.MortalityTable
	Economic     *dataset.EconomicTable
	BasePremiums *dataset.BasePremiumTable
	Demographics *dataset.DemographicTable
}

// Forecaster projects premiums under named scenarios and aggregates them
// across the demographic population.
type Forecaster struct {
	tables   Tables
	registry *scenario.Registry
}

// NewForecaster wires the input tables to a scenario registry. A nil
// registry gets the built-in scenario set.
func NewForecaster(tables Tables, registry *scenario.Registry) (*Forecaster, error) {
	if tables.Mortality == nil || tables.Economic == nil ||
		tables.BasePremiums == nil || tables.Demographics == nil {
		return nil, fmt.Errorf("all four input tables are required")
	}
	if registry == nil {
		registry = scenario.Builtin()
	}
	return &Forecaster{tables: tables, registry: registry}, nil
}

// Registry exposes the scenario set this forecaster runs under.
func (f *Forecaster) Registry() *scenario.Registry {
	return f.registry
}

func checkYearRange(startYear, endYear int) error {
	if endYear < startYear {
		return fmt.Errorf("%w: end year %d precedes start year %d", ErrInvalidYearRange, endYear, startYear)
	}
	if span := endYear - startYear + 1; span > maxForecastSpan {
		return fmt.Errorf("%w: span of %d years exceeds the %d year limit", ErrInvalidYearRange, span, maxForecastSpan)
	}
	return nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
