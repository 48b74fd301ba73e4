package forecast_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/forecast"
	"premiumcast/pkg/core/scenario"
)

func sampleForecaster(t *testing.T) *forecast.Forecaster {
	t.Helper()
	m, e, b, d := dataset.SampleTables()
	f, err := forecast.NewForecaster(forecast.Tables{Mortality: m, Economic: e, BasePremiums: b, Demographics: d}, scenario.Builtin())
	if err != nil {
		t.Fatalf("NewForecaster: %v", err)
	}
	return f
}

func TestProjectEconomicsDeterministic(t *testing.T) {
	f := sampleForecaster(t)
	sc, _ := f.Registry().Get("base")

	first, err := f.ProjectEconomics(2024, 2033, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	second, err := f.ProjectEconomics(2024, 2033, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two projections with identical inputs differ")
	}
}

func TestProjectEconomicsConvergesToTargets(t *testing.T) {
	f := sampleForecaster(t)
	sc, _ := f.Registry().Get("base")

	// 50 years out the convergence factor is ~1 and the damped noise is
	// negligible: values land on the scenario targets after rounding.
	proj, err := f.ProjectEconomics(2073, 2073, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	if math.Abs(proj[0].InflationRate-sc.InflationBase) > 1e-9 {
		t.Errorf("inflation: got %v, want %v", proj[0].InflationRate, sc.InflationBase)
	}
	if math.Abs(proj[0].InterestRate-sc.InterestBase) > 1e-9 {
		t.Errorf("interest: got %v, want %v", proj[0].InterestRate, sc.InterestBase)
	}
}

func TestProjectEconomicsClampFloor(t *testing.T) {
	f := sampleForecaster(t)
	sc := scenario.Scenario{InflationBase: 0, InterestBase: 0}

	// Zero targets far out would converge below the floor; both rates
	// must clamp at 0.5.
	proj, err := f.ProjectEconomics(2073, 2073, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	if proj[0].InflationRate != 0.5 {
		t.Errorf("inflation floor: got %v, want 0.5", proj[0].InflationRate)
	}
	if proj[0].InterestRate != 0.5 {
		t.Errorf("interest floor: got %v, want 0.5", proj[0].InterestRate)
	}
}

func TestProjectEconomicsCountryFallbackDefaults(t *testing.T) {
	sc := scenario.Scenario{InflationBase: 5.0, InterestBase: 6.5}
	mortality := singleCellMortality()

	// India absent entirely: projection starts from the documented
	// defaults (inflation 5.0, interest 6.5).
	usOnly := newForecaster(t, forecast.Tables{Mortality: mortality, Economic: &dataset.EconomicTable{Records: []dataset.EconomicRecord{
		{Year: 2023, Country: "US", InflationRate: 9.9, InterestRate: 9.9, GDPGrowth: 9.9},
	}}})
	// India present with exactly the default values at the same year.
	withIndia := newForecaster(t, forecast.Tables{Mortality: mortality, Economic: &dataset.EconomicTable{Records: []dataset.EconomicRecord{
		{Year: 2023, Country: "India", InflationRate: 5.0, InterestRate: 6.5, GDPGrowth: 6.5},
	}}})

	fromDefaults, err := usOnly.ProjectEconomics(2024, 2028, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	fromHistory, err := withIndia.ProjectEconomics(2024, 2028, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	if !reflect.DeepEqual(fromDefaults, fromHistory) {
		t.Error("default fallback should behave exactly like history at the default values")
	}
}

func TestProjectEconomicsMostRecentCountryRow(t *testing.T) {
	sc := scenario.Scenario{InflationBase: 5.0, InterestBase: 6.5}
	mortality := singleCellMortality()

	// India lags the global latest year: its own most recent row is the
	// starting point, while yearsAhead still anchors on the global max.
	lagging := newForecaster(t, forecast.Tables{Mortality: mortality, Economic: &dataset.EconomicTable{Records: []dataset.EconomicRecord{
		{Year: 2023, Country: "US", InflationRate: 3.0, InterestRate: 4.0, GDPGrowth: 2.0},
		{Year: 2021, Country: "India", InflationRate: 5.1, InterestRate: 6.0, GDPGrowth: 8.9},
		{Year: 2022, Country: "India", InflationRate: 6.7, InterestRate: 6.25, GDPGrowth: 7.2},
	}}})
	current := newForecaster(t, forecast.Tables{Mortality: mortality, Economic: &dataset.EconomicTable{Records: []dataset.EconomicRecord{
		{Year: 2023, Country: "India", InflationRate: 6.7, InterestRate: 6.25, GDPGrowth: 7.2},
	}}})

	fromLagging, err := lagging.ProjectEconomics(2024, 2026, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	fromCurrent, err := current.ProjectEconomics(2024, 2026, sc, "India")
	if err != nil {
		t.Fatalf("ProjectEconomics: %v", err)
	}
	if !reflect.DeepEqual(fromLagging, fromCurrent) {
		t.Error("lagging country should start from its most recent row")
	}
}

func TestProjectEconomicsEmptyTable(t *testing.T) {
	f := newForecaster(t, forecast.Tables{Mortality: singleCellMortality(), Economic: &dataset.EconomicTable{}})
	sc := scenario.Scenario{InflationBase: 5.0, InterestBase: 6.5}
	if _, err := f.ProjectEconomics(2024, 2025, sc, "India"); !errors.Is(err, forecast.ErrEmptyDataset) {
		t.Errorf("empty table: got %v, want ErrEmptyDataset", err)
	}
}
