package forecast_test

import (
	"errors"
	"reflect"
	"testing"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/forecast"
	"premiumcast/pkg/core/scenario"
)

func TestForecastAveragePremiumSampleTables(t *testing.T) {
	f := sampleForecaster(t)

	rows, err := f.ForecastAveragePremium(2024, 2026, "base", "India", forecast.Filters{})
	if err != nil {
		t.Fatalf("ForecastAveragePremium: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	for i, row := range rows {
		if row.Year != 2024+i {
			t.Errorf("row %d: year %d, want %d", i, row.Year, 2024+i)
		}
		if row.Scenario != "base" {
			t.Errorf("row %d: scenario %q, want base", i, row.Scenario)
		}
		// Every sample cell joins, so the full book is in scope.
		if row.TotalPolicies != 21640 {
			t.Errorf("row %d: total policies %d, want 21640", i, row.TotalPolicies)
		}
		if row.AveragePremium <= 0 {
			t.Errorf("row %d: non-positive average premium %v", i, row.AveragePremium)
		}
		if row.AverageSumInsured == nil {
			t.Errorf("row %d: sample tables carry sum_insured, average must be present", i)
		}
		if row.AverageLifeExpectancy <= 0 || row.AverageMortalityRate <= 0 {
			t.Errorf("row %d: health metrics missing: %+v", i, row)
		}
	}

	// Sustained mortality improvement raises life expectancy year on year.
	if rows[2].AverageLifeExpectancy < rows[0].AverageLifeExpectancy {
		t.Errorf("life expectancy fell across the horizon: %v -> %v",
			rows[0].AverageLifeExpectancy, rows[2].AverageLifeExpectancy)
	}
}

func TestForecastAveragePremiumDeterministic(t *testing.T) {
	f := sampleForecaster(t)

	first, err := f.ForecastAveragePremium(2024, 2030, "pessimistic", "India", forecast.Filters{})
	if err != nil {
		t.Fatalf("ForecastAveragePremium: %v", err)
	}
	second, err := f.ForecastAveragePremium(2024, 2030, "pessimistic", "India", forecast.Filters{})
	if err != nil {
		t.Fatalf("ForecastAveragePremium: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two forecasts with identical inputs differ")
	}
}

func TestForecastAveragePremiumGenderFilter(t *testing.T) {
	f := sampleForecaster(t)

	rows, err := f.ForecastAveragePremium(2024, 2024, "base", "India", forecast.Filters{Gender: "Male"})
	if err != nil {
		t.Fatalf("ForecastAveragePremium: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	// Male policy counts in the sample book:
	// 5200+1900+1450+2700+980+1100+740 = 14070.
	if rows[0].TotalPolicies != 14070 {
		t.Errorf("total policies: got %d, want 14070", rows[0].TotalPolicies)
	}
}

func TestForecastAveragePremiumUnknownScenario(t *testing.T) {
	f := sampleForecaster(t)
	if _, err := f.ForecastAveragePremium(2024, 2026, "catastrophic", "India", forecast.Filters{}); !errors.Is(err, scenario.ErrUnknownScenario) {
		t.Errorf("got %v, want ErrUnknownScenario", err)
	}
}

func TestForecastAveragePremiumZeroPolicyBook(t *testing.T) {
	m, e, b, d := dataset.SampleTables()
	empty := &dataset.DemographicTable{
		HasGroup:         d.HasGroup,
		HasSmokingStatus: d.HasSmokingStatus,
		HasSumInsured:    d.HasSumInsured,
	}
	for _, rec := range d.Records {
		rec.PolicyCount = 0
		empty.Records = append(empty.Records, rec)
	}
	f, err := forecast.NewForecaster(forecast.Tables{Mortality: m, Economic: e, BasePremiums: b, Demographics: empty}, scenario.Builtin())
	if err != nil {
		t.Fatalf("NewForecaster: %v", err)
	}

	rows, err := f.ForecastAveragePremium(2024, 2026, "base", "India", forecast.Filters{})
	if err != nil {
		t.Fatalf("ForecastAveragePremium: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("a book with zero policies everywhere must produce no rows, got %d", len(rows))
	}
}

func TestCompareScenariosAll(t *testing.T) {
	f := sampleForecaster(t)

	rows := f.CompareScenarios(2024, 2026, "India", forecast.Filters{})
	if len(rows) != 9 {
		t.Fatalf("3 scenarios x 3 years: expected 9 rows, got %d", len(rows))
	}

	// Rows arrive grouped in registry order.
	wantOrder := []string{"base", "base", "base", "optimistic", "optimistic", "optimistic", "pessimistic", "pessimistic", "pessimistic"}
	for i, row := range rows {
		if row.Scenario != wantOrder[i] {
			t.Errorf("row %d: scenario %q, want %q", i, row.Scenario, wantOrder[i])
		}
	}

	// Pessimistic inflation outruns optimistic over the same horizon, so
	// the inflation-driven premium gap has the expected sign by 2026.
	var opt, pess float64
	for _, row := range rows {
		if row.Year != 2026 {
			continue
		}
		switch row.Scenario {
		case "optimistic":
			opt = row.AveragePremium
		case "pessimistic":
			pess = row.AveragePremium
		}
	}
	if pess <= opt {
		t.Errorf("2026: pessimistic premium %v should exceed optimistic %v", pess, opt)
	}
}

func TestCompareScenariosSkipsFailures(t *testing.T) {
	f := sampleForecaster(t)

	rows := f.CompareScenarios(2024, 2026, "India", forecast.Filters{}, "base", "bogus")
	if len(rows) != 3 {
		t.Fatalf("expected the base rows only, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Scenario != "base" {
			t.Errorf("unexpected scenario %q in resilient comparison", row.Scenario)
		}
	}

	all := f.CompareScenarios(2024, 2026, "India", forecast.Filters{}, "bogus")
	if all == nil {
		t.Fatal("total failure must return an empty slice, not nil")
	}
	if len(all) != 0 {
		t.Errorf("expected no rows, got %d", len(all))
	}
}
