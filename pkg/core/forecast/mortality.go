package forecast

import (
	"fmt"
	"math"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/scenario"
)

// ProjectMortality extrapolates every demographic cell at the latest
// historical year forward (or backward) through [startYear, endYear].
//
// Per year: mortality compounds down by the scenario's annual improvement
// ((100-imp)/100)^yearsAhead, life expectancy rises linearly by
// yearsAhead*imp/100. yearsAhead may be zero or negative when the range
// starts at or before the latest historical year; the same formulas then
// give a retrospective extrapolation.
func (f *Forecaster) ProjectMortality(startYear, endYear int, sc scenario.Scenario, country string) ([]dataset.MortalityRecord, error) {
	if err := checkYearRange(startYear, endYear); err != nil {
		return nil, err
	}
	table := f.tables.Mortality
	if len(table.Records) == 0 {
		return nil, fmt.Errorf("mortality table: %w", ErrEmptyDataset)
	}

	latestYear := table.LatestYear()
	latest := rowsAt(table.Records, latestYear, country)
	if len(latest) == 0 {
		// The country may lag the global latest year; fall back to its
		// own most recent data.
		countryLatest := 0
		for _, r := range table.Records {
			if r.Country == country && r.Year > countryLatest {
				countryLatest = r.Year
			}
		}
		if countryLatest == 0 {
			return nil, fmt.Errorf("mortality table: %w: %q", ErrNoDataForCountry, country)
		}
		latestYear = countryLatest
		latest = rowsAt(table.Records, latestYear, country)
	}

	projections := make([]dataset.MortalityRecord, 0, (endYear-startYear+1)*len(latest))
	for year := startYear; year <= endYear; year++ {
		yearsAhead := year - latestYear
		improvementFactor := math.Pow((100-sc.MortalityImprovement)/100, float64(yearsAhead))
		lifeIncrease := float64(yearsAhead) * sc.MortalityImprovement / 100

		for _, row := range latest {
			projections = append(projections, dataset.MortalityRecord{
				Year:           year,
				Country:        country,
				Gender:         row.Gender,
				Age:            row.Age,
				SmokingStatus:  row.SmokingStatus,
				MortalityRate:  round4(row.MortalityRate * improvementFactor),
				LifeExpectancy: round2(row.LifeExpectancy + lifeIncrease),
			})
		}
	}
	return projections, nil
}

func rowsAt(records []dataset.MortalityRecord, year int, country string) []dataset.MortalityRecord {
	var out []dataset.MortalityRecord
	for _, r := range records {
		if r.Year == year && r.Country == country {
			out = append(out, r)
		}
	}
	return out
}
