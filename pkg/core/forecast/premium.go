package forecast

import (
	"fmt"

	"premiumcast/pkg/core/dataset"
)

// PremiumRecord is one priced cell for one year: the adjusted
// premium-per-unit plus the mortality and economic context it was
// priced under.
type PremiumRecord struct {
	Year           int                   `json:"year"`
	Country        string                `json:"country"`
	Group          dataset.Group         `json:"group"`
	Gender         dataset.Gender        `json:"gender"`
	Age            int                   `json:"age"`
	PolicyType     dataset.PolicyType    `json:"policy_type"`
	SmokingStatus  dataset.SmokingStatus `json:"smoking_status,omitempty"`
	PremiumPerUnit float64               `json:"premium_per_unit"`
	MortalityRate  float64               `json:"mortality_rate"`
	LifeExpectancy float64               `json:"life_expectancy"`
	InflationRate  float64               `json:"inflation_rate"`
	InterestRate   float64               `json:"interest_rate"`
	GDPGrowth      float64               `json:"gdp_growth"`
}

// Pass-through dampeners: only a fraction of each raw indicator change
// reaches the annual premium.
const (
	mortalityPassThrough  = 0.3    // of the raw mortality ratio change
	termLongevityPerYear  = -0.005 // Term Life: longer life lowers annual risk
	wholeLongevityPerYear = 0.003  // Whole Life: longer exposure dominates
	interestSensitivity   = -0.12  // per 1pp interest change
	gdpSensitivity        = -0.05  // per 1pp GDP-growth change
)

// cellKey matches mortality rows to rate-table cells. Smoking is ""
// unless both tables carry the column.
type cellKey struct {
	age     int
	gender  dataset.Gender
	smoking dataset.SmokingStatus
}

// CalculatePremiums prices every base-premium cell for one target year.
// econProjection is the full multi-year economic projection; it supplies
// both the target year's indicators and the per-year inflation path for
// the cumulative-inflation factor.
//
// Cells with no mortality match in the projection are skipped silently:
// they represent combinations absent from the current demographic
// structure, not an error.
func (f *Forecaster) CalculatePremiums(year int, mortProjection []dataset.MortalityRecord, econProjection []dataset.EconomicRecord, country string) ([]PremiumRecord, error) {
	if len(mortProjection) == 0 {
		return nil, fmt.Errorf("%w for year %d", ErrInvalidMortalityProjection, year)
	}

	yearEconomic, ok := projectedEconomicAt(econProjection, year)
	if !ok {
		return nil, fmt.Errorf("%w for year %d", ErrMissingEconomicData, year)
	}

	history := f.tables.Economic
	if len(history.Records) == 0 {
		return nil, fmt.Errorf("economic table: %w", ErrEmptyDataset)
	}
	baseYear := history.LatestYear()
	baseEconomic := firstEconomicAt(history.Records, baseYear)

	// Compound (1 + i/100) over every projected year in [baseYear, year].
	// For year <= baseYear the factor stays exactly 1: no backward
	// deflation of the base rates.
	cumulativeInflation := 1.0
	if year > baseYear {
		for _, r := range econProjection {
			if r.Year >= baseYear && r.Year <= year {
				cumulativeInflation *= 1 + r.InflationRate/100
			}
		}
	}

	matchSmoking := f.tables.BasePremiums.HasSmokingStatus && f.tables.Mortality.HasSmokingStatus
	projected := mortalityByCell(mortProjection, year, matchSmoking)
	base := mortalityByCell(rowsAt(f.tables.Mortality.Records, f.tables.Mortality.LatestYear(), country), 0, matchSmoking)

	var premiums []PremiumRecord
	for _, cell := range f.tables.BasePremiums.Records {
		if cell.Country != country {
			continue
		}
		key := cellKey{age: cell.Age, gender: cell.Gender}
		if matchSmoking {
			key.smoking = cell.SmokingStatus
		}
		mortality, ok := projected[key]
		if !ok {
			continue
		}

		premium := cell.PremiumPerUnit * cumulativeInflation

		if baseMortality, ok := base[key]; ok {
			mortalityFactor := mortality.MortalityRate / baseMortality.MortalityRate
			premium *= 1 + (mortalityFactor-1)*mortalityPassThrough

			lifeChange := mortality.LifeExpectancy - baseMortality.LifeExpectancy
			perYear := wholeLongevityPerYear
			if cell.PolicyType == dataset.PolicyTermLife {
				perYear = termLongevityPerYear
			}
			premium *= 1 + perYear*lifeChange
		}

		premium *= 1 + interestSensitivity*(yearEconomic.InterestRate-baseEconomic.InterestRate)/100
		premium *= 1 + gdpSensitivity*(yearEconomic.GDPGrowth-baseEconomic.GDPGrowth)/100

		group := cell.Group
		if !f.tables.BasePremiums.HasGroup {
			group = dataset.GroupIndividual
		}
		premiums = append(premiums, PremiumRecord{
			Year:           year,
			Country:        country,
			Group:          group,
			Gender:         cell.Gender,
			Age:            cell.Age,
			PolicyType:     cell.PolicyType,
			SmokingStatus:  cell.SmokingStatus,
			PremiumPerUnit: round2(premium),
			MortalityRate:  mortality.MortalityRate,
			LifeExpectancy: mortality.LifeExpectancy,
			InflationRate:  yearEconomic.InflationRate,
			InterestRate:   yearEconomic.InterestRate,
			GDPGrowth:      yearEconomic.GDPGrowth,
		})
	}
	return premiums, nil
}

// mortalityByCell indexes rows by (age, gender[, smoking]). year 0 skips
// the year filter (used for the pre-filtered historical base rows).
func mortalityByCell(records []dataset.MortalityRecord, year int, matchSmoking bool) map[cellKey]dataset.MortalityRecord {
	index := make(map[cellKey]dataset.MortalityRecord, len(records))
	for _, r := range records {
		if year != 0 && r.Year != year {
			continue
		}
		key := cellKey{age: r.Age, gender: r.Gender}
		if matchSmoking {
			key.smoking = r.SmokingStatus
		}
		if _, exists := index[key]; !exists {
			index[key] = r
		}
	}
	return index
}

func projectedEconomicAt(records []dataset.EconomicRecord, year int) (dataset.EconomicRecord, bool) {
	for _, r := range records {
		if r.Year == year {
			return r, true
		}
	}
	return dataset.EconomicRecord{}, false
}

// firstEconomicAt mirrors the reference model: the base-year indicators
// are the first row at the base year regardless of country.
func firstEconomicAt(records []dataset.EconomicRecord, year int) dataset.EconomicRecord {
	for _, r := range records {
		if r.Year == year {
			return r
		}
	}
	return dataset.EconomicRecord{}
}
