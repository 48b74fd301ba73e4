package forecast

import (
	"fmt"

	"premiumcast/pkg/core/dataset"
)

// unitSumInsured is the coverage amount one premium unit buys.
const unitSumInsured = 100000

// defaultUnitMultiplier scales per-unit premiums when the demographic
// table carries no sum_insured column (10 units = 1,000,000 of cover).
const defaultUnitMultiplier = 10.0

// ForecastRow is one year of aggregated output. AveragePremium is
// policy-count-weighted; AverageLifeExpectancy and AverageMortalityRate
// are deliberately plain means over the joined rows (population-health
// metrics, not exposure-weighted ones).
type ForecastRow struct {
	Year                  int      `json:"year"`
	Scenario              string   `json:"scenario"`
	AveragePremium        float64  `json:"average_premium"`
	AveragePremiumPerUnit float64  `json:"average_premium_per_unit"`
	TotalPolicies         int      `json:"total_policies"`
	InflationRate         float64  `json:"inflation_rate"`
	InterestRate          float64  `json:"interest_rate"`
	GDPGrowth             float64  `json:"gdp_growth"`
	AverageLifeExpectancy float64  `json:"average_life_expectancy"`
	AverageMortalityRate  float64  `json:"average_mortality_rate"`
	AverageSumInsured     *float64 `json:"average_sum_insured,omitempty"`
}

// Filters restrict both the priced cells and the demographic weights.
// Zero values mean no restriction. SumInsured selects a single coverage
// tier after the join (it is never a join key: per-unit rates do not
// vary by tier).
type Filters struct {
	Gender        string  `json:"gender,omitempty"`
	PolicyType    string  `json:"policy_type,omitempty"`
	Group         string  `json:"group,omitempty"`
	SmokingStatus string  `json:"smoking_status,omitempty"`
	SumInsured    float64 `json:"sum_insured,omitempty"`
	AgeMin        int     `json:"age_min,omitempty"`
	AgeMax        int     `json:"age_max,omitempty"`
}

func (fl Filters) matchPremium(p PremiumRecord) bool {
	if fl.Gender != "" && string(p.Gender) != fl.Gender {
		return false
	}
	if fl.PolicyType != "" && string(p.PolicyType) != fl.PolicyType {
		return false
	}
	if fl.Group != "" && string(p.Group) != fl.Group {
		return false
	}
	if fl.SmokingStatus != "" && string(p.SmokingStatus) != fl.SmokingStatus {
		return false
	}
	if fl.AgeMin != 0 && p.Age < fl.AgeMin {
		return false
	}
	if fl.AgeMax != 0 && p.Age > fl.AgeMax {
		return false
	}
	return true
}

func (fl Filters) matchDemographic(d dataset.DemographicRecord) bool {
	if fl.Gender != "" && string(d.Gender) != fl.Gender {
		return false
	}
	if fl.PolicyType != "" && string(d.PolicyType) != fl.PolicyType {
		return false
	}
	if fl.Group != "" && string(d.Group) != fl.Group {
		return false
	}
	if fl.SmokingStatus != "" && string(d.SmokingStatus) != fl.SmokingStatus {
		return false
	}
	if fl.AgeMin != 0 && d.Age < fl.AgeMin {
		return false
	}
	if fl.AgeMax != 0 && d.Age > fl.AgeMax {
		return false
	}
	return true
}

// joinKey is the composite key joining priced cells to demographic
// weights. Group and smoking participate only when both tables carry
// them; country is fixed upstream of the join.
type joinKey struct {
	gender     dataset.Gender
	age        int
	policyType dataset.PolicyType
	group      dataset.Group
	smoking    dataset.SmokingStatus
}

type joinOptions struct {
	joinGroup     bool
	joinSmoking   bool
	hasSumInsured bool
}

// ForecastAveragePremium projects, prices and aggregates one scenario
// over [startYear, endYear]. Years where no cells join or where the
// joined policy count is zero are omitted rather than emitted with an
// undefined mean.
func (f *Forecaster) ForecastAveragePremium(startYear, endYear int, scenarioKey, country string, filters Filters) ([]ForecastRow, error) {
	if err := checkYearRange(startYear, endYear); err != nil {
		return nil, err
	}
	sc, err := f.registry.Get(scenarioKey)
	if err != nil {
		return nil, err
	}

	mortProjection, err := f.ProjectMortality(startYear, endYear, sc, country)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenarioKey, err)
	}
	econProjection, err := f.ProjectEconomics(startYear, endYear, sc, country)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenarioKey, err)
	}

	// Filters apply to both sides before the join; otherwise the priced
	// population and the weighting population diverge.
	demographics := make([]dataset.DemographicRecord, 0, len(f.tables.Demographics.Records))
	for _, d := range f.tables.Demographics.Records {
		if d.Country == country && filters.matchDemographic(d) {
			demographics = append(demographics, d)
		}
	}

	opts := joinOptions{
		joinGroup:     f.tables.BasePremiums.HasGroup && f.tables.Demographics.HasGroup,
		joinSmoking:   f.tables.BasePremiums.HasSmokingStatus && f.tables.Demographics.HasSmokingStatus,
		hasSumInsured: f.tables.Demographics.HasSumInsured,
	}
	demoIndex := make(map[joinKey][]dataset.DemographicRecord, len(demographics))
	for _, d := range demographics {
		demoIndex[demographicJoinKey(d, opts)] = append(demoIndex[demographicJoinKey(d, opts)], d)
	}

	rows := make([]ForecastRow, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		premiums, err := f.CalculatePremiums(year, mortProjection, econProjection, country)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarioKey, err)
		}
		var filtered []PremiumRecord
		for _, p := range premiums {
			if filters.matchPremium(p) {
				filtered = append(filtered, p)
			}
		}

		agg, ok := aggregateYear(filtered, demoIndex, filters, opts)
		if !ok {
			continue
		}
		economic, _ := projectedEconomicAt(econProjection, year)

		row := ForecastRow{
			Year:                  year,
			Scenario:              scenarioKey,
			AveragePremium:        round2(agg.averagePremium),
			AveragePremiumPerUnit: round2(agg.averagePerUnit),
			TotalPolicies:         agg.totalPolicies,
			InflationRate:         economic.InflationRate,
			InterestRate:          economic.InterestRate,
			GDPGrowth:             economic.GDPGrowth,
			AverageLifeExpectancy: round1(agg.averageLife),
			AverageMortalityRate:  round4(agg.averageMortality),
		}
		if opts.hasSumInsured {
			avgSum := round2(agg.averageSumInsured)
			row.AverageSumInsured = &avgSum
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CompareScenarios runs ForecastAveragePremium for each scenario key
// (registry order when none given) and concatenates the tagged rows. A
// failing scenario is logged and skipped; if every scenario fails the
// result is empty but non-nil.
func (f *Forecaster) CompareScenarios(startYear, endYear int, country string, filters Filters, scenarioKeys ...string) []ForecastRow {
	if len(scenarioKeys) == 0 {
		scenarioKeys = f.registry.Keys()
	}
	all := make([]ForecastRow, 0)
	for _, key := range scenarioKeys {
		rows, err := f.ForecastAveragePremium(startYear, endYear, key, country, filters)
		if err != nil {
			fmt.Printf("[FORECAST] [WARNING] scenario %q skipped: %v\n", key, err)
			continue
		}
		all = append(all, rows...)
	}
	return all
}

type yearAggregate struct {
	averagePremium    float64
	averagePerUnit    float64
	totalPolicies     int
	averageLife       float64
	averageMortality  float64
	averageSumInsured float64
}

// aggregateYear joins one year's priced cells to the demographic index
// and folds the weighted and unweighted means. ok=false means the year
// carries no weight and must be dropped.
func aggregateYear(premiums []PremiumRecord, demoIndex map[joinKey][]dataset.DemographicRecord, filters Filters, opts joinOptions) (yearAggregate, bool) {
	var (
		weightedPremium float64
		weightedPerUnit float64
		weightedSum     float64
		totalPolicies   int
		lifeSum         float64
		mortalitySum    float64
		joinedRows      int
	)

	for _, p := range premiums {
		for _, d := range demoIndex[premiumJoinKey(p, opts)] {
			if filters.SumInsured != 0 && opts.hasSumInsured && d.SumInsured != filters.SumInsured {
				continue
			}
			actual := p.PremiumPerUnit * defaultUnitMultiplier
			if opts.hasSumInsured {
				actual = p.PremiumPerUnit * (d.SumInsured / unitSumInsured)
			}

			weightedPremium += actual * float64(d.PolicyCount)
			weightedPerUnit += p.PremiumPerUnit * float64(d.PolicyCount)
			weightedSum += d.SumInsured * float64(d.PolicyCount)
			totalPolicies += d.PolicyCount
			lifeSum += p.LifeExpectancy
			mortalitySum += p.MortalityRate
			joinedRows++
		}
	}

	if joinedRows == 0 || totalPolicies == 0 {
		return yearAggregate{}, false
	}
	return yearAggregate{
		averagePremium:    weightedPremium / float64(totalPolicies),
		averagePerUnit:    weightedPerUnit / float64(totalPolicies),
		totalPolicies:     totalPolicies,
		averageLife:       lifeSum / float64(joinedRows),
		averageMortality:  mortalitySum / float64(joinedRows),
		averageSumInsured: weightedSum / float64(totalPolicies),
	}, true
}

func premiumJoinKey(p PremiumRecord, opts joinOptions) joinKey {
	key := joinKey{gender: p.Gender, age: p.Age, policyType: p.PolicyType}
	if opts.joinGroup {
		key.group = p.Group
	}
	if opts.joinSmoking {
		key.smoking = p.SmokingStatus
	}
	return key
}

func demographicJoinKey(d dataset.DemographicRecord, opts joinOptions) joinKey {
	key := joinKey{gender: d.Gender, age: d.Age, policyType: d.PolicyType}
	if opts.joinGroup {
		key.group = d.Group
	}
	if opts.joinSmoking {
		key.smoking = d.SmokingStatus
	}
	return key
}
