package dataset

// Gender classifies the insured person.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// PolicyType distinguishes the two product families. The longevity
// adjustment in the premium calculator depends on this split.
type PolicyType string

const (
	PolicyTermLife  PolicyType = "Term Life"
	PolicyWholeLife PolicyType = "Whole Life"
)

// Group is the commercial grouping a policy is sold under.
type Group string

const (
	GroupIndividual Group = "Individual"
	GroupFamily     Group = "Family"
	GroupCorporate  Group = "Corporate"
)

// SmokingStatus is an optional rating attribute. Tables that never
// captured it leave it empty and set HasSmokingStatus=false.
type SmokingStatus string

const (
	Smoker    SmokingStatus = "Smoker"
	NonSmoker SmokingStatus = "Non-Smoker"
)

// MortalityRecord is one historical (or projected) mortality observation
// for a demographic cell. MortalityRate is deaths per 1000 lives.
type MortalityRecord struct {
	Year           int           `json:"year"`
	Country        string        `json:"country"`
	Gender         Gender        `json:"gender"`
	Age            int           `json:"age"`
	SmokingStatus  SmokingStatus `json:"smoking_status,omitempty"`
	MortalityRate  float64       `json:"mortality_rate"`
	LifeExpectancy float64       `json:"life_expectancy"`
}

// EconomicRecord is one year of macro indicators for a country.
// All three values are percentages.
type EconomicRecord struct {
	Year          int     `json:"year"`
	Country       string  `json:"country"`
	InflationRate float64 `json:"inflation_rate"`
	InterestRate  float64 `json:"interest_rate"`
	GDPGrowth     float64 `json:"gdp_growth"`
}

// BasePremiumRecord is a static rate-table row: the premium charged per
// unit of coverage (one unit = 100,000 of sum insured) for a cell.
type BasePremiumRecord struct {
	Country        string        `json:"country"`
	Group          Group         `json:"group,omitempty"`
	Gender         Gender        `json:"gender"`
	Age            int           `json:"age"`
	PolicyType     PolicyType    `json:"policy_type"`
	SmokingStatus  SmokingStatus `json:"smoking_status,omitempty"`
	PremiumPerUnit float64       `json:"premium_per_unit"`
}

// DemographicRecord is a population weight: how many in-force policies
// exist for a fully specified cell at one coverage tier. SumInsured is a
// discrete tier, not a continuous amount.
type DemographicRecord struct {
	Country       string        `json:"country"`
	Group         Group         `json:"group,omitempty"`
	Gender        Gender        `json:"gender"`
	Age           int           `json:"age"`
	PolicyType    PolicyType    `json:"policy_type"`
	SmokingStatus SmokingStatus `json:"smoking_status,omitempty"`
	SumInsured    float64       `json:"sum_insured,omitempty"`
	PolicyCount   int           `json:"policy_count"`
}

// MortalityTable holds historical mortality facts. Records are never
// mutated after load; projections derive new records.
type MortalityTable struct {
	Records          []MortalityRecord
	HasSmokingStatus bool
}

// EconomicTable holds historical macro indicators.
type EconomicTable struct {
	Records []EconomicRecord
}

// BasePremiumTable holds the static rate table. The Has* flags record
// which optional columns the source carried; joins only include an
// attribute when both sides carry it.
type BasePremiumTable struct {
	Records          []BasePremiumRecord
	HasGroup         bool
	HasSmokingStatus bool
}

// DemographicTable holds the population-weight table.
type DemographicTable struct {
	Records          []DemographicRecord
	HasGroup         bool
	HasSmokingStatus bool
	HasSumInsured    bool
}

// LatestYear returns the maximum year present, or 0 for an empty table.
func (t *MortalityTable) LatestYear() int {
	latest := 0
	for _, r := range t.Records {
		if r.Year > latest {
			latest = r.Year
		}
	}
	return latest
}

// LatestYear returns the maximum year present, or 0 for an empty table.
func (t *EconomicTable) LatestYear() int {
	latest := 0
	for _, r := range t.Records {
		if r.Year > latest {
			latest = r.Year
		}
	}
	return latest
}
