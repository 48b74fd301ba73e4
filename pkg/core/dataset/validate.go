package dataset

import "fmt"

// Validation runs once at load time. The engine itself assumes validated
// tables and only re-checks the conditions that depend on the requested
// country or year range.

// Validate checks the mortality table for emptiness, negative values and
// duplicate key tuples (country, year, gender, age, smoking_status).
func (t *MortalityTable) Validate() error {
	if len(t.Records) == 0 {
		return fmt.Errorf("mortality table has no rows")
	}
	type key struct {
		country string
		year    int
		gender  Gender
		age     int
		smoking SmokingStatus
	}
	seen := make(map[key]bool, len(t.Records))
	for i, r := range t.Records {
		if r.Country == "" {
			return fmt.Errorf("mortality row %d: missing country", i)
		}
		if r.MortalityRate <= 0 {
			return fmt.Errorf("mortality row %d: mortality_rate must be > 0, got %v", i, r.MortalityRate)
		}
		if r.LifeExpectancy < 0 {
			return fmt.Errorf("mortality row %d: life_expectancy must be >= 0, got %v", i, r.LifeExpectancy)
		}
		k := key{r.Country, r.Year, r.Gender, r.Age, r.SmokingStatus}
		if seen[k] {
			return fmt.Errorf("mortality row %d: duplicate key %+v", i, k)
		}
		seen[k] = true
	}
	return nil
}

// Validate checks the economic table for emptiness and duplicate
// (country, year) tuples.
func (t *EconomicTable) Validate() error {
	if len(t.Records) == 0 {
		return fmt.Errorf("economic table has no rows")
	}
	type key struct {
		country string
		year    int
	}
	seen := make(map[key]bool, len(t.Records))
	for i, r := range t.Records {
		if r.Country == "" {
			return fmt.Errorf("economic row %d: missing country", i)
		}
		k := key{r.Country, r.Year}
		if seen[k] {
			return fmt.Errorf("economic row %d: duplicate key %+v", i, k)
		}
		seen[k] = true
	}
	return nil
}

// Validate checks the base-premium table.
func (t *BasePremiumTable) Validate() error {
	if len(t.Records) == 0 {
		return fmt.Errorf("base premium table has no rows")
	}
	type key struct {
		country    string
		group      Group
		gender     Gender
		age        int
		policyType PolicyType
		smoking    SmokingStatus
	}
	seen := make(map[key]bool, len(t.Records))
	for i, r := range t.Records {
		if r.Country == "" {
			return fmt.Errorf("base premium row %d: missing country", i)
		}
		if r.PremiumPerUnit <= 0 {
			return fmt.Errorf("base premium row %d: premium_per_unit must be > 0, got %v", i, r.PremiumPerUnit)
		}
		k := key{r.Country, r.Group, r.Gender, r.Age, r.PolicyType, r.SmokingStatus}
		if seen[k] {
			return fmt.Errorf("base premium row %d: duplicate key %+v", i, k)
		}
		seen[k] = true
	}
	return nil
}

// Validate checks the demographic table. PolicyCount zero is legal (a
// cell can be empty); negative counts are not.
func (t *DemographicTable) Validate() error {
	if len(t.Records) == 0 {
		return fmt.Errorf("demographic table has no rows")
	}
	for i, r := range t.Records {
		if r.Country == "" {
			return fmt.Errorf("demographic row %d: missing country", i)
		}
		if r.PolicyCount < 0 {
			return fmt.Errorf("demographic row %d: policy_count must be >= 0, got %d", i, r.PolicyCount)
		}
		if t.HasSumInsured && r.SumInsured <= 0 {
			return fmt.Errorf("demographic row %d: sum_insured must be > 0, got %v", i, r.SumInsured)
		}
	}
	return nil
}
