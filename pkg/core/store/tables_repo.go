package store

import (
	"context"
	"fmt"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/forecast"
)

// TableRepo loads the four engine input tables from Postgres. It is the
// relational flavor of the data-loading collaborator; the engine itself
// never touches the database.
//
// Schema assumption (migrations managed elsewhere):
//
//	CREATE TABLE mortality (
//	  year INT, country TEXT, gender TEXT, age INT,
//	  smoking_status TEXT, mortality_rate FLOAT8, life_expectancy FLOAT8
//	);
//	CREATE TABLE economic_indicators (
//	  year INT, country TEXT,
//	  inflation_rate FLOAT8, interest_rate FLOAT8, gdp_growth FLOAT8
//	);
//	CREATE TABLE base_premiums (
//	  country TEXT, grp TEXT, gender TEXT, age INT, policy_type TEXT,
//	  smoking_status TEXT, premium_per_unit FLOAT8
//	);
//	CREATE TABLE demographics (
//	  country TEXT, grp TEXT, gender TEXT, age INT, policy_type TEXT,
//	  smoking_status TEXT, sum_insured FLOAT8, policy_count INT
//	);
//
// Optional columns (smoking_status, grp, sum_insured) may be NULL; the
// corresponding Has* table flag is set when any row carries a value.
type TableRepo struct{}

// NewTableRepo creates a new repository instance.
func NewTableRepo() *TableRepo {
	return &TableRepo{}
}

// LoadAll loads the full input set for a forecaster.
func (r *TableRepo) LoadAll(ctx context.Context) (forecast.Tables, error) {
	mortality, err := r.LoadMortality(ctx)
	if err != nil {
		return forecast.Tables{}, err
	}
	economic, err := r.LoadEconomic(ctx)
	if err != nil {
		return forecast.Tables{}, err
	}
	basePremiums, err := r.LoadBasePremiums(ctx)
	if err != nil {
		return forecast.Tables{}, err
	}
	demographics, err := r.LoadDemographics(ctx)
	if err != nil {
		return forecast.Tables{}, err
	}
	return forecast.Tables{
		Mortality:    mortality,
		Economic:     economic,
		BasePremiums: basePremiums,
		Demographics: demographics,
	}, nil
}

// LoadMortality loads and validates the mortality table.
func (r *TableRepo) LoadMortality(ctx context.Context) (*dataset.MortalityTable, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT year, country, gender, age, smoking_status, mortality_rate, life_expectancy
		FROM mortality
		ORDER BY year, country, gender, age, smoking_status`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mortality: %w", err)
	}
	defer rows.Close()

	table := &dataset.MortalityTable{}
	for rows.Next() {
		var rec dataset.MortalityRecord
		var gender string
		var smoking *string
		if err := rows.Scan(&rec.Year, &rec.Country, &gender, &rec.Age, &smoking, &rec.MortalityRate, &rec.LifeExpectancy); err != nil {
			return nil, fmt.Errorf("failed to scan mortality row: %w", err)
		}
		rec.Gender = dataset.Gender(gender)
		if smoking != nil {
			rec.SmokingStatus = dataset.SmokingStatus(*smoking)
			table.HasSmokingStatus = true
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mortality rows: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("mortality table invalid: %w", err)
	}
	return table, nil
}

// LoadEconomic loads and validates the economic-indicator table.
func (r *TableRepo) LoadEconomic(ctx context.Context) (*dataset.EconomicTable, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT year, country, inflation_rate, interest_rate, gdp_growth
		FROM economic_indicators
		ORDER BY year, country`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query economic_indicators: %w", err)
	}
	defer rows.Close()

	table := &dataset.EconomicTable{}
	for rows.Next() {
		var rec dataset.EconomicRecord
		if err := rows.Scan(&rec.Year, &rec.Country, &rec.InflationRate, &rec.InterestRate, &rec.GDPGrowth); err != nil {
			return nil, fmt.Errorf("failed to scan economic row: %w", err)
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read economic rows: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("economic table invalid: %w", err)
	}
	return table, nil
}

// LoadBasePremiums loads and validates the static rate table.
func (r *TableRepo) LoadBasePremiums(ctx context.Context) (*dataset.BasePremiumTable, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT country, grp, gender, age, policy_type, smoking_status, premium_per_unit
		FROM base_premiums
		ORDER BY country, gender, age, policy_type, smoking_status`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query base_premiums: %w", err)
	}
	defer rows.Close()

	table := &dataset.BasePremiumTable{}
	for rows.Next() {
		var rec dataset.BasePremiumRecord
		var gender, policyType string
		var group, smoking *string
		if err := rows.Scan(&rec.Country, &group, &gender, &rec.Age, &policyType, &smoking, &rec.PremiumPerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan base premium row: %w", err)
		}
		rec.Gender = dataset.Gender(gender)
		rec.PolicyType = dataset.PolicyType(policyType)
		if group != nil {
			rec.Group = dataset.Group(*group)
			table.HasGroup = true
		}
		if smoking != nil {
			rec.SmokingStatus = dataset.SmokingStatus(*smoking)
			table.HasSmokingStatus = true
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read base premium rows: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("base premium table invalid: %w", err)
	}
	return table, nil
}

// LoadDemographics loads and validates the population-weight table.
func (r *TableRepo) LoadDemographics(ctx context.Context) (*dataset.DemographicTable, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT country, grp, gender, age, policy_type, smoking_status, sum_insured, policy_count
		FROM demographics
		ORDER BY country, gender, age, policy_type, smoking_status, sum_insured`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query demographics: %w", err)
	}
	defer rows.Close()

	table := &dataset.DemographicTable{}
	for rows.Next() {
		var rec dataset.DemographicRecord
		var gender, policyType string
		var group, smoking *string
		var sumInsured *float64
		if err := rows.Scan(&rec.Country, &group, &gender, &rec.Age, &policyType, &smoking, &sumInsured, &rec.PolicyCount); err != nil {
			return nil, fmt.Errorf("failed to scan demographic row: %w", err)
		}
		rec.Gender = dataset.Gender(gender)
		rec.PolicyType = dataset.PolicyType(policyType)
		if group != nil {
			rec.Group = dataset.Group(*group)
			table.HasGroup = true
		}
		if smoking != nil {
			rec.SmokingStatus = dataset.SmokingStatus(*smoking)
			table.HasSmokingStatus = true
		}
		if sumInsured != nil {
			rec.SumInsured = *sumInsured
			table.HasSumInsured = true
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read demographic rows: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("demographic table invalid: %w", err)
	}
	return table, nil
}
