package dataset_test

import (
	"strings"
	"testing"

	"premiumcast/pkg/core/dataset"
)

func TestSampleTablesValidate(t *testing.T) {
	m, e, b, d := dataset.SampleTables()
	if err := m.Validate(); err != nil {
		t.Errorf("mortality: %v", err)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("economic: %v", err)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("base premiums: %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("demographics: %v", err)
	}
}

func TestLatestYear(t *testing.T) {
	m, e, _, _ := dataset.SampleTables()
	if got := m.LatestYear(); got != 2023 {
		t.Errorf("mortality latest year: got %d, want 2023", got)
	}
	if got := e.LatestYear(); got != 2023 {
		t.Errorf("economic latest year: got %d, want 2023", got)
	}
}

func TestMortalityValidateRejectsBadRows(t *testing.T) {
	empty := &dataset.MortalityTable{}
	if err := empty.Validate(); err == nil {
		t.Error("empty table should fail validation")
	}

	negative := &dataset.MortalityTable{Records: []dataset.MortalityRecord{
		{Year: 2023, Country: "India", Gender: dataset.GenderMale, Age: 30, MortalityRate: -1, LifeExpectancy: 70},
	}}
	if err := negative.Validate(); err == nil {
		t.Error("negative mortality rate should fail validation")
	}

	row := dataset.MortalityRecord{Year: 2023, Country: "India", Gender: dataset.GenderMale, Age: 30, MortalityRate: 10, LifeExpectancy: 70}
	dup := &dataset.MortalityTable{Records: []dataset.MortalityRecord{row, row}}
	err := dup.Validate()
	if err == nil {
		t.Fatal("duplicate key should fail validation")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should name the duplicate: %v", err)
	}
}

func TestEconomicValidateRejectsDuplicateYear(t *testing.T) {
	table := &dataset.EconomicTable{Records: []dataset.EconomicRecord{
		{Year: 2023, Country: "India", InflationRate: 5.4, InterestRate: 6.5, GDPGrowth: 7.6},
		{Year: 2023, Country: "India", InflationRate: 5.5, InterestRate: 6.4, GDPGrowth: 7.5},
	}}
	if err := table.Validate(); err == nil {
		t.Error("two rows for the same country-year should fail validation")
	}
}

func TestBasePremiumValidateRejectsNonPositiveRate(t *testing.T) {
	table := &dataset.BasePremiumTable{Records: []dataset.BasePremiumRecord{
		{Country: "India", Gender: dataset.GenderMale, Age: 30, PolicyType: dataset.PolicyTermLife, PremiumPerUnit: 0},
	}}
	if err := table.Validate(); err == nil {
		t.Error("zero premium_per_unit should fail validation")
	}
}

func TestDemographicValidate(t *testing.T) {
	// Zero counts are legal; a cell can simply be empty.
	zero := &dataset.DemographicTable{Records: []dataset.DemographicRecord{
		{Country: "India", Gender: dataset.GenderMale, Age: 30, PolicyType: dataset.PolicyTermLife, PolicyCount: 0},
	}}
	if err := zero.Validate(); err != nil {
		t.Errorf("zero policy count should pass: %v", err)
	}

	negative := &dataset.DemographicTable{Records: []dataset.DemographicRecord{
		{Country: "India", Gender: dataset.GenderMale, Age: 30, PolicyType: dataset.PolicyTermLife, PolicyCount: -5},
	}}
	if err := negative.Validate(); err == nil {
		t.Error("negative policy count should fail validation")
	}

	// sum_insured is only constrained when the column exists.
	missingSum := &dataset.DemographicTable{HasSumInsured: true, Records: []dataset.DemographicRecord{
		{Country: "India", Gender: dataset.GenderMale, Age: 30, PolicyType: dataset.PolicyTermLife, PolicyCount: 10},
	}}
	if err := missingSum.Validate(); err == nil {
		t.Error("sum_insured column present but zero should fail validation")
	}
}
