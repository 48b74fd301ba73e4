package dataset

// SampleTables returns a small, deterministic India dataset used by the
// CLI when no database is configured and by the engine tests. Figures
// are plausible but illustrative, not a certified mortality basis.
func SampleTables() (*MortalityTable, *EconomicTable, *BasePremiumTable, *DemographicTable) {
	mortality := &MortalityTable{
		HasSmokingStatus: true,
		Records: []MortalityRecord{
			{Year: 2022, Country: "India", Gender: GenderMale, Age: 30, SmokingStatus: NonSmoker, MortalityRate: 1.32, LifeExpectancy: 70.1},
			{Year: 2022, Country: "India", Gender: GenderMale, Age: 30, SmokingStatus: Smoker, MortalityRate: 2.25, LifeExpectancy: 66.4},
			{Year: 2022, Country: "India", Gender: GenderFemale, Age: 30, SmokingStatus: NonSmoker, MortalityRate: 0.98, LifeExpectancy: 72.8},
			{Year: 2022, Country: "India", Gender: GenderFemale, Age: 30, SmokingStatus: Smoker, MortalityRate: 1.71, LifeExpectancy: 69.0},
			{Year: 2022, Country: "India", Gender: GenderMale, Age: 45, SmokingStatus: NonSmoker, MortalityRate: 3.64, LifeExpectancy: 71.2},
			{Year: 2022, Country: "India", Gender: GenderMale, Age: 45, SmokingStatus: Smoker, MortalityRate: 6.31, LifeExpectancy: 67.3},
			{Year: 2022, Country: "India", Gender: GenderFemale, Age: 45, SmokingStatus: NonSmoker, MortalityRate: 2.69, LifeExpectancy: 73.9},
			{Year: 2022, Country: "India", Gender: GenderFemale, Age: 45, SmokingStatus: Smoker, MortalityRate: 4.56, LifeExpectancy: 70.1},

			{Year: 2023, Country: "India", Gender: GenderMale, Age: 30, SmokingStatus: NonSmoker, MortalityRate: 1.29, LifeExpectancy: 70.3},
			{Year: 2023, Country: "India", Gender: GenderMale, Age: 30, SmokingStatus: Smoker, MortalityRate: 2.21, LifeExpectancy: 66.6},
			{Year: 2023, Country: "India", Gender: GenderFemale, Age: 30, SmokingStatus: NonSmoker, MortalityRate: 0.96, LifeExpectancy: 73.0},
			{Year: 2023, Country: "India", Gender: GenderFemale, Age: 30, SmokingStatus: Smoker, MortalityRate: 1.68, LifeExpectancy: 69.2},
			{Year: 2023, Country: "India", Gender: GenderMale, Age: 45, SmokingStatus: NonSmoker, MortalityRate: 3.57, LifeExpectancy: 71.4},
			{Year: 2023, Country: "India", Gender: GenderMale, Age: 45, SmokingStatus: Smoker, MortalityRate: 6.19, LifeExpectancy: 67.5},
			{Year: 2023, Country: "India", Gender: GenderFemale, Age: 45, SmokingStatus: NonSmoker, MortalityRate: 2.64, LifeExpectancy: 74.1},
			{Year: 2023, Country: "India", Gender: GenderFemale, Age: 45, SmokingStatus: Smoker, MortalityRate: 4.48, LifeExpectancy: 70.3},
		},
	}

	economic := &EconomicTable{
		Records: []EconomicRecord{
			{Year: 2021, Country: "India", InflationRate: 5.1, InterestRate: 6.0, GDPGrowth: 8.9},
			{Year: 2022, Country: "India", InflationRate: 6.7, InterestRate: 6.25, GDPGrowth: 7.2},
			{Year: 2023, Country: "India", InflationRate: 5.4, InterestRate: 6.5, GDPGrowth: 7.6},
		},
	}

	basePremiums := &BasePremiumTable{
		HasGroup:         true,
		HasSmokingStatus: true,
		Records: []BasePremiumRecord{
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, PremiumPerUnit: 48},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: Smoker, PremiumPerUnit: 79},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, PremiumPerUnit: 40},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: Smoker, PremiumPerUnit: 65},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, PremiumPerUnit: 126},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: Smoker, PremiumPerUnit: 214},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, PremiumPerUnit: 96},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: Smoker, PremiumPerUnit: 160},

			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, PremiumPerUnit: 310},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: Smoker, PremiumPerUnit: 452},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, PremiumPerUnit: 272},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: Smoker, PremiumPerUnit: 395},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, PremiumPerUnit: 640},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: Smoker, PremiumPerUnit: 905},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, PremiumPerUnit: 554},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: Smoker, PremiumPerUnit: 781},
		},
	}

	demographics := &DemographicTable{
		HasGroup:         true,
		HasSmokingStatus: true,
		HasSumInsured:    true,
		Records: []DemographicRecord{
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, SumInsured: 1000000, PolicyCount: 5200},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, SumInsured: 2500000, PolicyCount: 1900},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: Smoker, SumInsured: 1000000, PolicyCount: 1450},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, SumInsured: 1000000, PolicyCount: 3800},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyTermLife, SmokingStatus: Smoker, SumInsured: 1000000, PolicyCount: 620},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, SumInsured: 2500000, PolicyCount: 2700},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: Smoker, SumInsured: 1000000, PolicyCount: 980},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyTermLife, SmokingStatus: NonSmoker, SumInsured: 1000000, PolicyCount: 2100},

			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, SumInsured: 1000000, PolicyCount: 1100},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 30, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, SumInsured: 1000000, PolicyCount: 860},
			{Country: "India", Group: GroupIndividual, Gender: GenderMale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: NonSmoker, SumInsured: 2500000, PolicyCount: 740},
			{Country: "India", Group: GroupIndividual, Gender: GenderFemale, Age: 45, PolicyType: PolicyWholeLife, SmokingStatus: Smoker, SumInsured: 1000000, PolicyCount: 190},
		},
	}

	return mortality, economic, basePremiums, demographics
}
