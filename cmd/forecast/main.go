package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/forecast"
	"premiumcast/pkg/core/scenario"
	"premiumcast/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	currentYear := time.Now().Year()
	start := flag.Int("start", currentYear+1, "first forecast year")
	end := flag.Int("end", currentYear+10, "last forecast year")
	scenarioKey := flag.String("scenario", "base", "scenario key")
	country := flag.String("country", "India", "country")
	compare := flag.Bool("compare", false, "run every scenario and compare")
	gender := flag.String("gender", "", "filter: gender")
	policyType := flag.String("policy-type", "", "filter: policy type")
	flag.Parse()

	godotenv.Load()

	cfgPath := os.Getenv("SCENARIOS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/scenarios.yaml"
	}
	registry, err := scenario.LoadFile(cfgPath)
	if err != nil {
		registry = scenario.Builtin()
	}

	ctx := context.Background()
	var tables forecast.Tables
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[FATAL] Database init failed: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		loaded, err := store.NewTableRepo().LoadAll(ctx)
		if err != nil {
			fmt.Printf("[FATAL] Failed to load input tables: %v\n", err)
			os.Exit(1)
		}
		tables = loaded
	} else {
		fmt.Println("[STORE] DATABASE_URL not set, using built-in sample tables")
		m, e, b, d := dataset.SampleTables()
		tables = forecast.Tables{Mortality: m, Economic: e, BasePremiums: b, Demographics: d}
	}

	forecaster, err := forecast.NewForecaster(tables, registry)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	filters := forecast.Filters{Gender: *gender, PolicyType: *policyType}

	var rows []forecast.ForecastRow
	if *compare {
		rows = forecaster.CompareScenarios(*start, *end, *country, filters)
	} else {
		rows, err = forecaster.ForecastAveragePremium(*start, *end, *scenarioKey, *country, filters)
		if err != nil {
			fmt.Printf("[FATAL] No forecast available: %v\n", err)
			os.Exit(1)
		}
	}

	if len(rows) == 0 {
		fmt.Println("No forecast rows produced for these inputs.")
		return
	}
	printRows(rows)
}

func printRows(rows []forecast.ForecastRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tSCENARIO\tAVG PREMIUM\tPER UNIT\tPOLICIES\tINFLATION\tINTEREST\tGDP\tLIFE EXP\tMORTALITY")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%d\t%.2f\t%.2f\t%.2f\t%.1f\t%.4f\n",
			r.Year, r.Scenario, r.AveragePremium, r.AveragePremiumPerUnit, r.TotalPolicies,
			r.InflationRate, r.InterestRate, r.GDPGrowth, r.AverageLifeExpectancy, r.AverageMortalityRate)
	}
	w.Flush()
}
