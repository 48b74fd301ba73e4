package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	forecastapi "premiumcast/pkg/api/forecast"
	"premiumcast/pkg/core/dataset"
	"premiumcast/pkg/core/forecast"
	"premiumcast/pkg/core/scenario"
	"premiumcast/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Scenario registry, optionally re-parameterized from YAML
	cfgPath := os.Getenv("SCENARIOS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/scenarios.yaml"
	}
	registry, err := scenario.LoadFile(cfgPath)
	if err != nil {
		fmt.Printf("[WARNING] Failed to load scenario config: %v\n", err)
		fmt.Println("  Falling back to built-in scenarios")
		registry = scenario.Builtin()
	} else {
		fmt.Printf("[SCENARIO] Loaded %d scenarios from %s\n", registry.Count(), cfgPath)
	}

	// Input tables: Postgres when configured, sample data otherwise
	ctx := context.Background()
	var tables forecast.Tables
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[FATAL] Database init failed: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		tables, err = store.NewTableRepo().LoadAll(ctx)
		if err != nil {
			fmt.Printf("[FATAL] Failed to load input tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[STORE] Loaded %d mortality, %d economic, %d base premium, %d demographic rows\n",
			len(tables.Mortality.Records), len(tables.Economic.Records),
			len(tables.BasePremiums.Records), len(tables.Demographics.Records))
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

	h := forecastapi.NewHandler(forecaster)
	http.HandleFunc("/api/forecast", h.HandleForecast)
	http.HandleFunc("/api/forecast/compare", h.HandleCompare)
	http.HandleFunc("/api/forecast/scenarios", h.HandleScenarios)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/forecast")
	fmt.Println("  - POST /api/forecast/compare")
	fmt.Println("  - GET  /api/forecast/scenarios")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
