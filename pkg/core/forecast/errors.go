package forecast

import "errors"

// Data errors are fatal for the call that hits them. ForecastAveragePremium
// propagates them unchanged; CompareScenarios logs and skips the scenario.
var (
	// ErrEmptyDataset: a required input table has zero rows.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrNoDataForCountry: the table has rows, but none for the
	// requested country.
	ErrNoDataForCountry = errors.New("no data for country")

	// ErrMissingEconomicData: the economic projection has no row for a
	// year the premium calculator needs.
	ErrMissingEconomicData = errors.New("missing economic data")

	// ErrInvalidMortalityProjection: the mortality projection handed to
	// the premium calculator is empty.
	ErrInvalidMortalityProjection = errors.New("invalid mortality projection")

	// ErrInvalidYearRange: the requested range is inverted or wider than
	// the engine is willing to project.
	ErrInvalidYearRange = errors.New("invalid year range")
)
