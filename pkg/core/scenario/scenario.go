package scenario

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScenario is returned when a key is not in the registry.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario bundles the macro/mortality assumptions one projection runs
// under. InflationBase and InterestBase are the long-run targets the
// economic projector converges towards; MortalityImprovement is the
// annual reduction (%) applied to mortality rates.
type Scenario struct {
	Name                 string  `yaml:"name" json:"name"`
	InflationBase        float64 `yaml:"inflation_base" json:"inflation_base"`
	InterestBase         float64 `yaml:"interest_base" json:"interest_base"`
	MortalityImprovement float64 `yaml:"mortality_improvement" json:"mortality_improvement"`
	Description          string  `yaml:"description" json:"description"`
}

// canonicalOrder is the presentation order for the standard scenarios.
// Extra scenarios from a config file sort alphabetically after these.
var canonicalOrder = []string{"base", "optimistic", "pessimistic"}

// Registry is a read-only set of named scenarios, fixed at process start.
type Registry struct {
	scenarios map[string]Scenario
	keys      []string
}

// India-calibrated standard assumptions.
func builtinScenarios() map[string]Scenario {
	return map[string]Scenario{
		"base": {
			Name:                 "Base Case",
			InflationBase:        5.0,
			InterestBase:         6.5,
			MortalityImprovement: 1.5,
			Description:          "Moderate inflation, stable interest rates, normal mortality improvements",
		},
		"optimistic": {
			Name:                 "Optimistic",
			InflationBase:        4.0,
			InterestBase:         7.5,
			MortalityImprovement: 2.0,
			Description:          "Low inflation, higher interest rates, faster mortality improvements",
		},
		"pessimistic": {
			Name:                 "Pessimistic",
			InflationBase:        6.0,
			InterestBase:         5.5,
			MortalityImprovement: 1.0,
			Description:          "High inflation, lower interest rates, slower mortality improvements",
		},
	}
}

// Builtin returns a registry with the three standard scenarios.
func Builtin() *Registry {
	return newRegistry(builtinScenarios())
}

func newRegistry(scenarios map[string]Scenario) *Registry {
	keys := make([]string, 0, len(scenarios))
	for _, k := range canonicalOrder {
		if _, ok := scenarios[k]; ok {
			keys = append(keys, k)
		}
	}
	var extras []string
	for k := range scenarios {
		if !isCanonical(k) {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	keys = append(keys, extras...)
	return &Registry{scenarios: scenarios, keys: keys}
}

func isCanonical(key string) bool {
	for _, k := range canonicalOrder {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the scenario for a key, or ErrUnknownScenario.
func (r *Registry) Get(key string) (Scenario, error) {
	sc, ok := r.scenarios[key]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScenario, key, r.keys)
	}
	return sc, nil
}

// Keys returns the scenario keys in presentation order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Count returns the number of registered scenarios.
func (r *Registry) Count() int {
	return len(r.scenarios)
}
