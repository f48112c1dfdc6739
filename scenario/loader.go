package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/chesscast/timeseries"
)

// fileConfig is the YAML schema for external scenario files.
type fileConfig struct {
	Scenarios []scenarioConfig `yaml:"scenarios"`
}

type scenarioConfig struct {
	ID      string    `yaml:"id"`
	Product string    `yaml:"product"`
	Context string    `yaml:"context"`
	Demand  []float64 `yaml:"demand"`
}

// LoadFile loads scenario definitions from a YAML file:
//
//	scenarios:
//	  - id: S01
//	    product: Winter Jackets
//	    context: Seasonal apparel entering peak demand
//	    demand: [100, 102, 105, 108, 112, 118]
func LoadFile(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates YAML scenario definitions.
func Parse(data []byte) ([]*Scenario, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file defines no scenarios")
	}

	scenarios := make([]*Scenario, 0, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		if err := validate(sc); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}

		id := sc.ID
		if id == "" {
			id = fmt.Sprintf("S%02d", i+1)
		}

		series := timeseries.New(sc.Demand)
		series.Name = sc.Product

		scenarios = append(scenarios, &Scenario{
			ID:      id,
			Product: sc.Product,
			Context: sc.Context,
			Series:  series,
		})
	}

	return scenarios, nil
}

func validate(sc scenarioConfig) error {
	if sc.Product == "" {
		return fmt.Errorf("product must not be empty")
	}
	if len(sc.Demand) == 0 {
		return fmt.Errorf("demand series must not be empty")
	}
	return nil
}
