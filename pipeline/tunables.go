package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/chesscast/adjust"
	"github.com/sartorproj/chesscast/forecast"
	"github.com/sartorproj/chesscast/motif"
)

// tunablesFile is the YAML schema for pipeline tunables. All fields are
// optional; absent fields keep their package defaults.
type tunablesFile struct {
	Forecast struct {
		MaxP      *int    `yaml:"max_p"`
		MaxD      *int    `yaml:"max_d"`
		MaxQ      *int    `yaml:"max_q"`
		Horizon   *int    `yaml:"horizon"`
		Criterion *string `yaml:"criterion"`
	} `yaml:"forecast"`

	Adjust struct {
		HighVolatility *float64 `yaml:"high_volatility"`
		TrendHigh      *float64 `yaml:"trend_high"`
		VolatilityCap  *float64 `yaml:"volatility_cap"`
		TrendCap       *float64 `yaml:"trend_cap"`
		ConflictCap    *float64 `yaml:"conflict_cap"`
		TrendGain      *float64 `yaml:"trend_gain"`
		ConflictGain   *float64 `yaml:"conflict_gain"`
	} `yaml:"adjust"`

	Motif struct {
		HighVolatility     *float64 `yaml:"high_volatility"`
		ModerateVolatility *float64 `yaml:"moderate_volatility"`
		LowVolatility      *float64 `yaml:"low_volatility"`
		TrendHigh          *float64 `yaml:"trend_high"`
		TrendLow           *float64 `yaml:"trend_low"`
		MomentumLow        *float64 `yaml:"momentum_low"`
	} `yaml:"motif"`
}

// LoadConfig reads pipeline tunables from a YAML file. Fields not present in
// the file keep their defaults:
//
//	forecast:
//	  max_p: 2
//	  horizon: 12
//	adjust:
//	  high_volatility: 0.6
//	motif:
//	  momentum_low: 0.05
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML tunables on top of the package defaults.
func ParseConfig(data []byte) (*Config, error) {
	var file tunablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	fcfg := forecast.DefaultConfig()
	setInt(&fcfg.MaxP, file.Forecast.MaxP)
	setInt(&fcfg.MaxD, file.Forecast.MaxD)
	setInt(&fcfg.MaxQ, file.Forecast.MaxQ)
	setInt(&fcfg.Horizon, file.Forecast.Horizon)
	if file.Forecast.Criterion != nil {
		fcfg.Criterion = *file.Forecast.Criterion
	}

	acfg := adjust.DefaultConfig()
	setFloat(&acfg.HighVolatility, file.Adjust.HighVolatility)
	setFloat(&acfg.TrendHigh, file.Adjust.TrendHigh)
	setFloat(&acfg.VolatilityCap, file.Adjust.VolatilityCap)
	setFloat(&acfg.TrendCap, file.Adjust.TrendCap)
	setFloat(&acfg.ConflictCap, file.Adjust.ConflictCap)
	setFloat(&acfg.TrendGain, file.Adjust.TrendGain)
	setFloat(&acfg.ConflictGain, file.Adjust.ConflictGain)

	mcfg := motif.DefaultConfig()
	setFloat(&mcfg.HighVolatility, file.Motif.HighVolatility)
	setFloat(&mcfg.ModerateVolatility, file.Motif.ModerateVolatility)
	setFloat(&mcfg.LowVolatility, file.Motif.LowVolatility)
	setFloat(&mcfg.TrendHigh, file.Motif.TrendHigh)
	setFloat(&mcfg.TrendLow, file.Motif.TrendLow)
	setFloat(&mcfg.MomentumLow, file.Motif.MomentumLow)

	return &Config{Forecast: fcfg, Adjust: acfg, Motif: mcfg}, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
