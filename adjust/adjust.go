// Package adjust applies bounded rule-based percentage adjustments to raw
// demand forecasts.
package adjust

import (
	"math"

	"github.com/sartorproj/chesscast/stats"
)

// Rule identifies which adjustment rule fired. Rules are evaluated in a
// fixed priority order and exactly one fires per call.
type Rule int

const (
	// RuleVolatilityBuffer reduces the forecast as a safety buffer against
	// noisy demand (high coefficient of variation).
	RuleVolatilityBuffer Rule = iota
	// RuleTrendAcceleration increases the forecast for lead-time
	// positioning when a strong upward trend is confirmed by momentum.
	RuleTrendAcceleration
	// RuleTrendDecline decreases the forecast when a strong downward trend
	// is confirmed by momentum.
	RuleTrendDecline
	// RuleSteady leaves the forecast untouched: mild trend, low volatility.
	RuleSteady
	// RuleMomentumConflict nudges the forecast slightly toward momentum
	// when trend and momentum disagree (recency bias).
	RuleMomentumConflict
)

var ruleNames = map[Rule]string{
	RuleVolatilityBuffer:  "volatility-buffer",
	RuleTrendAcceleration: "trend-acceleration",
	RuleTrendDecline:      "trend-decline",
	RuleSteady:            "steady",
	RuleMomentumConflict:  "momentum-conflict",
}

// String returns the rule name.
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Config holds the rule thresholds and adjustment caps. The numeric values
// are tunable parameters, not fixed business rules.
type Config struct {
	HighVolatility float64 // CV above this triggers the volatility buffer (default: 0.5)
	TrendHigh      float64 // Relative trend per period counted as strong (default: 0.02)

	VolatilityCap float64 // Max reduction for the volatility buffer, percent (default: 10)
	TrendCap      float64 // Max adjustment for trend rules, percent (default: 20)
	ConflictCap   float64 // Max adjustment on conflicting signals, percent (default: 5)

	TrendGain    float64 // Scales relative trend into a trend adjustment (default: 4)
	ConflictGain float64 // Scales momentum into a conflict adjustment (default: 25)
}

// DefaultConfig returns the default adjustment configuration.
func DefaultConfig() *Config {
	return &Config{
		HighVolatility: 0.5,
		TrendHigh:      0.02,
		VolatilityCap:  10,
		TrendCap:       20,
		ConflictCap:    5,
		TrendGain:      4,
		ConflictGain:   25,
	}
}

// Rule confidence levels, halved when the forecast is degraded.
var ruleConfidence = map[Rule]float64{
	RuleVolatilityBuffer:  0.70,
	RuleTrendAcceleration: 0.80,
	RuleTrendDecline:      0.75,
	RuleSteady:            0.90,
	RuleMomentumConflict:  0.50,
}

// Result holds the outcome of an adjustment. RawForecast is never modified;
// AdjustedForecast is derived alongside it so both remain inspectable.
type Result struct {
	RawForecast      []float64
	AdjustedForecast []float64
	Pct              float64 // Adjustment percentage, clamped to [-20, +20]
	Rule             Rule
	Confidence       float64
	Degraded         bool
}

// Recommend applies the first matching adjustment rule to the raw forecast.
// The rules, in priority order:
//
//  1. High volatility: reduce by up to VolatilityCap.
//  2. Strong positive trend with positive momentum: increase by up to TrendCap.
//  3. Strong negative trend with negative momentum: decrease by up to TrendCap.
//  4. Mild trend: no adjustment.
//  5. Conflicting signals: small adjustment toward momentum, capped at ConflictCap.
//
// The adjustment percentage is always clamped to [-TrendCap, +TrendCap], and
// AdjustedForecast[i] = RawForecast[i] * (1 + Pct/100) exactly.
func Recommend(st *stats.SeriesStatistics, rawForecast []float64, cfg *Config) *Result {
	return recommend(st, rawForecast, cfg, false)
}

// RecommendDegraded is Recommend for a degraded (fallback) forecast; the
// rule confidence is halved.
func RecommendDegraded(st *stats.SeriesStatistics, rawForecast []float64, cfg *Config) *Result {
	return recommend(st, rawForecast, cfg, true)
}

func recommend(st *stats.SeriesStatistics, rawForecast []float64, cfg *Config, degraded bool) *Result {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	cv := st.CoefficientOfVariation
	relTrend := st.RelTrend()
	momentum := st.Momentum

	var pct float64
	var rule Rule

	switch {
	case cv > cfg.HighVolatility:
		// Reduction grows with how far volatility exceeds the threshold
		excess := cv/cfg.HighVolatility - 1
		pct = -math.Min(cfg.VolatilityCap, cfg.VolatilityCap*excess)
		rule = RuleVolatilityBuffer

	case relTrend > cfg.TrendHigh && momentum > 0:
		pct = math.Min(cfg.TrendCap, relTrend*100*cfg.TrendGain)
		rule = RuleTrendAcceleration

	case relTrend < -cfg.TrendHigh && momentum < 0:
		pct = math.Max(-cfg.TrendCap, relTrend*100*cfg.TrendGain)
		rule = RuleTrendDecline

	case math.Abs(relTrend) <= cfg.TrendHigh:
		pct = 0
		rule = RuleSteady

	default:
		// Strong trend with opposing (or flat) momentum: follow momentum
		pct = clamp(momentum*cfg.ConflictGain, -cfg.ConflictCap, cfg.ConflictCap)
		rule = RuleMomentumConflict
	}

	pct = clamp(pct, -cfg.TrendCap, cfg.TrendCap)

	raw := make([]float64, len(rawForecast))
	copy(raw, rawForecast)

	adjusted := make([]float64, len(raw))
	for i, v := range raw {
		adjusted[i] = v * (1 + pct/100)
	}

	confidence := ruleConfidence[rule]
	if degraded {
		confidence /= 2
	}

	return &Result{
		RawForecast:      raw,
		AdjustedForecast: adjusted,
		Pct:              pct,
		Rule:             rule,
		Confidence:       confidence,
		Degraded:         degraded,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
