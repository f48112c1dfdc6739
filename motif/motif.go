// Package motif classifies forecast adjustments into chess-strategy motifs.
package motif

import (
	"math"

	"github.com/sartorproj/chesscast/adjust"
	"github.com/sartorproj/chesscast/stats"
)

// Label is one of the 8 chess-strategy motifs. The taxonomy is closed and
// every classification returns exactly one label.
type Label string

const (
	// Tempo: gaining time on the opponent; the forecast is raised to stay
	// ahead of accelerating demand.
	Tempo Label = "TEMPO"
	// Fork: one move creating two threats; the adjustment serves both a
	// safety and a trend-capture purpose.
	Fork Label = "FORK"
	// Prophylaxis: a preventive move against future threats; the forecast
	// is trimmed as a buffer against volatility.
	Prophylaxis Label = "PROPHYLAXIS"
	// Zugzwang: every move worsens the position; signals are directionless
	// under high volatility.
	Zugzwang Label = "ZUGZWANG"
	// Development: improving piece placement without immediate action; a
	// trend exists but no adjustment is taken yet.
	Development Label = "DEVELOPMENT"
	// Exchange: giving up material now to avoid a larger loss later; the
	// forecast is cut on a confirmed decline.
	Exchange Label = "EXCHANGE"
	// Material: plain material counting; the adjustment is a pure quantity
	// optimization under low volatility.
	Material Label = "MATERIAL"
	// Position: flexible improvement of the overall position; the default
	// when no other motif decisively matches.
	Position Label = "POSITION"
)

// Labels lists all motifs in classification priority order.
var Labels = []Label{Zugzwang, Prophylaxis, Tempo, Exchange, Fork, Development, Material, Position}

// Config holds classification thresholds. These mirror the adjustment-rule
// thresholds but are tunable independently.
type Config struct {
	HighVolatility     float64 // CV counted as high (default: 0.5)
	ModerateVolatility float64 // CV counted as at least moderate (default: 0.25)
	LowVolatility      float64 // CV counted as low (default: 0.15)
	TrendHigh          float64 // Relative trend per period counted as strong (default: 0.02)
	TrendLow           float64 // Relative trend below this counts as no trend (default: 0.005)
	MomentumLow        float64 // Momentum magnitude counted as near zero (default: 0.1)
}

// DefaultConfig returns the default classification thresholds.
func DefaultConfig() *Config {
	return &Config{
		HighVolatility:     0.5,
		ModerateVolatility: 0.25,
		LowVolatility:      0.15,
		TrendHigh:          0.02,
		TrendLow:           0.005,
		MomentumLow:        0.1,
	}
}

// Classifier maps (statistics, adjustment) pairs to motif labels using an
// explicit ordered rule table; the first matching predicate wins and the
// final catch-all guarantees totality.
type Classifier struct {
	cfg   *Config
	rules []classifierRule
}

type classifierRule struct {
	label Label
	match func(f features) bool
}

// features are the numeric signals the predicates see.
type features struct {
	cv       float64
	relTrend float64
	momentum float64
	pct      float64
}

// NewClassifier creates a classifier with the given thresholds (nil for
// defaults). Predicates may overlap; the order below is load-bearing.
func NewClassifier(cfg *Config) *Classifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	rules := []classifierRule{
		{Zugzwang, func(f features) bool {
			// No good option: directionless signals under high volatility
			return f.cv > cfg.HighVolatility &&
				math.Abs(f.relTrend) <= cfg.TrendHigh &&
				math.Abs(f.momentum) <= cfg.MomentumLow
		}},
		{Prophylaxis, func(f features) bool {
			return f.pct < 0 && f.cv > cfg.HighVolatility
		}},
		{Tempo, func(f features) bool {
			return f.pct > 0 && f.relTrend > cfg.TrendHigh && f.momentum > 0
		}},
		{Exchange, func(f features) bool {
			return f.pct < 0 && f.relTrend < -cfg.TrendHigh && f.momentum < 0
		}},
		{Fork, func(f features) bool {
			// Adjustment serving safety and trend capture at once
			return f.pct != 0 &&
				f.cv > cfg.ModerateVolatility &&
				math.Abs(f.relTrend) > cfg.TrendHigh &&
				sameSign(f.pct, f.relTrend)
		}},
		{Development, func(f features) bool {
			return f.pct == 0 && math.Abs(f.relTrend) > cfg.TrendLow
		}},
		{Material, func(f features) bool {
			return f.pct != 0 && f.cv <= cfg.LowVolatility
		}},
		{Position, func(f features) bool {
			return true
		}},
	}

	return &Classifier{cfg: cfg, rules: rules}
}

// Classify returns exactly one motif label for the given statistics and
// adjustment. Deterministic and total.
func (c *Classifier) Classify(st *stats.SeriesStatistics, result *adjust.Result) Label {
	f := features{
		cv:       st.CoefficientOfVariation,
		relTrend: st.RelTrend(),
		momentum: st.Momentum,
		pct:      result.Pct,
	}

	for _, rule := range c.rules {
		if rule.match(f) {
			return rule.label
		}
	}

	// Unreachable: the last rule always matches
	return Position
}

// Classify is a convenience wrapper using the default thresholds.
func Classify(st *stats.SeriesStatistics, result *adjust.Result) Label {
	return NewClassifier(nil).Classify(st, result)
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
