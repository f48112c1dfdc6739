package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sartorproj/chesscast/adjust"
	"github.com/sartorproj/chesscast/stats"
)

func statsWith(cv, mean, trend, momentum float64) *stats.SeriesStatistics {
	return &stats.SeriesStatistics{
		Mean:                   mean,
		CoefficientOfVariation: cv,
		Trend:                  trend,
		Momentum:               momentum,
	}
}

func adjustment(pct float64) *adjust.Result {
	return &adjust.Result{Pct: pct}
}

func TestClassifyTempo(t *testing.T) {
	// Growth series: strong upward trend, positive momentum, raised forecast
	st := statsWith(0.06, 109.2, 3.54, 0.08)

	label := Classify(st, adjustment(13.0))
	assert.Equal(t, Tempo, label)
}

func TestClassifyZugzwang(t *testing.T) {
	// High volatility, directionless trend and momentum
	st := statsWith(0.8, 100, 0.1, 0.05)

	label := Classify(st, adjustment(-6.0))
	assert.Equal(t, Zugzwang, label)
}

func TestClassifyZugzwangBeatsProphylaxis(t *testing.T) {
	// Both predicates hold; ZUGZWANG is earlier in priority order
	st := statsWith(0.9, 100, 0, 0)

	label := Classify(st, adjustment(-8.0))
	assert.Equal(t, Zugzwang, label)
}

func TestClassifyProphylaxis(t *testing.T) {
	// High volatility with clear momentum: not zugzwang, cut is protective
	st := statsWith(0.7, 100, 0.5, 0.4)

	label := Classify(st, adjustment(-4.0))
	assert.Equal(t, Prophylaxis, label)
}

func TestClassifyExchange(t *testing.T) {
	st := statsWith(0.1, 90, -4.5, -0.12)

	label := Classify(st, adjustment(-18.0))
	assert.Equal(t, Exchange, label)
}

func TestClassifyFork(t *testing.T) {
	// Moderate volatility, significant trend, adjustment in the trend's
	// direction, but flat momentum keeps TEMPO from firing
	st := statsWith(0.3, 100, 5, 0)

	label := Classify(st, adjustment(8.0))
	assert.Equal(t, Fork, label)
}

func TestClassifyDevelopment(t *testing.T) {
	// Mild trend exists but no adjustment was taken
	st := statsWith(0.05, 100, 1, 0.02)

	label := Classify(st, adjustment(0))
	assert.Equal(t, Development, label)
}

func TestClassifyMaterial(t *testing.T) {
	// Low volatility, adjustment present, no strong directional story
	st := statsWith(0.1, 100, 5, -0.3)

	label := Classify(st, adjustment(-5.0))
	assert.Equal(t, Material, label)
}

func TestClassifyPositionCatchAll(t *testing.T) {
	// Mid volatility, negligible trend, small positive adjustment:
	// nothing decisive matches
	st := statsWith(0.2, 100, 0.1, 0.15)

	label := Classify(st, adjustment(3.0))
	assert.Equal(t, Position, label)
}

func TestClassifyConstantSeriesNotZugzwang(t *testing.T) {
	// Constant series: zero volatility, no rule fired, pct 0
	st := statsWith(0, 50, 0, 0)

	label := Classify(st, adjustment(0))
	assert.Equal(t, Position, label, "Constant series has no volatility so it is not ZUGZWANG")
}

func TestClassifyTotality(t *testing.T) {
	// Every reachable combination yields exactly one known label
	cvs := []float64{0, 0.1, 0.2, 0.3, 0.6, 1.2}
	trends := []float64{-8, -3, -1, 0, 1, 3, 8}
	momenta := []float64{-0.5, -0.15, 0, 0.15, 0.5}
	pcts := []float64{-20, -10, -5, 0, 5, 10, 20}

	known := make(map[Label]bool, len(Labels))
	for _, l := range Labels {
		known[l] = true
	}

	for _, cv := range cvs {
		for _, trend := range trends {
			for _, momentum := range momenta {
				for _, pct := range pcts {
					st := statsWith(cv, 100, trend, momentum)
					label := Classify(st, adjustment(pct))
					assert.True(t, known[label],
						"cv=%v trend=%v momentum=%v pct=%v gave unknown label %q",
						cv, trend, momentum, pct, label)
				}
			}
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	st := statsWith(0.3, 100, 2.5, -0.2)
	adj := adjustment(-4.0)

	c := NewClassifier(nil)
	first := c.Classify(st, adj)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(st, adj))
	}
}

func TestLabelsOrder(t *testing.T) {
	assert.Len(t, Labels, 8)
	assert.Equal(t, Zugzwang, Labels[0])
	assert.Equal(t, Position, Labels[len(Labels)-1], "POSITION must be last to guarantee totality")
}

func TestCustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HighVolatility = 0.3

	c := NewClassifier(cfg)
	st := statsWith(0.4, 100, 0, 0)

	assert.Equal(t, Zugzwang, c.Classify(st, adjustment(-2.0)))
}
