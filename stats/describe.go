// Package stats provides descriptive statistics and diagnostics for demand series.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/chesscast/timeseries"
)

// Sentinel errors returned by Describe.
var (
	// ErrInsufficientData indicates the series is too short for statistics.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrDegenerateSeries indicates the series mean is zero, leaving the
	// coefficient of variation undefined.
	ErrDegenerateSeries = errors.New("degenerate series")
)

// SeriesStatistics holds the descriptive statistics that drive forecast
// adjustment and motif classification. Computed fresh per series and never
// mutated after creation.
type SeriesStatistics struct {
	Mean                   float64
	Std                    float64
	CoefficientOfVariation float64 // Std / Mean, scale-free volatility
	Trend                  float64 // OLS slope of value against period index
	Momentum               float64 // Relative change of recent vs prior segment
}

// RelTrend returns the trend slope as a fraction of the series mean per
// period, so rule thresholds stay scale-free.
func (st *SeriesStatistics) RelTrend() float64 {
	if st.Mean == 0 {
		return 0
	}
	return st.Trend / st.Mean
}

// Describe computes descriptive statistics from a raw demand series.
// It requires at least 2 observations and a nonzero mean. Pure function of
// the input series.
func Describe(series *timeseries.Series) (*SeriesStatistics, error) {
	n := series.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInsufficientData, n)
	}

	mean := series.Mean()
	if mean == 0 {
		return nil, fmt.Errorf("%w: series mean is zero", ErrDegenerateSeries)
	}

	std := series.Std()

	return &SeriesStatistics{
		Mean:                   mean,
		Std:                    std,
		CoefficientOfVariation: std / math.Abs(mean),
		Trend:                  TrendSlope(series),
		Momentum:               Momentum(series),
	}, nil
}

// TrendSlope fits an ordinary least-squares line of value against period
// index (0-based) and returns its slope.
func TrendSlope(series *timeseries.Series) float64 {
	n := series.Len()
	if n < 2 {
		return 0
	}

	// OLS with x = 0..n-1
	meanX := float64(n-1) / 2
	meanY := series.Mean()

	num := 0.0
	den := 0.0
	for i, v := range series.Values {
		dx := float64(i) - meanX
		num += dx * (v - meanY)
		den += dx * dx
	}

	if den == 0 {
		return 0
	}
	return num / den
}

// Momentum measures the relative change between the mean of the most recent
// third of the series and the mean of the prior third. For series shorter
// than 3 observations it falls back to the two-point delta between the last
// and first values. Returns 0 when the reference segment mean is zero.
func Momentum(series *timeseries.Series) float64 {
	n := series.Len()
	if n < 2 {
		return 0
	}

	k := n / 3
	if k < 1 {
		// Two-point delta fallback
		first := series.Values[0]
		if first == 0 {
			return 0
		}
		return (series.Last() - first) / math.Abs(first)
	}

	recent := series.Slice(n-k, n).Mean()
	prior := series.Slice(n-2*k, n-k).Mean()

	if prior == 0 {
		return 0
	}
	return (recent - prior) / math.Abs(prior)
}
