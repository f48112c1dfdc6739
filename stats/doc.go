// Package stats provides descriptive statistics and diagnostics for demand series.
//
// This package computes the statistics that drive forecast adjustment and
// motif classification, plus autocorrelation utilities for ARIMA fitting and
// residual diagnostics.
//
// # Descriptive Statistics
//
// Extract the adjustment-driving statistics from a series:
//
//	st, err := stats.Describe(series)
//	fmt.Printf("cv=%.3f trend=%.3f momentum=%.3f\n",
//	    st.CoefficientOfVariation, st.Trend, st.Momentum)
//
// Describe fails with ErrInsufficientData for series shorter than 2
// observations and with ErrDegenerateSeries when the mean is zero.
//
// Momentum compares the mean of the most recent third of the series against
// the mean of the prior third; series shorter than 3 observations fall back
// to the two-point delta between last and first values.
//
// # Autocorrelation
//
// Analyze autocorrelation patterns:
//
//	acf := stats.ACF(series, 10)
//
// # Residual Diagnostics
//
// Test residuals for autocorrelation:
//
//	lb := stats.LjungBox(residuals, 10, p+q)
//	if lb != nil && lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
package stats
