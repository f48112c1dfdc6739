// Package chesscast provides chess-motif explainable demand forecasting.
//
// ChessCast forecasts short-horizon demand series with automatically selected
// ARIMA models, applies bounded rule-based adjustments, and attaches two
// parallel natural-language explanations to every adjustment: a plain
// statistical explanation and a chess-framed one drawn from a fixed taxonomy
// of eight strategic motifs. It is built for research on explainable-AI
// framing effects, not for production planning.
//
// # Quick Start
//
// Run the full pipeline on one scenario:
//
//	sc := scenario.Builtin()[0]
//	p := pipeline.New(nil)
//	outcome, err := p.Run(sc)
//	fmt.Println(outcome.Motif, outcome.Chess)
//
// Forecast a raw series directly:
//
//	series := timeseries.New(values)
//	result, _ := forecast.Auto(series, nil)
//	fmt.Println(result.Forecasts)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Demand series data structures and CSV utilities
//   - stats: Descriptive statistics (volatility, trend, momentum) and diagnostics
//   - forecast: ARIMA models with automatic order selection
//   - adjust: Bounded rule-based forecast adjustment
//   - motif: Chess-motif classification of adjustments
//   - explain: Standard and chess-framed explanation text
//   - scenario: Built-in and YAML-defined demand scenarios
//   - pipeline: Per-scenario orchestration of the full flow
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package chesscast
