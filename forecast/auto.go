package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/chesscast/timeseries"
)

// ErrNoForecast indicates that no forecast could be produced even via the
// naive fallback (the series has fewer than 2 observations).
var ErrNoForecast = errors.New("no forecast producible")

// DefaultHorizon is the fixed forecast horizon in periods.
const DefaultHorizon = 6

// Config holds configuration for automatic order selection.
type Config struct {
	MaxP      int    // Maximum AR order (default: 3)
	MaxD      int    // Maximum differencing order (default: 1)
	MaxQ      int    // Maximum MA order (default: 3)
	Horizon   int    // Forecast horizon in periods (default: 6)
	Criterion string // Information criterion: "aic", "aicc", or "bic" (default: "aicc")
}

// DefaultConfig returns the default auto-selection configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxP:      3,
		MaxD:      1,
		MaxQ:      3,
		Horizon:   DefaultHorizon,
		Criterion: "aicc",
	}
}

// Result represents the outcome of automatic order selection and forecasting.
// Forecasts holds the raw point forecasts and must not be overwritten by
// downstream consumers; adjustments are stored separately.
type Result struct {
	Model *Model // nil when the naive fallback was used

	// Best order found
	P int
	D int
	Q int

	// Model metrics
	AIC       float64
	AICc      float64
	BIC       float64
	Criterion float64

	// Search information
	ModelsEvaluated int

	// Degraded is true when order selection failed and the naive
	// last-value forecast was used instead.
	Degraded bool

	Forecasts []float64
}

// Auto selects the best ARIMA order over a bounded grid by minimizing an
// information criterion, fits the model on the full series, and projects
// forward cfg.Horizon periods. If no candidate order fits, it falls back to
// repeating the last observed value and marks the result as degraded.
// Returns ErrNoForecast only when even the fallback is impossible.
func Auto(series *timeseries.Series, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	horizon := cfg.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	if series.Len() < 2 {
		return nil, fmt.Errorf("%w: series has %d observations", ErrNoForecast, series.Len())
	}

	best := searchGrid(series, cfg)

	if best.Model != nil {
		forecasts, err := best.Model.Predict(horizon)
		if err == nil && finite(forecasts) {
			best.Forecasts = forecasts
			return best, nil
		}
	}

	// Naive fallback: repeat the last observed value
	naive := make([]float64, horizon)
	last := series.Last()
	for i := range naive {
		naive[i] = last
	}

	return &Result{
		Criterion: math.Inf(1),
		Degraded:  true,
		Forecasts: naive,
	}, nil
}

// searchGrid performs an exhaustive search over (p, d, q) in a fixed order,
// so repeated runs on the same series select the same model.
func searchGrid(series *timeseries.Series, cfg *Config) *Result {
	best := &Result{Criterion: math.Inf(1)}
	modelsEvaluated := 0

	for d := 0; d <= cfg.MaxD; d++ {
		for p := 0; p <= cfg.MaxP; p++ {
			for q := 0; q <= cfg.MaxQ; q++ {
				model := NewModel(p, d, q)
				if err := model.Fit(series); err != nil {
					continue
				}

				modelsEvaluated++
				criterion := criterionValue(model, cfg.Criterion)

				// Strict improvement keeps the search deterministic;
				// a fitted model beats no model even at +Inf criterion
				// (constant series fit with zero residual variance).
				if criterion < best.Criterion || best.Model == nil {
					best = &Result{
						Model:     model,
						P:         p,
						D:         d,
						Q:         q,
						AIC:       model.AIC,
						AICc:      model.AICc,
						BIC:       model.BIC,
						Criterion: criterion,
					}
				}
			}
		}
	}

	best.ModelsEvaluated = modelsEvaluated
	return best
}

func criterionValue(model *Model, criterion string) float64 {
	switch criterion {
	case "bic":
		return model.BIC
	case "aic":
		return model.AIC
	default:
		return model.AICc
	}
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
