package forecast

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/sartorproj/chesscast/timeseries"
)

func TestAutoTrendingSeries(t *testing.T) {
	series := timeseries.New([]float64{100, 104, 107, 112, 115, 121, 125, 131, 134, 140, 144, 151})

	result, err := Auto(series, nil)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}

	if result.Degraded {
		t.Error("12-point trending series should not need the fallback")
	}
	if len(result.Forecasts) != DefaultHorizon {
		t.Fatalf("Expected %d forecasts, got %d", DefaultHorizon, len(result.Forecasts))
	}
	for i, f := range result.Forecasts {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("Forecast %d is NaN or Inf", i)
		}
	}
	if result.ModelsEvaluated == 0 {
		t.Error("Expected at least one model to be evaluated")
	}

	t.Logf("Order (%d,%d,%d), %d models, forecasts %v",
		result.P, result.D, result.Q, result.ModelsEvaluated, result.Forecasts)
}

func TestAutoConstantSeries(t *testing.T) {
	series := timeseries.New([]float64{50, 50, 50, 50, 50, 50, 50, 50})

	result, err := Auto(series, nil)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}

	for i, f := range result.Forecasts {
		if math.Abs(f-50) > 1e-9 {
			t.Errorf("Forecast %d of constant series should be 50, got %f", i, f)
		}
	}
}

func TestAutoTooShort(t *testing.T) {
	series := timeseries.New([]float64{42})

	_, err := Auto(series, nil)
	if !errors.Is(err, ErrNoForecast) {
		t.Errorf("Expected ErrNoForecast, got %v", err)
	}
}

func TestAutoFallbackDegraded(t *testing.T) {
	// Two observations: no candidate order can fit, the naive fallback
	// repeats the last value
	series := timeseries.New([]float64{5, 9})

	result, err := Auto(series, nil)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}

	if !result.Degraded {
		t.Error("Expected degraded result for 2-point series")
	}
	if result.Model != nil {
		t.Error("Degraded result should not carry a model")
	}
	for i, f := range result.Forecasts {
		if f != 9 {
			t.Errorf("Fallback forecast %d should repeat last value 9, got %f", i, f)
		}
	}
}

func TestAutoCustomHorizon(t *testing.T) {
	series := timeseries.New([]float64{100, 102, 105, 108, 112, 118, 121, 127})

	cfg := DefaultConfig()
	cfg.Horizon = 3

	result, err := Auto(series, cfg)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}
	if len(result.Forecasts) != 3 {
		t.Errorf("Expected 3 forecasts, got %d", len(result.Forecasts))
	}
}

func TestAutoDeterministic(t *testing.T) {
	series := timeseries.New([]float64{120, 95, 140, 80, 160, 100, 70, 150, 130, 90})

	a, err := Auto(series, nil)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}
	b, err := Auto(series, nil)
	if err != nil {
		t.Fatalf("Auto failed: %v", err)
	}

	if a.P != b.P || a.D != b.D || a.Q != b.Q {
		t.Errorf("Order selection not deterministic: (%d,%d,%d) vs (%d,%d,%d)",
			a.P, a.D, a.Q, b.P, b.D, b.Q)
	}
	if !reflect.DeepEqual(a.Forecasts, b.Forecasts) {
		t.Errorf("Forecasts not deterministic: %v vs %v", a.Forecasts, b.Forecasts)
	}
}

func TestAutoCriteria(t *testing.T) {
	series := timeseries.New([]float64{100, 104, 107, 112, 115, 121, 125, 131, 134, 140})

	for _, criterion := range []string{"aic", "aicc", "bic"} {
		cfg := DefaultConfig()
		cfg.Criterion = criterion

		result, err := Auto(series, cfg)
		if err != nil {
			t.Fatalf("Auto with %s failed: %v", criterion, err)
		}
		if len(result.Forecasts) != DefaultHorizon {
			t.Errorf("%s: expected %d forecasts, got %d", criterion, DefaultHorizon, len(result.Forecasts))
		}
		t.Logf("%s selected (%d,%d,%d)", criterion, result.P, result.D, result.Q)
	}
}
