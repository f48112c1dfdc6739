package forecast

import (
	"math"
	"testing"

	"github.com/sartorproj/chesscast/timeseries"
)

func TestNewModel(t *testing.T) {
	model := NewModel(2, 1, 1)

	if model.Order.P != 2 {
		t.Errorf("Expected P=2, got %d", model.Order.P)
	}
	if model.Order.D != 1 {
		t.Errorf("Expected D=1, got %d", model.Order.D)
	}
	if model.Order.Q != 1 {
		t.Errorf("Expected Q=1, got %d", model.Order.Q)
	}
}

func TestFitAR1(t *testing.T) {
	// Generate AR(1) data
	n := 200
	phi := 0.7
	values := make([]float64, n)
	values[0] = 100
	for i := 1; i < n; i++ {
		innovation := float64(i%7-3) / 3
		values[i] = phi*(values[i-1]-100) + 100 + innovation
	}

	series := timeseries.New(values)
	model := NewModel(1, 0, 0)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit AR(1) model: %v", err)
	}

	if len(model.ARCoeffs) != 1 {
		t.Errorf("Expected 1 AR coefficient, got %d", len(model.ARCoeffs))
	}

	t.Logf("True AR coeff: %f, Estimated: %f", phi, model.ARCoeffs[0])

	residuals := model.Residuals()
	if len(residuals) == 0 {
		t.Error("Residuals should not be empty")
	}
}

func TestFitShortDemandSeries(t *testing.T) {
	// Typical scenario length: 8 monthly observations
	series := timeseries.New([]float64{100, 102, 105, 108, 112, 118, 121, 127})

	model := NewModel(1, 1, 0)
	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit on 8-point series: %v", err)
	}

	forecasts, err := model.Predict(6)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	if len(forecasts) != 6 {
		t.Errorf("Expected 6 forecasts, got %d", len(forecasts))
	}
	for i, f := range forecasts {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("Forecast %d is NaN or Inf", i)
		}
	}
}

func TestFitInsufficientData(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})
	model := NewModel(3, 1, 3)

	if err := model.Fit(series); err == nil {
		t.Error("Expected error for insufficient data")
	}
}

func TestPredictBeforeFit(t *testing.T) {
	model := NewModel(1, 0, 0)
	if _, err := model.Predict(6); err == nil {
		t.Error("Expected error when predicting before fit")
	}
}

func TestPredictWithDifferencing(t *testing.T) {
	// Steady upward drift: ARIMA(0,1,0) forecast continues the drift
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100 + 3*float64(i)
	}

	series := timeseries.New(values)
	model := NewModel(0, 1, 0)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	forecasts, err := model.Predict(6)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	// Differenced series is constant 3, so forecasts continue at +3 per step
	last := values[len(values)-1]
	for i, f := range forecasts {
		expected := last + 3*float64(i+1)
		if math.Abs(f-expected) > 1e-6 {
			t.Errorf("Forecast %d: expected %f, got %f", i, expected, f)
		}
	}
}

func TestModelSummary(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 100 + float64(i%7-3)/2
	}

	series := timeseries.New(values)
	model := NewModel(1, 0, 1)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	summary := model.Summary()
	if summary == nil {
		t.Fatal("Summary should not be nil")
	}
	if summary.NObs != n {
		t.Errorf("Expected NObs=%d, got %d", n, summary.NObs)
	}

	t.Logf("AIC: %f, AICc: %f, BIC: %f", summary.AIC, summary.AICc, summary.BIC)
	if summary.LjungBox != nil {
		t.Logf("Ljung-Box Q: %f, P-Value: %f", summary.LjungBox.Statistic, summary.LjungBox.PValue)
	}
}

func TestFittedValues(t *testing.T) {
	n := 60
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = float64(i) + float64(i%5-2)/2
	}

	series := timeseries.New(values)
	model := NewModel(1, 0, 0)

	if err := model.Fit(series); err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	fitted := model.FittedValues()
	if len(fitted) != n {
		t.Errorf("Expected %d fitted values, got %d", n, len(fitted))
	}
}

func TestYuleWalker(t *testing.T) {
	// ACF corresponding to an AR(1) process
	acf := []float64{1.0, 0.6, 0.36, 0.216, 0.13}

	coeffs := yuleWalker(acf, 2)
	if coeffs == nil {
		t.Fatal("yuleWalker returned nil")
	}
	if len(coeffs) != 2 {
		t.Errorf("Expected 2 coefficients, got %d", len(coeffs))
	}

	for i, c := range coeffs {
		if math.IsNaN(c) {
			t.Errorf("Coefficient %d is NaN", i)
		}
	}

	t.Logf("Yule-Walker coefficients: %v", coeffs)
}

func TestMultipleOrders(t *testing.T) {
	tests := []struct {
		name    string
		p, d, q int
	}{
		{"AR1", 1, 0, 0},
		{"MA1", 0, 0, 1},
		{"ARMA11", 1, 0, 1},
		{"ARIMA110", 1, 1, 0},
		{"ARIMA011", 0, 1, 1},
		{"ARIMA111", 1, 1, 1},
	}

	n := 150
	values := make([]float64, n)
	values[0] = 100
	for i := 1; i < n; i++ {
		values[i] = 0.6*(values[i-1]-100) + 100 + float64(i%7-3)/3
	}

	series := timeseries.New(values)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel(tt.p, tt.d, tt.q)
			if err := model.Fit(series); err != nil {
				t.Logf("Model %s failed to fit: %v", tt.name, err)
				return
			}

			forecasts, err := model.Predict(3)
			if err != nil {
				t.Errorf("Prediction failed: %v", err)
				return
			}
			if len(forecasts) != 3 {
				t.Errorf("Expected 3 forecasts, got %d", len(forecasts))
			}

			t.Logf("%s - AIC: %.2f, BIC: %.2f", tt.name, model.AIC, model.BIC)
		})
	}
}
