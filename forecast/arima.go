// Package forecast implements short-horizon ARIMA forecasting with automatic
// order selection for demand series.
package forecast

import (
	"errors"
	"math"

	"github.com/sartorproj/chesscast/stats"
	"github.com/sartorproj/chesscast/timeseries"
)

// Order represents ARIMA model order (p, d, q).
type Order struct {
	P int // AR order (number of autoregressive terms)
	D int // Differencing order
	Q int // MA order (number of moving average terms)
}

// Model represents an ARIMA model fitted to a demand series.
type Model struct {
	Order      Order
	ARCoeffs   []float64 // AR coefficients (phi)
	MACoeffs   []float64 // MA coefficients (theta)
	Intercept  float64
	Variance   float64 // Residual variance
	AIC        float64
	AICc       float64 // Corrected AIC for small sample sizes
	BIC        float64
	LogLik     float64
	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// NewModel creates a new ARIMA model with the specified order.
func NewModel(p, d, q int) *Model {
	return &Model{
		Order:    Order{P: p, D: d, Q: q},
		ARCoeffs: make([]float64, p),
		MACoeffs: make([]float64, q),
	}
}

// Fit fits the ARIMA model to the given demand series. Demand scenarios are
// short (8-12 observations), so the minimum length requirement is only a
// small margin over the parameter count.
func (m *Model) Fit(series *timeseries.Series) error {
	if series.Len() < m.Order.P+m.Order.Q+m.Order.D+3 {
		return errors.New("insufficient data points for the specified order")
	}

	m.data = series

	// Apply differencing
	diffSeries := series
	for i := 0; i < m.Order.D; i++ {
		diffSeries = diffSeries.Diff()
		if diffSeries.Len() == 0 {
			return errors.New("differencing resulted in empty series")
		}
	}
	m.diffData = diffSeries

	// Fit using Conditional Sum of Squares (CSS)
	if err := m.fitCSS(); err != nil {
		return err
	}

	m.calculateIC()
	m.fitted = true
	return nil
}

// fitCSS fits the model using Conditional Sum of Squares estimation.
func (m *Model) fitCSS() error {
	y := m.diffData.Values
	n := len(y)
	p := m.Order.P
	q := m.Order.Q

	if p == 0 && q == 0 {
		// Just a white noise model
		mean := 0.0
		for _, v := range y {
			mean += v
		}
		m.Intercept = mean / float64(n)
		m.Variance = 0
		for _, v := range y {
			diff := v - m.Intercept
			m.Variance += diff * diff
		}
		if n > 1 {
			m.Variance /= float64(n - 1)
		}
		m.residuals = make([]float64, n)
		m.fittedVals = make([]float64, n)
		for i, v := range y {
			m.residuals[i] = v - m.Intercept
			m.fittedVals[i] = m.Intercept
		}
		return nil
	}

	// Use Yule-Walker for initial AR estimates
	if p > 0 {
		acf := stats.ACF(m.diffData, p)
		if acf != nil {
			if phi := yuleWalker(acf, p); phi != nil {
				m.ARCoeffs = phi
			}
		}
	}

	// Initialize MA coefficients to small values
	for i := range m.MACoeffs {
		m.MACoeffs[i] = 0.1
	}

	return m.optimizeCSS(y)
}

// optimizeCSS refines parameters with gradient descent on the conditional
// sum of squares.
func (m *Model) optimizeCSS(y []float64) error {
	n := len(y)
	p := m.Order.P
	q := m.Order.Q

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	m.Intercept = mean

	maxIter := 100
	tolerance := 1e-6
	learningRate := 0.01

	startIdx := max(p, q)

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		prevSSE := 0.0

		for t := startIdx; t < n; t++ {
			pred := m.Intercept
			for i := 0; i < p && t-i-1 >= 0; i++ {
				pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				pred += m.MACoeffs[i] * residuals[t-i-1]
			}
			residuals[t] = y[t] - pred
			prevSSE += residuals[t] * residuals[t]
		}

		arGrad := make([]float64, p)
		maGrad := make([]float64, q)

		for t := startIdx; t < n; t++ {
			for i := 0; i < p && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
		}

		for i := 0; i < p; i++ {
			m.ARCoeffs[i] -= learningRate * arGrad[i] / float64(n)
			// Constrain for stationarity
			m.ARCoeffs[i] = math.Max(-0.99, math.Min(0.99, m.ARCoeffs[i]))
		}
		for i := 0; i < q; i++ {
			m.MACoeffs[i] -= learningRate * maGrad[i] / float64(n)
			// Constrain for invertibility
			m.MACoeffs[i] = math.Max(-0.99, math.Min(0.99, m.MACoeffs[i]))
		}

		newSSE := 0.0
		for t := startIdx; t < n; t++ {
			pred := m.Intercept
			for i := 0; i < p && t-i-1 >= 0; i++ {
				pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				pred += m.MACoeffs[i] * residuals[t-i-1]
			}
			residuals[t] = y[t] - pred
			newSSE += residuals[t] * residuals[t]
		}

		if math.Abs(prevSSE-newSSE) < tolerance {
			break
		}
	}

	// Final residuals and variance
	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)

	for t := 0; t < n; t++ {
		if t < startIdx {
			m.fittedVals[t] = m.Intercept
			m.residuals[t] = y[t] - m.fittedVals[t]
			continue
		}

		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0; i++ {
			pred += m.MACoeffs[i] * m.residuals[t-i-1]
		}

		m.fittedVals[t] = pred
		m.residuals[t] = y[t] - pred
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > p+q+1 {
		m.Variance = sse / float64(count-p-q-1)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}

	return nil
}

// calculateIC calculates AIC, AICc, and BIC.
func (m *Model) calculateIC() {
	n := len(m.residuals)
	k := m.Order.P + m.Order.Q + 1 // AR + MA + intercept

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	m.AIC = -2*m.LogLik + 2*float64(k)

	kf := float64(k)
	nf := float64(n)
	if nf-kf-1 > 0 {
		m.AICc = m.AIC + 2*kf*(kf+1)/(nf-kf-1)
	} else {
		m.AICc = math.Inf(1)
	}

	m.BIC = -2*m.LogLik + float64(k)*math.Log(float64(n))
}

// Predict generates point forecasts for the specified number of steps ahead.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}

	p := m.Order.P
	q := m.Order.Q
	d := m.Order.D

	y := m.diffData.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)

	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Intercept

		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		// Future residuals are 0
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResiduals[t-i-1]
		}

		extY[t] = pred
		extResiduals[t] = 0
	}

	forecasts := extY[n:]

	if d > 0 {
		forecasts = m.integrate(forecasts)
	}

	return forecasts, nil
}

// integrate undoes differencing to return forecasts on the original scale.
func (m *Model) integrate(forecasts []float64) []float64 {
	d := m.Order.D
	original := m.data.Values

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	for i := 0; i < d; i++ {
		lastVal := original[len(original)-1-i]
		for j := 0; j < len(result); j++ {
			if j == 0 {
				result[j] += lastVal
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}

// Residuals returns a copy of the model residuals.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns a copy of the fitted values.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Summary holds a summary of a fitted model.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box
// residual diagnostic when the series is long enough for one.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	residSeries := timeseries.New(m.residuals)
	lb := stats.LjungBox(residSeries, 10, m.Order.P+m.Order.Q)

	return &Summary{
		Order:     m.Order,
		ARCoeffs:  m.ARCoeffs,
		MACoeffs:  m.MACoeffs,
		Intercept: m.Intercept,
		Variance:  m.Variance,
		AIC:       m.AIC,
		AICc:      m.AICc,
		BIC:       m.BIC,
		LogLik:    m.LogLik,
		NObs:      len(m.data.Values),
		LjungBox:  lb,
	}
}

// yuleWalker estimates AR coefficients from autocorrelations using the
// Levinson-Durbin recursion.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)

	if order == 1 {
		phi[0] = acf[1]
		return phi
	}

	phi[0] = acf[1]
	v := 1 - phi[0]*phi[0]

	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		if v == 0 {
			break
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}

	return phi
}
