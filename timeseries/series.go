// Package timeseries provides demand series data structures and operations.
package timeseries

import (
	"errors"
	"math"
)

// Series represents an ordered demand series with one observation per period.
// Periods are 1-based month indices. A Series is treated as immutable once
// loaded; transformations return new Series values.
type Series struct {
	Periods []int
	Values  []float64
	Name    string
}

// New creates a new series from values, numbering periods from 1.
func New(values []float64) *Series {
	periods := make([]int, len(values))
	for i := range periods {
		periods[i] = i + 1
	}
	return &Series{
		Periods: periods,
		Values:  values,
	}
}

// NewWithPeriods creates a series with explicit period labels.
func NewWithPeriods(periods []int, values []float64) (*Series, error) {
	if len(periods) != len(values) {
		return nil, errors.New("periods and values must have the same length")
	}
	return &Series{
		Periods: periods,
		Values:  values,
	}, nil
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Last returns the most recent observation.
func (s *Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Diff calculates the first difference of the series (d=1).
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the n-th order difference of the series.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.Values) <= n {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-n)
	for i := n; i < len(s.Values); i++ {
		result[i-n] = s.Values[i] - s.Values[i-n]
	}

	periods := make([]int, len(result))
	if len(s.Periods) > n {
		copy(periods, s.Periods[n:])
	}

	return &Series{
		Periods: periods,
		Values:  result,
		Name:    s.Name + "_diff",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	periods := make([]int, len(values))
	if len(s.Periods) >= end {
		copy(periods, s.Periods[start:end])
	}

	return &Series{
		Periods: periods,
		Values:  values,
		Name:    s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	periods := make([]int, len(s.Periods))
	copy(periods, s.Periods)

	return &Series{
		Periods: periods,
		Values:  values,
		Name:    s.Name,
	}
}
