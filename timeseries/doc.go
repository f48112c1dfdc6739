// Package timeseries provides demand series data structures and utilities.
//
// This package includes the Series type for representing demand series data,
// along with functions for data loading, transformation, and analysis.
//
// # Creating a Series
//
// Create a demand series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load demand data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("demand.csv", "demand")
//
//	// Load with options
//	opts := &timeseries.CSVOptions{
//	    PeriodColumn: "month",
//	    ValueColumn:  "demand",
//	    HasHeader:    true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Transformations
//
// Transform the series:
//
//	diff := series.Diff()     // First difference
//	diff2 := series.DiffN(2)  // Second difference
//	subset := series.Slice(2, 8)
//	copied := series.Copy()
package timeseries
