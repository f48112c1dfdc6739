// Package forecast implements short-horizon ARIMA forecasting for demand series.
//
// The package fits ARIMA(p,d,q) models by conditional sum of squares and
// selects the order automatically over a bounded grid (orders 0-3 each) by
// minimizing an information criterion. The horizon is fixed at 6 periods by
// default.
//
// # Automatic Selection
//
//	result, err := forecast.Auto(series, nil)
//	if err != nil {
//	    // fewer than 2 observations: not even the naive fallback works
//	}
//	if result.Degraded {
//	    // order selection failed; forecasts repeat the last value
//	}
//	fmt.Println(result.Forecasts) // 6 point forecasts
//
// # Fitting a Fixed Order
//
//	model := forecast.NewModel(1, 1, 0)
//	if err := model.Fit(series); err == nil {
//	    forecasts, _ := model.Predict(6)
//	}
//
// Order selection is deterministic: the grid is walked in a fixed order and
// only strict criterion improvement replaces the incumbent, so identical
// series always yield identical forecasts.
package forecast
