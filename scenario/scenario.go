// Package scenario provides the demand scenarios that flow through the
// forecasting pipeline.
package scenario

import (
	"github.com/sartorproj/chesscast/timeseries"
)

// Scenario is a named product with its raw demand series and descriptive
// context. Loaded once and treated as immutable.
type Scenario struct {
	ID      string
	Product string
	Context string
	Series  *timeseries.Series
}

// builtin holds the fixed 10-scenario study set: 8-point monthly demand
// series spanning growth, decline, noise, and mixed-signal shapes.
var builtin = []struct {
	id      string
	product string
	context string
	demand  []float64
}{
	{
		"S01", "Winter Jackets",
		"Seasonal apparel entering peak demand with steady monthly growth",
		[]float64{100, 102, 105, 108, 112, 118, 121, 127},
	},
	{
		"S02", "Smartphone Cases",
		"Promotion-driven accessory with demand whipsawing between campaigns",
		[]float64{150, 45, 50, 155, 148, 42, 48, 152},
	},
	{
		"S03", "Organic Milk",
		"Staple grocery item with flat, predictable replenishment",
		[]float64{50, 50, 51, 50, 49, 50, 51, 50},
	},
	{
		"S04", "Lawn Mowers",
		"End-of-season garden equipment with demand winding down",
		[]float64{200, 190, 178, 170, 159, 150, 141, 133},
	},
	{
		"S05", "Energy Drinks",
		"Event-driven beverage with volatile but rising consumption",
		[]float64{40, 150, 60, 190, 80, 230, 100, 280},
	},
	{
		"S06", "Desk Lamps",
		"Office equipment with a mild back-to-work uptick",
		[]float64{100, 101, 103, 104, 106, 107, 109, 110},
	},
	{
		"S07", "Bluetooth Speakers",
		"Electronics line growing all year but cooling in recent months",
		[]float64{100, 110, 120, 130, 140, 150, 135, 125},
	},
	{
		"S08", "Protein Bars",
		"Fitness snack riding an accelerating health trend",
		[]float64{55, 58, 62, 66, 71, 77, 84, 92},
	},
	{
		"S09", "Ceiling Fans",
		"Weather-sensitive appliance declining overall with a late rebound",
		[]float64{180, 120, 160, 100, 140, 90, 120, 135},
	},
	{
		"S10", "Office Chairs",
		"Contract furniture with lumpy bulk orders and no direction",
		[]float64{35, 120, 115, 30, 38, 125, 112, 40},
	},
}

// Builtin returns the fixed study scenarios. Each call returns fresh copies
// so callers cannot mutate the shared definitions.
func Builtin() []*Scenario {
	scenarios := make([]*Scenario, 0, len(builtin))
	for _, b := range builtin {
		demand := make([]float64, len(b.demand))
		copy(demand, b.demand)

		series := timeseries.New(demand)
		series.Name = b.product

		scenarios = append(scenarios, &Scenario{
			ID:      b.id,
			Product: b.product,
			Context: b.context,
			Series:  series,
		})
	}
	return scenarios
}
