// Package explain renders natural-language explanations for forecast
// adjustments: a plain statistical sentence and a chess-framed one keyed by
// motif.
package explain

import (
	"fmt"

	"github.com/sartorproj/chesscast/adjust"
	"github.com/sartorproj/chesscast/motif"
)

// Pair holds the two parallel explanations for one adjustment. Read-only
// output artifact.
type Pair struct {
	Standard string
	Chess    string
}

// Metadata carries the scenario context used in the explanation text.
type Metadata struct {
	Product string
	Context string
}

// chessAnalogies holds the fixed per-motif chess phrasing. Loaded once at
// process start and never mutated.
var chessAnalogies = map[motif.Label]string{
	motif.Tempo:       "Like advancing pawns to seize tempo, we move %s supply up %.1f%% now to stay ahead of accelerating demand.",
	motif.Fork:        "Like a knight fork attacking two pieces at once, the %.1f%% adjustment for %s covers both the demand trend and the noise around it.",
	motif.Prophylaxis: "Like a prophylactic king move made before any threat lands, we trim the %s forecast %.1f%% as insurance against volatile demand.",
	motif.Zugzwang:    "Like zugzwang, where every move weakens the position, %s offers no good option; the %.1f%% change is the least damaging one available.",
	motif.Development: "Like developing pieces before launching an attack, we hold the %s forecast steady while the demand trend matures.",
	motif.Exchange:    "Like accepting an exchange sacrifice, we give up %.1f%% of the %s forecast now to avoid a larger loss as demand declines.",
	motif.Material:    "Like converting a material edge, the %.1f%% change to %s is straightforward counting: quantities, not complications.",
	motif.Position:    "Like improving the position when no tactic is available, the %s forecast keeps maximum flexibility with a %.1f%% stance.",
}

// standardDrivers names the statistic that drove each adjustment rule.
var standardDrivers = map[adjust.Rule]string{
	adjust.RuleVolatilityBuffer:  "high demand volatility",
	adjust.RuleTrendAcceleration: "a strong upward trend confirmed by recent momentum",
	adjust.RuleTrendDecline:      "a strong downward trend confirmed by recent momentum",
	adjust.RuleSteady:            "stable demand with no significant trend",
	adjust.RuleMomentumConflict:  "recent momentum running against the longer trend",
}

const degradedNote = " Note: automatic model selection did not converge; a fallback forecast was used, so confidence is reduced."

// Generate renders the explanation pair for one classified adjustment.
// Pure string formatting; the only branching is the motif template lookup.
func Generate(result *adjust.Result, label motif.Label, meta Metadata) Pair {
	driver := standardDrivers[result.Rule]

	var standard string
	if result.Pct == 0 {
		standard = fmt.Sprintf("The statistical forecast for %s is left unchanged due to %s.",
			meta.Product, driver)
	} else {
		standard = fmt.Sprintf("The statistical forecast for %s is adjusted by %+.1f%% due to %s.",
			meta.Product, result.Pct, driver)
	}

	chess := formatChess(label, meta.Product, result.Pct)

	if result.Degraded {
		standard += degradedNote
		chess += degradedNote
	}

	return Pair{Standard: standard, Chess: chess}
}

// formatChess fills the motif template. Templates differ in argument order,
// so the fill is per-motif.
func formatChess(label motif.Label, product string, pct float64) string {
	tmpl := chessAnalogies[label]
	mag := pct
	if mag < 0 {
		mag = -mag
	}

	switch label {
	case motif.Tempo, motif.Prophylaxis, motif.Zugzwang, motif.Position:
		return fmt.Sprintf(tmpl, product, mag)
	case motif.Fork, motif.Exchange, motif.Material:
		return fmt.Sprintf(tmpl, mag, product)
	case motif.Development:
		return fmt.Sprintf(tmpl, product)
	default:
		return fmt.Sprintf(chessAnalogies[motif.Position], product, mag)
	}
}
