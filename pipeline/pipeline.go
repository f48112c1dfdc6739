// Package pipeline orchestrates the full flow from raw demand series to
// explained, motif-labeled forecast adjustments.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sartorproj/chesscast/adjust"
	"github.com/sartorproj/chesscast/explain"
	"github.com/sartorproj/chesscast/forecast"
	"github.com/sartorproj/chesscast/motif"
	"github.com/sartorproj/chesscast/scenario"
	"github.com/sartorproj/chesscast/stats"
)

// Config holds the per-stage configurations. Nil fields fall back to each
// package's defaults.
type Config struct {
	Forecast *forecast.Config
	Adjust   *adjust.Config
	Motif    *motif.Config
	Logger   zerolog.Logger
}

// Pipeline runs scenarios through statistics extraction, forecasting,
// adjustment, motif classification, and explanation generation. Stateless
// across runs; scenarios share no mutable state, so a Pipeline is safe for
// concurrent use.
type Pipeline struct {
	fcfg       *forecast.Config
	acfg       *adjust.Config
	classifier *motif.Classifier
	log        zerolog.Logger
}

// New creates a pipeline. Pass nil for all defaults (including a no-op
// logger).
func New(cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = &Config{Logger: zerolog.Nop()}
	}
	return &Pipeline{
		fcfg:       cfg.Forecast,
		acfg:       cfg.Adjust,
		classifier: motif.NewClassifier(cfg.Motif),
		log:        cfg.Logger,
	}
}

// Outcome is the complete result of one scenario run. All fields are
// immutable once produced; RawForecast and AdjustedForecast are kept side
// by side so both remain inspectable.
type Outcome struct {
	ScenarioID       string      `json:"scenario_id"`
	Product          string      `json:"product"`
	Context          string      `json:"context"`
	Statistics       StatsRecord `json:"statistics"`
	Order            string      `json:"order,omitempty"`
	RawForecast      []float64   `json:"raw_forecast"`
	AdjustedForecast []float64   `json:"adjusted_forecast"`
	AdjustmentPct    float64     `json:"adjustment_pct"`
	Rule             string      `json:"rule"`
	Confidence       float64     `json:"confidence"`
	Degraded         bool        `json:"degraded"`
	Motif            motif.Label `json:"motif"`
	Standard         string      `json:"standard_explanation"`
	Chess            string      `json:"chess_explanation"`
}

// StatsRecord is the JSON-friendly projection of the series statistics.
type StatsRecord struct {
	Mean                   float64 `json:"mean"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	Trend                  float64 `json:"trend"`
	Momentum               float64 `json:"momentum"`
}

// Failure records one scenario that could not be processed. Failures never
// abort the rest of a batch.
type Failure struct {
	ScenarioID string `json:"scenario_id"`
	Product    string `json:"product"`
	Err        error  `json:"-"`
	Message    string `json:"error"`
}

// Run processes a single scenario through the full pipeline.
func (p *Pipeline) Run(sc *scenario.Scenario) (*Outcome, error) {
	st, err := stats.Describe(sc.Series)
	if err != nil {
		return nil, err
	}

	fc, err := forecast.Auto(sc.Series, p.fcfg)
	if err != nil {
		return nil, err
	}

	var adj *adjust.Result
	if fc.Degraded {
		adj = adjust.RecommendDegraded(st, fc.Forecasts, p.acfg)
	} else {
		adj = adjust.Recommend(st, fc.Forecasts, p.acfg)
	}

	label := p.classifier.Classify(st, adj)
	pair := explain.Generate(adj, label, explain.Metadata{
		Product: sc.Product,
		Context: sc.Context,
	})

	outcome := &Outcome{
		ScenarioID: sc.ID,
		Product:    sc.Product,
		Context:    sc.Context,
		Statistics: StatsRecord{
			Mean:                   st.Mean,
			CoefficientOfVariation: st.CoefficientOfVariation,
			Trend:                  st.Trend,
			Momentum:               st.Momentum,
		},
		RawForecast:      adj.RawForecast,
		AdjustedForecast: adj.AdjustedForecast,
		AdjustmentPct:    adj.Pct,
		Rule:             adj.Rule.String(),
		Confidence:       adj.Confidence,
		Degraded:         fc.Degraded,
		Motif:            label,
		Standard:         pair.Standard,
		Chess:            pair.Chess,
	}
	if fc.Model != nil {
		outcome.Order = fmt.Sprintf("(%d,%d,%d)", fc.P, fc.D, fc.Q)
	}

	p.log.Debug().
		Str("scenario", sc.ID).
		Str("motif", string(label)).
		Float64("adjustment_pct", adj.Pct).
		Bool("degraded", fc.Degraded).
		Msg("scenario processed")

	return outcome, nil
}

// RunAll processes scenarios independently: one scenario's failure is
// recorded and the batch continues.
func (p *Pipeline) RunAll(scenarios []*scenario.Scenario) ([]*Outcome, []Failure) {
	outcomes := make([]*Outcome, 0, len(scenarios))
	var failures []Failure

	for _, sc := range scenarios {
		outcome, err := p.Run(sc)
		if err != nil {
			p.log.Warn().
				Str("scenario", sc.ID).
				Err(err).
				Msg("scenario failed")
			failures = append(failures, Failure{
				ScenarioID: sc.ID,
				Product:    sc.Product,
				Err:        err,
				Message:    err.Error(),
			})
			continue
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, failures
}

// MotifDistribution counts outcomes per motif label.
func MotifDistribution(outcomes []*Outcome) map[motif.Label]int {
	dist := make(map[motif.Label]int)
	for _, o := range outcomes {
		dist[o.Motif]++
	}
	return dist
}
