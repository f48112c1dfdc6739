package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/chesscast/motif"
	"github.com/sartorproj/chesscast/pipeline"
	"github.com/sartorproj/chesscast/scenario"
)

func runCmd() *cobra.Command {
	var (
		scenarioFile string
		configFile   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run demand scenarios through the full pipeline",
		Long: `Run processes demand scenarios end to end: statistics, ARIMA
forecast, bounded adjustment, motif classification, and the paired
explanations. Without --scenarios it uses the built-in 10-scenario
study set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			scenarios := scenario.Builtin()
			if scenarioFile != "" {
				loaded, err := scenario.LoadFile(scenarioFile)
				if err != nil {
					return err
				}
				scenarios = loaded
			}

			cfg := &pipeline.Config{}
			if configFile != "" {
				loaded, err := pipeline.LoadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.Logger = logger

			p := pipeline.New(cfg)
			outcomes, failures := p.RunAll(scenarios)

			printOutcomes(outcomes)
			printDistribution(outcomes)

			for _, f := range failures {
				logger.Error().
					Str("scenario", f.ScenarioID).
					Str("product", f.Product).
					Msg(f.Message)
			}

			if outputPath != "" {
				if err := exportJSON(outputPath, outcomes, failures); err != nil {
					return err
				}
				fmt.Printf("\nExported %d outcomes to %s\n", len(outcomes), outputPath)
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d of %d scenarios failed", len(failures), len(scenarios))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioFile, "scenarios", "s", "", "YAML scenario file (default: built-in study set)")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML tunables file overriding pipeline defaults")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "export outcomes as JSON to this path")

	return cmd
}

func printOutcomes(outcomes []*pipeline.Outcome) {
	rule := strings.Repeat("=", 80)

	for _, o := range outcomes {
		fmt.Println(rule)
		fmt.Printf("%s  %s\n", o.ScenarioID, o.Product)
		fmt.Println(rule)
		fmt.Printf("Context:    %s\n", o.Context)
		fmt.Printf("Statistics: mean=%.1f cv=%.3f trend=%+.2f momentum=%+.3f\n",
			o.Statistics.Mean, o.Statistics.CoefficientOfVariation,
			o.Statistics.Trend, o.Statistics.Momentum)
		if o.Degraded {
			fmt.Println("Model:      naive fallback (degraded)")
		} else {
			fmt.Printf("Model:      ARIMA%s\n", o.Order)
		}
		fmt.Printf("Forecast:   %s\n", formatSeries(o.RawForecast))
		fmt.Printf("Adjusted:   %s  (%+.1f%%, rule=%s, confidence=%.2f)\n",
			formatSeries(o.AdjustedForecast), o.AdjustmentPct, o.Rule, o.Confidence)
		fmt.Printf("Motif:      %s\n", o.Motif)
		fmt.Println()
		fmt.Printf("  %s\n", o.Standard)
		fmt.Printf("  %s\n", o.Chess)
		fmt.Println()
	}
}

func printDistribution(outcomes []*pipeline.Outcome) {
	dist := pipeline.MotifDistribution(outcomes)

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("MOTIF DISTRIBUTION")
	fmt.Println(strings.Repeat("=", 80))
	for _, label := range motif.Labels {
		if n, ok := dist[label]; ok {
			fmt.Printf("  %-12s %2d  %s\n", label, n, strings.Repeat("#", n))
		}
	}
}

func formatSeries(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// exportJSON writes the batch results for downstream analysis.
func exportJSON(path string, outcomes []*pipeline.Outcome, failures []pipeline.Failure) error {
	export := struct {
		Outcomes []*pipeline.Outcome `json:"outcomes"`
		Failures []pipeline.Failure  `json:"failures,omitempty"`
	}{Outcomes: outcomes, Failures: failures}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
