package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/chesscast/forecast"
	"github.com/sartorproj/chesscast/pipeline"
	"github.com/sartorproj/chesscast/scenario"
	"github.com/sartorproj/chesscast/timeseries"
)

func forecastCmd() *cobra.Command {
	var (
		column  string
		product string
		context string
		horizon int
	)

	cmd := &cobra.Command{
		Use:   "forecast <demand.csv>",
		Short: "Forecast a single demand series from a CSV file",
		Long: `Forecast loads one demand series from a CSV file, runs it through
the pipeline, and prints the explained adjustment. The CSV needs a
demand column (configurable with --column) and optionally a period
column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			series, err := timeseries.LoadCSVColumn(args[0], column)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			series.Name = product

			fcfg := forecast.DefaultConfig()
			if horizon > 0 {
				fcfg.Horizon = horizon
			}

			p := pipeline.New(&pipeline.Config{
				Forecast: fcfg,
				Logger:   logger,
			})

			outcome, err := p.Run(&scenario.Scenario{
				ID:      "CSV",
				Product: product,
				Context: context,
				Series:  series,
			})
			if err != nil {
				return err
			}

			printOutcomes([]*pipeline.Outcome{outcome})

			if outputPath != "" {
				data, err := json.MarshalIndent(outcome, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal outcome: %w", err)
				}
				if err := os.WriteFile(outputPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
				fmt.Printf("\nExported outcome to %s\n", outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "demand", "CSV column holding demand values")
	cmd.Flags().StringVarP(&product, "product", "p", "Product", "product name used in explanations")
	cmd.Flags().StringVar(&context, "context", "", "scenario context shown in the report")
	cmd.Flags().IntVar(&horizon, "horizon", forecast.DefaultHorizon, "forecast horizon in periods")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "export the outcome as JSON to this path")

	return cmd
}
