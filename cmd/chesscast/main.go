// Command chesscast runs demand scenarios through the chess-motif
// forecasting pipeline and prints explained, motif-labeled adjustments.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	outputPath string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chesscast",
		Short: "Explainable demand forecasting with chess-motif narratives",
		Long: `chesscast forecasts product demand with automatically selected ARIMA
models, applies bounded rule-based adjustments, and explains each
adjustment twice: once in plain statistical language and once through
a chess motif analogy.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(forecastCmd())

	return cmd
}

// newLogger builds the console logger; debug level only with --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
