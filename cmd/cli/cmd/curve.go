// Package cmd - curve command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"taxcurve/core/output"
	"taxcurve/core/sampling"
	"taxcurve/internal/config"
)

var (
	curveYear     int
	curveQuantity string
	curveStart    float64
	curveEnd      float64
	curvePoints   int
	curveFormat   string
)

// curveCmd samples a schedule function for charting
var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sample a tariff curve as (income, value) points",
	Long: `Produce a chart-ready series for the tax amount, average rate or
marginal rate of a tariff year.

The marginal-rate curve is returned as its exact breakpoints rather than
a dense sample. Start defaults to 0 and end to 300000.

Examples:
  taxcurve curve --year 2023 --quantity tax
  taxcurve curve --year 2023 --quantity marginal --format csv
  taxcurve curve --year 2024 --quantity average --points 500 --end 400000`,
	RunE: runCurve,
}

func init() {
	curveCmd.Flags().IntVarP(&curveYear, "year", "y", 0, "tariff year (required)")
	curveCmd.Flags().StringVarP(&curveQuantity, "quantity", "q", "tax", "quantity to sample (tax, average, marginal)")
	curveCmd.Flags().Float64Var(&curveStart, "start", 0, "first sampled income")
	curveCmd.Flags().Float64Var(&curveEnd, "end", 300000, "last sampled income")
	curveCmd.Flags().IntVarP(&curvePoints, "points", "n", 0, "sample count (default from config)")
	curveCmd.Flags().StringVarP(&curveFormat, "format", "f", "", "output format (cli, json, csv)")
	_ = curveCmd.MarkFlagRequired("year")
}

func runCurve(cmd *cobra.Command, args []string) error {
	s, err := resolveSchedule(curveYear)
	if err != nil {
		return err
	}

	n := curvePoints
	if n <= 0 {
		n = config.Get().Output.Points
	}

	points, err := sampling.Curve(s, sampling.Quantity(curveQuantity), curveStart, curveEnd, n)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(curveFormat)
	if err != nil {
		return err
	}
	return formatter.RenderSeries(os.Stdout, &output.Series{
		Year:     curveYear,
		Quantity: sampling.Quantity(curveQuantity),
		Points:   points,
	})
}
