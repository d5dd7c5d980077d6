// Package output - CLI table renderer
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// cliFormatter renders human-readable tables
type cliFormatter struct {
	precision int
}

// Format returns the format type
func (f *cliFormatter) Format() Format {
	return FormatCLI
}

// money rounds a float for display without the binary-fraction artifacts
// of %.2f on large amounts
func (f *cliFormatter) money(v float64) string {
	return decimal.NewFromFloat(v).Round(int32(f.precision)).StringFixed(int32(f.precision))
}

// percent renders a 0..1 rate as a percentage
func (f *cliFormatter) percent(v float64) string {
	return decimal.NewFromFloat(v * 100).Round(2).StringFixed(2) + " %"
}

// RenderEvaluation renders a single-income evaluation
func (f *cliFormatter) RenderEvaluation(w io.Writer, result *Evaluation) error {
	fmt.Fprintf(w, "Tariff year:    %d\n", result.Year)
	fmt.Fprintf(w, "Taxable income: %s\n", f.money(result.Income))
	fmt.Fprintf(w, "Zone:           %s\n", result.Zone)
	fmt.Fprintf(w, "Tax amount:     %s\n", f.money(result.TaxAmount))
	fmt.Fprintf(w, "Average rate:   %s\n", f.percent(result.AverageRate))
	fmt.Fprintf(w, "Marginal rate:  %s\n", f.percent(result.MarginalRate))
	if result.PriceLevelYear != 0 {
		fmt.Fprintf(w, "\nAt %d price level:\n", result.PriceLevelYear)
		fmt.Fprintf(w, "Income:         %s\n", f.money(result.AdjustedIncome))
		fmt.Fprintf(w, "Tax amount:     %s\n", f.money(result.AdjustedTaxAmount))
	}
	return nil
}

// RenderSeries renders a sampled curve as an aligned two-column table
func (f *cliFormatter) RenderSeries(w io.Writer, series *Series) error {
	fmt.Fprintf(w, "# %s curve, tariff year %d, %d points\n", series.Quantity, series.Year, len(series.Points))
	for _, p := range series.Points {
		fmt.Fprintf(w, "%14s  %s\n", f.money(p.Income), f.money(p.Value))
	}
	return nil
}
