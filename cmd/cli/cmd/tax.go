// Package cmd - tax command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"taxcurve/core/output"
	"taxcurve/internal/config"
)

var (
	taxYear     int
	taxIncome   float64
	taxRealYear int
	taxFormat   string
)

// taxCmd evaluates a single income against a tariff year
var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute tax amount, average rate and marginal rate",
	Long: `Evaluate the tariff of a year for one taxable income.

With --real-year the income and tax amount are additionally restated at
that year's price level using the inflation tables.

Examples:
  taxcurve tax --year 2023 --income 50000
  taxcurve tax --year 2010 --income 40000 --real-year 2023
  taxcurve tax --year 2024 --income 85000 --format json`,
	RunE: runTax,
}

func init() {
	taxCmd.Flags().IntVarP(&taxYear, "year", "y", 0, "tariff year (required)")
	taxCmd.Flags().Float64VarP(&taxIncome, "income", "i", 0, "taxable income (required)")
	taxCmd.Flags().IntVar(&taxRealYear, "real-year", 0, "restate amounts at this year's price level")
	taxCmd.Flags().StringVarP(&taxFormat, "format", "f", "", "output format (cli, json, csv)")
	_ = taxCmd.MarkFlagRequired("year")
	_ = taxCmd.MarkFlagRequired("income")
}

func runTax(cmd *cobra.Command, args []string) error {
	s, err := resolveSchedule(taxYear)
	if err != nil {
		return err
	}

	amount, err := s.TaxAmount(taxIncome)
	if err != nil {
		return err
	}
	average, err := s.AverageRate(taxIncome)
	if err != nil {
		return err
	}
	marginal, err := s.MarginalRate(taxIncome)
	if err != nil {
		return err
	}
	zone, err := s.ZoneOf(taxIncome)
	if err != nil {
		return err
	}

	result := &output.Evaluation{
		Year:         taxYear,
		Income:       taxIncome,
		Zone:         zone.String(),
		TaxAmount:    amount,
		AverageRate:  average,
		MarginalRate: marginal,
	}

	// Price-level restatement is plain orchestration on top of the two
	// engines; the schedule itself knows nothing about inflation.
	if taxRealYear != 0 {
		adjuster, err := resolveAdjuster()
		if err != nil {
			return err
		}
		adjustedIncome, err := adjuster.Adjust(taxIncome, taxYear, taxRealYear)
		if err != nil {
			return err
		}
		adjustedAmount, err := adjuster.Adjust(amount, taxYear, taxRealYear)
		if err != nil {
			return err
		}
		result.PriceLevelYear = taxRealYear
		result.AdjustedIncome = adjustedIncome
		result.AdjustedTaxAmount = adjustedAmount
	}

	formatter, err := newFormatter(taxFormat)
	if err != nil {
		return err
	}
	return formatter.RenderEvaluation(os.Stdout, result)
}

// newFormatter resolves the flag against the configured default
func newFormatter(flag string) (output.Formatter, error) {
	cfg := config.Get()
	format := cfg.Output.DefaultFormat
	if flag != "" {
		format = flag
	}
	return output.New(output.Format(format), cfg.Output.Precision)
}
