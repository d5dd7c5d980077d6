// Package cmd - adjust command
package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"taxcurve/internal/config"
)

var (
	adjustFrom int
	adjustTo   int
)

// adjustCmd converts an amount between price-level years
var adjustCmd = &cobra.Command{
	Use:   "adjust <amount>",
	Short: "Convert an amount between price-level years",
	Long: `Convert an amount from one year's price level to another's by
compounding the annual inflation rates, applying redenomination factors
(DM to euro in 2002) when their year is crossed.

Examples:
  taxcurve adjust 100 --from 2003 --to 2005
  taxcurve adjust 1000 --from 2023 --to 1999`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().IntVar(&adjustFrom, "from", 0, "price-level year of the amount (required)")
	adjustCmd.Flags().IntVar(&adjustTo, "to", 0, "target price-level year (required)")
	_ = adjustCmd.MarkFlagRequired("from")
	_ = adjustCmd.MarkFlagRequired("to")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", args[0])
	}

	adjuster, err := resolveAdjuster()
	if err != nil {
		return err
	}

	adjusted, err := adjuster.Adjust(amount, adjustFrom, adjustTo)
	if err != nil {
		return err
	}

	precision := int32(config.Get().Output.Precision)
	fmt.Printf("%s (%d) = %s (%d)\n",
		decimal.NewFromFloat(amount).Round(precision).StringFixed(precision), adjustFrom,
		decimal.NewFromFloat(adjusted).Round(precision).StringFixed(precision), adjustTo)
	return nil
}
