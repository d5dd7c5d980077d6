// Package output provides output formatting interfaces.
// This package renders engine results for humans and machines; all
// rounding happens here, never in the engines.
package output

import (
	"io"

	"taxcurve/core/sampling"
	"taxcurve/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is a two-column series export for plotting tools
	FormatCSV Format = "csv"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderEvaluation renders a single-income evaluation
	RenderEvaluation(w io.Writer, result *Evaluation) error

	// RenderSeries renders a sampled curve
	RenderSeries(w io.Writer, series *Series) error
}

// Evaluation is the complete result of evaluating one income against a
// tariff year, optionally restated at another year's price level.
type Evaluation struct {
	// Year is the tariff year
	Year int `json:"year"`

	// Income is the taxable income evaluated
	Income float64 `json:"income"`

	// Zone names the tariff zone the income falls into
	Zone string `json:"zone"`

	// TaxAmount is the tax owed
	TaxAmount float64 `json:"tax_amount"`

	// AverageRate is tax divided by income
	AverageRate float64 `json:"average_rate"`

	// MarginalRate is the rate on the next unit of income
	MarginalRate float64 `json:"marginal_rate"`

	// PriceLevelYear is the year whose purchasing power the adjusted
	// figures are expressed in, when an adjustment was requested
	PriceLevelYear int `json:"price_level_year,omitempty"`

	// AdjustedIncome is Income restated at PriceLevelYear
	AdjustedIncome float64 `json:"adjusted_income,omitempty"`

	// AdjustedTaxAmount is TaxAmount restated at PriceLevelYear
	AdjustedTaxAmount float64 `json:"adjusted_tax_amount,omitempty"`
}

// Series is a sampled curve plus its provenance
type Series struct {
	// Year is the tariff year sampled
	Year int `json:"year"`

	// Quantity names the sampled schedule function
	Quantity sampling.Quantity `json:"quantity"`

	// Points holds the sampled (income, value) pairs
	Points []sampling.Point `json:"points"`
}

// New returns the formatter for a format name
func New(format Format, precision int) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{precision: precision}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatCSV:
		return &csvFormatter{precision: precision}, nil
	default:
		return nil, errors.Inputf("unknown output format %q", format)
	}
}
