// Package output - CSV series export
package output

import (
	"encoding/csv"
	"io"

	"github.com/shopspring/decimal"

	"taxcurve/internal/errors"
)

// csvFormatter exports series for spreadsheet and gnuplot consumption
type csvFormatter struct {
	precision int
}

// Format returns the format type
func (f *csvFormatter) Format() Format {
	return FormatCSV
}

// RenderEvaluation renders a single-income evaluation as one record
func (f *csvFormatter) RenderEvaluation(w io.Writer, result *Evaluation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "income", "zone", "tax_amount", "average_rate", "marginal_rate"}); err != nil {
		return errors.Wrap(errors.TypeInternal, "csv write failed", err)
	}
	record := []string{
		decimal.NewFromInt(int64(result.Year)).String(),
		f.number(result.Income),
		result.Zone,
		f.number(result.TaxAmount),
		f.number(result.AverageRate),
		f.number(result.MarginalRate),
	}
	if err := cw.Write(record); err != nil {
		return errors.Wrap(errors.TypeInternal, "csv write failed", err)
	}
	cw.Flush()
	return cw.Error()
}

// RenderSeries renders the sampled points as income,value rows
func (f *csvFormatter) RenderSeries(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"income", string(series.Quantity)}); err != nil {
		return errors.Wrap(errors.TypeInternal, "csv write failed", err)
	}
	for _, p := range series.Points {
		if err := cw.Write([]string{f.number(p.Income), f.number(p.Value)}); err != nil {
			return errors.Wrap(errors.TypeInternal, "csv write failed", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (f *csvFormatter) number(v float64) string {
	return decimal.NewFromFloat(v).Round(int32(f.precision) + 4).String()
}
