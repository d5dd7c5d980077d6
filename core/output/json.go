// Package output - JSON renderer
package output

import (
	"io"

	"github.com/goccy/go-json"
)

// jsonFormatter renders machine-readable JSON. Values pass through at
// full float precision; consumers round for display.
type jsonFormatter struct{}

// Format returns the format type
func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

// RenderEvaluation renders a single-income evaluation
func (f *jsonFormatter) RenderEvaluation(w io.Writer, result *Evaluation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// RenderSeries renders a sampled curve
func (f *jsonFormatter) RenderSeries(w io.Writer, series *Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(series)
}
