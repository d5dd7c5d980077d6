// Package sampling builds chart-ready point series from a tax schedule.
package sampling

import (
	"taxcurve/core/schedule"
	"taxcurve/internal/errors"
)

// Point is one sampled (income, value) pair
type Point struct {
	// Income is the x coordinate
	Income float64 `json:"income"`

	// Value is the sampled quantity at Income
	Value float64 `json:"value"`
}

// Quantity selects which schedule function is sampled
type Quantity string

const (
	// QuantityTax samples the tax amount
	QuantityTax Quantity = "tax"

	// QuantityAverageRate samples tax divided by income
	QuantityAverageRate Quantity = "average"

	// QuantityMarginalRate samples the zone-wise derivative
	QuantityMarginalRate Quantity = "marginal"
)

// DefaultPoints is the sample count used when the caller passes n <= 0
const DefaultPoints = 200

// Curve samples a schedule quantity over [start, end]. The bounds must
// bracket the tariff: start in [0, E0] and end >= E3, so every zone is
// visible in the plot.
//
// Tax amount and average rate are sampled at n evenly spaced incomes.
// The marginal rate is piecewise linear between the four threshold
// anchors, so the anchors are returned exactly, framed by synthetic
// points at start and end that let the plotted curve flatten.
func Curve(s *schedule.Schedule, q Quantity, start, end float64, n int) ([]Point, error) {
	t := s.Thresholds()
	if start < 0 || start > t[0] {
		return nil, errors.Inputf("start %.2f must lie in [0, %.2f]", start, t[0])
	}
	if end < t[3] {
		return nil, errors.Inputf("end %.2f must be >= top threshold %.2f", end, t[3])
	}

	var eval func(float64) (float64, error)
	switch q {
	case QuantityMarginalRate:
		return marginalAnchorPoints(s, start, end), nil
	case QuantityTax:
		eval = s.TaxAmount
	case QuantityAverageRate:
		eval = s.AverageRate
	default:
		return nil, errors.Inputf("unknown quantity %q", q)
	}

	if n <= 0 {
		n = DefaultPoints
	}
	if n < 2 {
		n = 2
	}

	points := make([]Point, 0, n)
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		income := start + float64(i)*step
		if i == n-1 {
			income = end
		}
		value, err := eval(income)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Income: income, Value: value})
	}
	return points, nil
}

// marginalAnchorPoints returns the exact breakpoints of the marginal-rate
// curve instead of a dense sample.
func marginalAnchorPoints(s *schedule.Schedule, start, end float64) []Point {
	t := s.Thresholds()
	sg := s.MarginalAnchors()
	return []Point{
		{Income: start, Value: 0},
		{Income: t[0], Value: sg[0]},
		{Income: t[1], Value: sg[1]},
		{Income: t[2], Value: sg[2]},
		{Income: t[3], Value: sg[3]},
		{Income: end, Value: sg[3]},
	}
}
