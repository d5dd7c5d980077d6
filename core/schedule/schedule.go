// Package schedule provides the progressive income-tax engine.
// A Schedule evaluates tax amount, average rate and marginal rate for a
// single tax year from a five-zone piecewise tariff. Schedules are
// immutable after construction and safe for concurrent use.
package schedule

import (
	"taxcurve/internal/errors"
)

// Params is the complete parameter record of one tariff year.
//
// The four thresholds bound the zones from above: incomes up to E0 are
// tax free, E0..E1 and E1..E2 are the progressive zones, E2..E3 and
// everything above E3 are the proportional zones. S1, S2 and S3 are the
// cumulative tax amounts owed exactly at E1, E2 and E3; when they are
// derived from the other coefficients the tax-amount curve is continuous
// at every threshold. The engine does not verify continuity (see
// Validate), only threshold ordering.
type Params struct {
	// Year is the calendar year the parameters apply to
	Year int `json:"year"`

	// E0 is the upper bound of the tax-free allowance
	E0 float64 `json:"e0"`

	// E1 is the upper bound of the first progressive zone
	E1 float64 `json:"e1"`

	// E2 is the upper bound of the second progressive zone
	E2 float64 `json:"e2"`

	// E3 is the upper bound of the first proportional zone
	E3 float64 `json:"e3"`

	// S1 is the cumulative tax owed at E1
	S1 float64 `json:"s1"`

	// S2 is the cumulative tax owed at E2
	S2 float64 `json:"s2"`

	// S3 is the cumulative tax owed at E3
	S3 float64 `json:"s3"`

	// P1 is the progression coefficient of the first progressive zone
	P1 float64 `json:"p1"`

	// P2 is the progression coefficient of the second progressive zone
	P2 float64 `json:"p2"`

	// SG1 is the marginal rate at the start of the first progressive zone
	SG1 float64 `json:"sg1"`

	// SG2 is the marginal rate at the start of the second progressive zone
	SG2 float64 `json:"sg2"`

	// SG3 is the marginal rate of the first proportional zone
	SG3 float64 `json:"sg3"`

	// SG4 is the marginal rate of the top proportional zone
	SG4 float64 `json:"sg4"`
}

// continuityTolerance bounds the drift accepted by Validate between the
// supplied anchors and the anchors recomputed from the zone formulas.
const continuityTolerance = 0.5

// Validate performs the optional deep parameter check: continuity of the
// tax amount at every threshold, continuity of the marginal rate at the
// progressive-zone boundaries, and monotonic marginal anchors. New does
// not call it; a tariff record that fails Validate still evaluates, it
// just produces a discontinuous or non-monotonic curve.
func (p Params) Validate() error {
	d1 := p.E1 - p.E0
	s1 := p.SG1*d1 + p.P1*d1*d1
	if diff := s1 - p.S1; diff > continuityTolerance || diff < -continuityTolerance {
		return errors.Inputf("tariff %d: S1 %.2f breaks continuity at E1 (formula gives %.2f)", p.Year, p.S1, s1)
	}
	d2 := p.E2 - p.E1
	s2 := p.SG2*d2 + p.P2*d2*d2 + p.S1
	if diff := s2 - p.S2; diff > continuityTolerance || diff < -continuityTolerance {
		return errors.Inputf("tariff %d: S2 %.2f breaks continuity at E2 (formula gives %.2f)", p.Year, p.S2, s2)
	}
	s3 := p.SG3*(p.E3-p.E2) + p.S2
	if diff := s3 - p.S3; diff > continuityTolerance || diff < -continuityTolerance {
		return errors.Inputf("tariff %d: S3 %.2f breaks continuity at E3 (formula gives %.2f)", p.Year, p.S3, s3)
	}
	if !(p.SG1 >= 0 && p.SG1 <= p.SG2 && p.SG2 <= p.SG3 && p.SG3 <= p.SG4 && p.SG4 <= 1) {
		return errors.Inputf("tariff %d: marginal anchors not monotonic in [0,1]", p.Year)
	}
	return nil
}

// Schedule evaluates the tariff of one year
type Schedule struct {
	params Params
}

// New creates a schedule from a parameter record. The thresholds must be
// strictly ascending and non-negative; no other invariant is checked.
func New(p Params) (*Schedule, error) {
	if !(p.E0 >= 0 && p.E0 < p.E1 && p.E1 < p.E2 && p.E2 < p.E3) {
		return nil, errors.Inputf("tariff %d: thresholds must satisfy 0 <= E0 < E1 < E2 < E3", p.Year)
	}
	return &Schedule{params: p}, nil
}

// Year returns the tariff year
func (s *Schedule) Year() int {
	return s.params.Year
}

// Params returns a copy of the parameter record
func (s *Schedule) Params() Params {
	return s.params
}

// Thresholds returns the four zone upper bounds [E0, E1, E2, E3]
func (s *Schedule) Thresholds() [4]float64 {
	return [4]float64{s.params.E0, s.params.E1, s.params.E2, s.params.E3}
}

// MarginalAnchors returns the marginal rates [SG1, SG2, SG3, SG4] at the
// start of zones 1..4, matching Thresholds index-wise
func (s *Schedule) MarginalAnchors() [4]float64 {
	return [4]float64{s.params.SG1, s.params.SG2, s.params.SG3, s.params.SG4}
}

// TaxAmount computes the tax owed for a non-negative income. Each zone
// formula references only the offset from its own lower boundary plus the
// cumulative tax already owed at that boundary.
func (s *Schedule) TaxAmount(income float64) (float64, error) {
	if income < 0 {
		return 0, errors.Inputf("income must be non-negative, got %.2f", income)
	}
	zone, err := s.zoneFor(income)
	if err != nil {
		return 0, err
	}
	p := s.params
	switch zone {
	case ZoneAllowance:
		return 0, nil
	case ZoneProgression1:
		d := income - p.E0
		return p.SG1*d + p.P1*d*d, nil
	case ZoneProgression2:
		d := income - p.E1
		return p.SG2*d + p.P2*d*d + p.S1, nil
	case ZoneProportional1:
		return p.SG3*(income-p.E2) + p.S2, nil
	case ZoneProportional2:
		return p.SG4*(income-p.E3) + p.S3, nil
	}
	return 0, errors.Internal("unhandled tariff zone").WithContext("zone", zone)
}

// AverageRate computes tax divided by income, with 0 at income 0
func (s *Schedule) AverageRate(income float64) (float64, error) {
	if income < 0 {
		return 0, errors.Inputf("income must be non-negative, got %.2f", income)
	}
	if income == 0 {
		return 0, nil
	}
	amount, err := s.TaxAmount(income)
	if err != nil {
		return 0, err
	}
	return amount / income, nil
}

// MarginalRate computes the zone-wise derivative of TaxAmount
func (s *Schedule) MarginalRate(income float64) (float64, error) {
	if income < 0 {
		return 0, errors.Inputf("income must be non-negative, got %.2f", income)
	}
	zone, err := s.zoneFor(income)
	if err != nil {
		return 0, err
	}
	p := s.params
	switch zone {
	case ZoneAllowance:
		return 0, nil
	case ZoneProgression1:
		return p.SG1 + 2*p.P1*(income-p.E0), nil
	case ZoneProgression2:
		return p.SG2 + 2*p.P2*(income-p.E1), nil
	case ZoneProportional1:
		return p.SG3, nil
	case ZoneProportional2:
		return p.SG4, nil
	}
	return 0, errors.Internal("unhandled tariff zone").WithContext("zone", zone)
}

// ZoneOf reports which zone an income falls into
func (s *Schedule) ZoneOf(income float64) (Zone, error) {
	if income < 0 {
		return ZoneAllowance, errors.Inputf("income must be non-negative, got %.2f", income)
	}
	return s.zoneFor(income)
}
