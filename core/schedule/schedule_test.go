// Package schedule - Tariff engine tests
// These tests pin the piecewise formulas to independently computed
// values and prove the continuity and monotonicity properties hold for
// a correctly anchored parameter set.
package schedule

import (
	"math"
	"testing"

	"taxcurve/internal/errors"
)

// tariff2023 is the 2023 parameter record with full-precision anchors
func tariff2023() Params {
	return Params{
		Year: 2023,
		E0:   10908, E1: 15999, E2: 62809, E3: 277825,
		S1: 966.5266238958002, S2: 16406.8696748858, S3: 106713.58967488579,
		P1: 979.18e-8, P2: 192.59e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	}
}

func mustSchedule(t *testing.T, p Params) *Schedule {
	t.Helper()
	s, err := New(p)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNewRejectsUnorderedThresholds(t *testing.T) {
	p := tariff2023()
	p.E1 = p.E2 + 1
	if _, err := New(p); err == nil {
		t.Fatal("expected error for non-ascending thresholds")
	} else if !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("expected input error, got %v", err)
	}

	p = tariff2023()
	p.E0 = -1
	if _, err := New(p); err == nil {
		t.Fatal("expected error for negative E0")
	}
}

func TestTaxAmountKnownValues(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	cases := []struct {
		income float64
		want   float64
	}{
		{0, 0},
		{10908, 0},   // exactly at the allowance bound
		{15000, 736.8384425952},
		{15999, 966.5266238958}, // equals S1 at E1
		{30000, 4700.0966510217},
		{50000, 11343.0376870217},
		{62809, 16406.8696748858}, // equals S2 at E2
		{100000, 32027.0896748858},
		{277825, 106713.5896748858}, // equals S3 at E3
		{300000, 116692.3396748858},
	}
	for _, tc := range cases {
		got, err := s.TaxAmount(tc.income)
		if err != nil {
			t.Fatalf("TaxAmount(%.0f) failed: %v", tc.income, err)
		}
		if !almostEqual(got, tc.want, 1e-6) {
			t.Errorf("TaxAmount(%.0f) = %.7f, want %.7f", tc.income, got, tc.want)
		}
	}
}

func TestTaxAmountContinuityAtThresholds(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	const epsilon = 1e-6
	for _, threshold := range s.Thresholds() {
		below, err := s.TaxAmount(threshold - epsilon)
		if err != nil {
			t.Fatalf("TaxAmount below %.0f failed: %v", threshold, err)
		}
		at, err := s.TaxAmount(threshold)
		if err != nil {
			t.Fatalf("TaxAmount at %.0f failed: %v", threshold, err)
		}
		above, err := s.TaxAmount(threshold + epsilon)
		if err != nil {
			t.Fatalf("TaxAmount above %.0f failed: %v", threshold, err)
		}
		if !almostEqual(below, at, 1e-4) || !almostEqual(above, at, 1e-4) {
			t.Errorf("discontinuity at %.0f: below=%.6f at=%.6f above=%.6f", threshold, below, at, above)
		}
	}
}

func TestTaxAmountMonotonic(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	previous := -1.0
	for income := 0.0; income <= 400000; income += 97 {
		amount, err := s.TaxAmount(income)
		if err != nil {
			t.Fatalf("TaxAmount(%.0f) failed: %v", income, err)
		}
		if amount < previous {
			t.Fatalf("tax decreased at income %.0f: %.6f < %.6f", income, amount, previous)
		}
		previous = amount
	}
}

func TestMarginalRateMatchesNumericDerivative(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	// Sample away from the breakpoints; the derivative is not defined
	// there.
	const h = 0.5
	for income := 500.0; income <= 350000; income += 1009 {
		nearBreak := false
		for _, threshold := range s.Thresholds() {
			if math.Abs(income-threshold) < 2*h {
				nearBreak = true
				break
			}
		}
		if nearBreak {
			continue
		}

		lo, err := s.TaxAmount(income - h)
		if err != nil {
			t.Fatalf("TaxAmount failed: %v", err)
		}
		hi, err := s.TaxAmount(income + h)
		if err != nil {
			t.Fatalf("TaxAmount failed: %v", err)
		}
		numeric := (hi - lo) / (2 * h)

		analytic, err := s.MarginalRate(income)
		if err != nil {
			t.Fatalf("MarginalRate(%.0f) failed: %v", income, err)
		}
		if !almostEqual(numeric, analytic, 1e-6) {
			t.Errorf("marginal rate mismatch at %.0f: numeric %.8f analytic %.8f", income, numeric, analytic)
		}
	}
}

func TestMarginalRateAnchors(t *testing.T) {
	s := mustSchedule(t, tariff2023())
	p := tariff2023()

	// Just above E0 the rate is the entry rate; at E1 and E2 the zones
	// hand over at SG2 and SG3; beyond E3 the top rate applies.
	got, _ := s.MarginalRate(p.E0 + 1e-9)
	if !almostEqual(got, p.SG1, 1e-6) {
		t.Errorf("rate above E0 = %.6f, want %.6f", got, p.SG1)
	}
	got, _ = s.MarginalRate(p.E1)
	if !almostEqual(got, p.SG2, 1e-4) {
		t.Errorf("rate at E1 = %.6f, want %.6f", got, p.SG2)
	}
	got, _ = s.MarginalRate(p.E2)
	if !almostEqual(got, p.SG3, 1e-4) {
		t.Errorf("rate at E2 = %.6f, want %.6f", got, p.SG3)
	}
	got, _ = s.MarginalRate(p.E3 + 1)
	if !almostEqual(got, p.SG4, 1e-9) {
		t.Errorf("rate above E3 = %.6f, want %.6f", got, p.SG4)
	}
	got, _ = s.MarginalRate(p.E0 / 2)
	if got != 0 {
		t.Errorf("rate inside allowance = %.6f, want 0", got)
	}
}

func TestNegativeIncomeRejected(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	if _, err := s.TaxAmount(-1); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("TaxAmount(-1): expected input error, got %v", err)
	}
	if _, err := s.AverageRate(-1); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("AverageRate(-1): expected input error, got %v", err)
	}
	if _, err := s.MarginalRate(-1); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("MarginalRate(-1): expected input error, got %v", err)
	}
	if _, err := s.ZoneOf(-1); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("ZoneOf(-1): expected input error, got %v", err)
	}
}

func TestAverageRateZeroIncome(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	rate, err := s.AverageRate(0)
	if err != nil {
		t.Fatalf("AverageRate(0) failed: %v", err)
	}
	if rate != 0 {
		t.Errorf("AverageRate(0) = %.6f, want 0", rate)
	}
}

func TestAverageRateKnownValue(t *testing.T) {
	s := mustSchedule(t, tariff2023())

	rate, err := s.AverageRate(50000)
	if err != nil {
		t.Fatalf("AverageRate failed: %v", err)
	}
	if !almostEqual(rate, 0.2268607537, 1e-9) {
		t.Errorf("AverageRate(50000) = %.10f, want 0.2268607537", rate)
	}
}

func TestZoneDispatch(t *testing.T) {
	s := mustSchedule(t, tariff2023())
	p := tariff2023()

	cases := []struct {
		income float64
		want   Zone
	}{
		{0, ZoneAllowance},
		{p.E0, ZoneAllowance},
		{p.E0 + 1, ZoneProgression1},
		{p.E1, ZoneProgression1},
		{p.E1 + 1, ZoneProgression2},
		{p.E2, ZoneProgression2},
		{p.E2 + 1, ZoneProportional1},
		{p.E3, ZoneProportional1},
		{p.E3 + 1, ZoneProportional2},
	}
	for _, tc := range cases {
		zone, err := s.ZoneOf(tc.income)
		if err != nil {
			t.Fatalf("ZoneOf(%.0f) failed: %v", tc.income, err)
		}
		if zone != tc.want {
			t.Errorf("ZoneOf(%.0f) = %s, want %s", tc.income, zone, tc.want)
		}
	}
}

func TestValidateAcceptsConsistentParams(t *testing.T) {
	if err := tariff2023().Validate(); err != nil {
		t.Fatalf("consistent params rejected: %v", err)
	}
}

func TestValidateRejectsBrokenAnchor(t *testing.T) {
	p := tariff2023()
	p.S2 += 100
	err := p.Validate()
	if err == nil {
		t.Fatal("expected continuity violation")
	}
	t.Logf("correctly rejected: %v", err)
}

func TestAccessors(t *testing.T) {
	s := mustSchedule(t, tariff2023())
	p := tariff2023()

	thresholds := s.Thresholds()
	want := [4]float64{p.E0, p.E1, p.E2, p.E3}
	if thresholds != want {
		t.Errorf("Thresholds() = %v, want %v", thresholds, want)
	}

	anchors := s.MarginalAnchors()
	wantAnchors := [4]float64{p.SG1, p.SG2, p.SG3, p.SG4}
	if anchors != wantAnchors {
		t.Errorf("MarginalAnchors() = %v, want %v", anchors, wantAnchors)
	}

	if s.Year() != 2023 {
		t.Errorf("Year() = %d, want 2023", s.Year())
	}
}
