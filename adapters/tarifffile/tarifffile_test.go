// Package tarifffile - HCL table loading tests
package tarifffile

import (
	"math"
	"testing"

	"taxcurve/internal/errors"
)

const sampleFile = `
tariff "2025" {
  e0 = 12096
  e1 = 17443
  e2 = 68480
  e3 = 277825

  s1 = 1015.1
  s2 = 18110.4
  s3 = 106035.3

  p1 = 9.3214e-6
  p2 = 1.9164e-6

  sg1 = 0.14
  sg2 = 0.2397
  sg3 = 0.42
  sg4 = 0.45
}

inflation {
  rates = {
    "2024" = 2.2
    "2025" = 2.0
  }
  conversions = {
    "2002" = 0.5112918811962185
  }
}
`

func TestLoadBytes(t *testing.T) {
	tables, err := LoadBytes([]byte(sampleFile), "sample.hcl")
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	params, ok := tables.Tariffs[2025]
	if !ok {
		t.Fatal("missing tariff 2025")
	}
	if params.Year != 2025 {
		t.Errorf("Year = %d, want 2025", params.Year)
	}
	if params.E0 != 12096 || params.E3 != 277825 {
		t.Errorf("thresholds not decoded: %+v", params)
	}
	if math.Abs(params.P1-9.3214e-6) > 1e-15 {
		t.Errorf("P1 = %v, want 9.3214e-6", params.P1)
	}
	if params.SG4 != 0.45 {
		t.Errorf("SG4 = %v, want 0.45", params.SG4)
	}

	if tables.Rates[2025] != 2.0 {
		t.Errorf("rates[2025] = %v, want 2.0", tables.Rates[2025])
	}
	if math.Abs(tables.Conversions[2002]*1.95583-1) > 1e-9 {
		t.Errorf("conversions[2002] = %v, want 1/1.95583", tables.Conversions[2002])
	}
}

func TestLoadBytesWithoutInflationBlock(t *testing.T) {
	src := `
tariff "2024" {
  e0 = 11784
  e1 = 17005
  e2 = 66760
  e3 = 277825
  s1 = 991.2
  s2 = 17403.0
  s3 = 106050.2
  p1 = 9.548e-6
  p2 = 1.8119e-6
  sg1 = 0.14
  sg2 = 0.2397
  sg3 = 0.42
  sg4 = 0.45
}
`
	tables, err := LoadBytes([]byte(src), "tariff-only.hcl")
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if len(tables.Tariffs) != 1 {
		t.Errorf("got %d tariffs, want 1", len(tables.Tariffs))
	}
	if len(tables.Rates) != 0 || len(tables.Conversions) != 0 {
		t.Errorf("expected empty inflation tables, got %d/%d entries", len(tables.Rates), len(tables.Conversions))
	}
}

func TestLoadBytesRejectsBadSyntax(t *testing.T) {
	_, err := LoadBytes([]byte(`tariff "2025" {`), "broken.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestLoadBytesRejectsNonYearLabel(t *testing.T) {
	src := `
tariff "next" {
  e0 = 1
  e1 = 2
  e2 = 3
  e3 = 4
  s1 = 0
  s2 = 0
  s3 = 0
  p1 = 0
  p2 = 0
  sg1 = 0
  sg2 = 0
  sg3 = 0
  sg4 = 0
}
`
	if _, err := LoadBytes([]byte(src), "bad-label.hcl"); !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestLoadBytesRejectsUnorderedThresholds(t *testing.T) {
	src := `
tariff "2025" {
  e0 = 100
  e1 = 50
  e2 = 3000
  e3 = 4000
  s1 = 0
  s2 = 0
  s3 = 0
  p1 = 0
  p2 = 0
  sg1 = 0
  sg2 = 0
  sg3 = 0
  sg4 = 0
}
`
	_, err := LoadBytes([]byte(src), "unordered.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected parsing error, got %v", err)
	}
	t.Logf("correctly rejected: %v", err)
}

func TestLoadBytesRejectsNonYearRateKey(t *testing.T) {
	src := `
inflation {
  rates = {
    "soon" = 2.0
  }
}
`
	if _, err := LoadBytes([]byte(src), "bad-key.hcl"); !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tables.hcl"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
