// Package tarifffile loads tariff and inflation tables from HCL files,
// letting callers model jurisdictions beyond the built-in catalog.
//
// File shape:
//
//	tariff "2025" {
//	  e0 = 12096
//	  e1 = 17443
//	  e2 = 68480
//	  e3 = 277825
//	  s1 = 1015.1
//	  s2 = 18110.4
//	  s3 = 106749.7
//	  p1 = 9.3214e-6
//	  p2 = 1.9164e-6
//	  sg1 = 0.14
//	  sg2 = 0.2397
//	  sg3 = 0.42
//	  sg4 = 0.45
//	}
//
//	inflation {
//	  rates = {
//	    "2024" = 2.2
//	    "2025" = 2.0
//	  }
//	  conversions = {
//	    "2002" = 0.5112918811962185
//	  }
//	}
package tarifffile

import (
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"taxcurve/core/schedule"
	"taxcurve/internal/errors"
	"taxcurve/internal/logging"
)

// Tables is the decoded content of a tariff file
type Tables struct {
	// Tariffs maps tariff year to its parameter record
	Tariffs map[int]schedule.Params

	// Rates maps year to annual inflation percent
	Rates map[int]float64

	// Conversions maps year to redenomination factor
	Conversions map[int]float64
}

// fileContent mirrors the HCL file structure
type fileContent struct {
	Tariffs   []tariffBlock   `hcl:"tariff,block"`
	Inflation *inflationBlock `hcl:"inflation,block"`
}

// tariffBlock is one tariff year declaration
type tariffBlock struct {
	Year string  `hcl:"year,label"`
	E0   float64 `hcl:"e0"`
	E1   float64 `hcl:"e1"`
	E2   float64 `hcl:"e2"`
	E3   float64 `hcl:"e3"`
	S1   float64 `hcl:"s1"`
	S2   float64 `hcl:"s2"`
	S3   float64 `hcl:"s3"`
	P1   float64 `hcl:"p1"`
	P2   float64 `hcl:"p2"`
	SG1  float64 `hcl:"sg1"`
	SG2  float64 `hcl:"sg2"`
	SG3  float64 `hcl:"sg3"`
	SG4  float64 `hcl:"sg4"`
}

// inflationBlock carries the year-keyed tables as raw expressions; HCL
// object keys are strings, so the year keys are decoded by hand below.
type inflationBlock struct {
	Rates       hcl.Expression `hcl:"rates"`
	Conversions hcl.Expression `hcl:"conversions,optional"`
}

// Load parses a tariff file
func Load(path string) (*Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse tariff file "+path, diags)
	}
	return decode(file.Body, path)
}

// LoadBytes parses tariff file content held in memory
func LoadBytes(src []byte, filename string) (*Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse tariff file "+filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Tables, error) {
	var content fileContent
	if diags := gohcl.DecodeBody(body, nil, &content); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode tariff file "+filename, diags)
	}

	tables := &Tables{
		Tariffs:     make(map[int]schedule.Params, len(content.Tariffs)),
		Rates:       map[int]float64{},
		Conversions: map[int]float64{},
	}

	for _, block := range content.Tariffs {
		year, err := strconv.Atoi(block.Year)
		if err != nil {
			return nil, errors.Parsing("tariff label must be a year, got "+block.Year, err)
		}
		params := schedule.Params{
			Year: year,
			E0:   block.E0, E1: block.E1, E2: block.E2, E3: block.E3,
			S1: block.S1, S2: block.S2, S3: block.S3,
			P1: block.P1, P2: block.P2,
			SG1: block.SG1, SG2: block.SG2, SG3: block.SG3, SG4: block.SG4,
		}
		// Reject records the engine would also reject, with file context.
		if _, err := schedule.New(params); err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "tariff %d in %s", year, filename)
		}
		tables.Tariffs[year] = params
	}

	if content.Inflation != nil {
		var err error
		tables.Rates, err = decodeYearMap(content.Inflation.Rates, "rates")
		if err != nil {
			return nil, err
		}
		tables.Conversions, err = decodeYearMap(content.Inflation.Conversions, "conversions")
		if err != nil {
			return nil, err
		}
	}

	logging.Debug("loaded tariff file",
		zap.String("file", filename),
		zap.Int("tariffs", len(tables.Tariffs)),
		zap.Int("rate_years", len(tables.Rates)))
	return tables, nil
}

// decodeYearMap converts an HCL object expression with stringified year
// keys into a year-keyed float map. Unknown or non-numeric values are
// rejected rather than passed through.
func decodeYearMap(expr hcl.Expression, attr string) (map[int]float64, error) {
	if expr == nil {
		return map[int]float64{}, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to evaluate "+attr, diags)
	}
	if val.IsNull() {
		return map[int]float64{}, nil
	}
	if !val.IsKnown() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, errors.Newf(errors.TypeParsing, "%s must be an object of year = number", attr)
	}

	out := make(map[int]float64)
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		year, err := strconv.Atoi(key.AsString())
		if err != nil {
			return nil, errors.Parsing(attr+" key must be a year, got "+key.AsString(), err)
		}
		if elem.Type() != cty.Number {
			return nil, errors.Newf(errors.TypeParsing, "%s[%d] must be a number", attr, year)
		}
		f, _ := elem.AsBigFloat().Float64()
		out[year] = f
	}
	return out, nil
}
