// Package inflation provides the price-level adjustment engine.
// An Adjuster converts monetary amounts between years by compounding a
// contiguous table of annual inflation rates, applying sparse one-time
// currency-conversion factors when their year is crossed. Adjusters are
// immutable after construction and safe for concurrent use.
package inflation

import (
	"taxcurve/internal/errors"
)

// Adjuster converts amounts between price-level years
type Adjuster struct {
	rates       map[int]float64
	conversions map[int]float64
	minYear     int
	maxYear     int
}

// New creates an adjuster from an inflation-rate table (year to annual
// percent) and an optional table of redenomination factors (year to
// multiplier). The rate table must be non-empty and cover a contiguous
// year range. Conversion years may be sparse and are only consulted when
// an adjustment crosses them.
func New(rates map[int]float64, conversions map[int]float64) (*Adjuster, error) {
	if len(rates) == 0 {
		return nil, errors.Input("inflation rate table must not be empty")
	}
	minYear, maxYear := 0, 0
	first := true
	for year := range rates {
		if first {
			minYear, maxYear = year, year
			first = false
			continue
		}
		if year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	for year := minYear; year <= maxYear; year++ {
		if _, ok := rates[year]; !ok {
			return nil, errors.Inputf("inflation rate table has a gap at year %d", year)
		}
	}

	a := &Adjuster{
		rates:       make(map[int]float64, len(rates)),
		conversions: make(map[int]float64, len(conversions)),
		minYear:     minYear,
		maxYear:     maxYear,
	}
	for year, rate := range rates {
		a.rates[year] = rate
	}
	for year, factor := range conversions {
		a.conversions[year] = factor
	}
	return a, nil
}

// Range returns the first and last year covered by the rate table
func (a *Adjuster) Range() (minYear, maxYear int) {
	return a.minYear, a.maxYear
}

// Rate returns the annual inflation rate of a covered year, in percent
func (a *Adjuster) Rate(year int) (float64, error) {
	rate, ok := a.rates[year]
	if !ok {
		return 0, errors.Rangef("year %d outside rate table %d-%d", year, a.minYear, a.maxYear)
	}
	return rate, nil
}

// Adjust converts amount from the price level of fromYear to the price
// level of toYear. Aging forward multiplies by (1 + rate/100) for every
// year after fromYear up to and including toYear; deflating backward
// divides by the same product. A redenomination factor is applied exactly
// once when its year is crossed, in the direction of travel.
//
// Equal years are a strict no-op even when fromYear has a conversion
// factor: the factor models the changeover crossed on the way to a
// different year, not a property of amounts already denominated there.
func (a *Adjuster) Adjust(amount float64, fromYear, toYear int) (float64, error) {
	if err := a.checkRange(fromYear, toYear); err != nil {
		return 0, err
	}
	if fromYear == toYear {
		return amount, nil
	}

	if toYear > fromYear {
		for year := fromYear + 1; year <= toYear; year++ {
			amount *= 1 + a.rates[year]/100
			if factor, ok := a.conversions[year]; ok {
				amount *= factor
			}
		}
		return amount, nil
	}

	for year := fromYear; year > toYear; year-- {
		amount /= 1 + a.rates[year]/100
		if factor, ok := a.conversions[year]; ok {
			amount /= factor
		}
	}
	return amount, nil
}

// checkRange validates both endpoints against the table coverage. The
// start/end roles in the message follow the direction of travel so the
// error names the endpoint the caller supplied as the beginning of the
// traversal.
func (a *Adjuster) checkRange(fromYear, toYear int) error {
	startLabel, endLabel := "start", "end"
	if toYear < fromYear {
		startLabel, endLabel = "end", "start"
	}
	if fromYear < a.minYear {
		return errors.Rangef("%s year %d must be >= minimum year %d", startLabel, fromYear, a.minYear)
	}
	if fromYear > a.maxYear {
		return errors.Rangef("%s year %d must be <= maximum year %d", startLabel, fromYear, a.maxYear)
	}
	if toYear < a.minYear {
		return errors.Rangef("%s year %d must be >= minimum year %d", endLabel, toYear, a.minYear)
	}
	if toYear > a.maxYear {
		return errors.Rangef("%s year %d must be <= maximum year %d", endLabel, toYear, a.maxYear)
	}
	return nil
}
