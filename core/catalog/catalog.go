// Package catalog - Built-in historical tables
// Holds the German income-tax tariff records of the five-zone era and
// the consumer price-index rates backing the adjuster. This is the
// source of truth for the bundled data; other jurisdictions are loaded
// through adapters/tarifffile instead of extending this package.
package catalog

import (
	"sort"
	"strconv"

	"taxcurve/core/inflation"
	"taxcurve/core/schedule"
	"taxcurve/internal/errors"
)

// tariffs lists one parameter record per supported year. The S anchors
// carry full precision so the piecewise curve is exactly continuous at
// the thresholds; they differ from the legally rounded amounts by less
// than one euro.
var tariffs = map[int]schedule.Params{
	2007: {
		Year: 2007,
		E0:   7664, E1: 12739, E2: 52151, E3: 250000,
		S1: 988.862760375, S2: 13988.950719200599, S3: 97085.5307192006,
		P1: 883.74e-8, P2: 228.74e-8,
		SG1: 0.15, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2009: {
		Year: 2009,
		E0:   7834, E1: 13139, E2: 52551, E3: 250400,
		S1: 1007.1543773200001, S2: 14007.242336145599, S3: 97103.8223361456,
		P1: 939.68e-8, P2: 228.74e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2010: {
		Year: 2010,
		E0:   8004, E1: 13469, E2: 52881, E3: 250730,
		S1: 1037.5307445825001, S2: 14037.6187034081, S3: 97134.1987034081,
		P1: 912.17e-8, P2: 228.74e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2014: {
		Year: 2014,
		E0:   8354, E1: 13469, E2: 52881, E3: 250730,
		S1: 971.0815582050001, S2: 13971.1695170306, S3: 97067.7495170306,
		P1: 974.58e-8, P2: 228.74e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2018: {
		Year: 2018,
		E0:   9000, E1: 13996, E2: 54949, E3: 260532,
		S1: 948.4910396480001, S2: 14456.831492119702, S3: 100801.6914921197,
		P1: 997.80e-8, P2: 220.13e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2021: {
		Year: 2021,
		E0:   9744, E1: 14753, E2: 57918, E3: 274612,
		S1: 950.9589951201001, S2: 15188.9386695326, S3: 106200.41866953259,
		P1: 995.21e-8, P2: 208.85e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2023: {
		Year: 2023,
		E0:   10908, E1: 15999, E2: 62809, E3: 277825,
		S1: 966.5266238958002, S2: 16406.8696748858, S3: 106713.58967488579,
		P1: 979.18e-8, P2: 192.59e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
	2024: {
		Year: 2024,
		E0:   11784, E1: 17005, E2: 66760, E3: 277825,
		S1: 991.207413868, S2: 17402.948123165497, S3: 106050.2481231655,
		P1: 954.80e-8, P2: 181.19e-8,
		SG1: 0.14, SG2: 0.2397, SG3: 0.42, SG4: 0.45,
	},
}

// inflationRates is the annual German CPI change in percent, contiguous
// from 1992 through 2024.
var inflationRates = map[int]float64{
	1992: 5.1, 1993: 4.5, 1994: 2.7, 1995: 1.7, 1996: 1.4,
	1997: 2.0, 1998: 0.9, 1999: 0.6, 2000: 1.4, 2001: 2.0,
	2002: 1.4, 2003: 1.0, 2004: 1.6, 2005: 1.6, 2006: 1.5,
	2007: 2.3, 2008: 2.6, 2009: 0.3, 2010: 1.1, 2011: 2.1,
	2012: 2.0, 2013: 1.5, 2014: 0.9, 2015: 0.2, 2016: 0.5,
	2017: 1.5, 2018: 1.8, 2019: 1.4, 2020: 0.5, 2021: 3.1,
	2022: 6.9, 2023: 5.9, 2024: 2.2,
}

// conversionFactors holds the one-time redenomination events. Amounts
// before 2002 are Deutsche Mark; crossing 2002 converts at the fixed
// rate of 1.95583 DM per euro.
var conversionFactors = map[int]float64{
	2002: 1 / 1.95583,
}

// Tariff returns the built-in parameter record for a year
func Tariff(year int) (schedule.Params, error) {
	params, ok := tariffs[year]
	if !ok {
		return schedule.Params{}, errors.NotFound("built-in tariff", strconv.Itoa(year))
	}
	return params, nil
}

// Schedule builds the schedule for a built-in tariff year
func Schedule(year int) (*schedule.Schedule, error) {
	params, err := Tariff(year)
	if err != nil {
		return nil, err
	}
	return schedule.New(params)
}

// Years lists the built-in tariff years in ascending order
func Years() []int {
	years := make([]int, 0, len(tariffs))
	for year := range tariffs {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// InflationRates returns a copy of the built-in rate table
func InflationRates() map[int]float64 {
	rates := make(map[int]float64, len(inflationRates))
	for year, rate := range inflationRates {
		rates[year] = rate
	}
	return rates
}

// ConversionFactors returns a copy of the built-in redenomination table
func ConversionFactors() map[int]float64 {
	factors := make(map[int]float64, len(conversionFactors))
	for year, factor := range conversionFactors {
		factors[year] = factor
	}
	return factors
}

// Adjuster builds the adjuster over the built-in tables
func Adjuster() (*inflation.Adjuster, error) {
	return inflation.New(inflationRates, conversionFactors)
}
