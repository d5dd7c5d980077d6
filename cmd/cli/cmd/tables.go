// Package cmd - Table resolution shared by the subcommands
package cmd

import (
	"go.uber.org/zap"

	"taxcurve/adapters/tarifffile"
	"taxcurve/core/catalog"
	"taxcurve/core/inflation"
	"taxcurve/core/schedule"
	"taxcurve/internal/config"
	"taxcurve/internal/errors"
	"taxcurve/internal/logging"
)

// loadTables reads the configured tariff file, if any
func loadTables() (*tarifffile.Tables, error) {
	path := config.Get().Data.TariffFile
	if path == "" {
		return nil, nil
	}
	tables, err := tarifffile.Load(path)
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// resolveSchedule builds the schedule for a year, preferring tariff-file
// records over the built-in catalog
func resolveSchedule(year int) (*schedule.Schedule, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	if tables != nil {
		if params, ok := tables.Tariffs[year]; ok {
			logging.Debug("using tariff-file record", zap.Int("year", year))
			return schedule.New(params)
		}
	}
	s, err := catalog.Schedule(year)
	if err != nil && errors.IsType(err, errors.TypeNotFound) && tables != nil {
		return nil, errors.Newf(errors.TypeNotFound,
			"no tariff for year %d in %s or the built-in catalog", year, config.Get().Data.TariffFile)
	}
	return s, err
}

// resolveAdjuster builds the adjuster, overlaying tariff-file tables on
// the built-in ones when a file is configured
func resolveAdjuster() (*inflation.Adjuster, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	if tables == nil || (len(tables.Rates) == 0 && len(tables.Conversions) == 0) {
		return catalog.Adjuster()
	}

	rates := catalog.InflationRates()
	for year, rate := range tables.Rates {
		rates[year] = rate
	}
	conversions := catalog.ConversionFactors()
	for year, factor := range tables.Conversions {
		conversions[year] = factor
	}
	return inflation.New(rates, conversions)
}
