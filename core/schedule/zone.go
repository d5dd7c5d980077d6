// Package schedule - Tariff zone dispatch
package schedule

import (
	"taxcurve/internal/errors"
)

// Zone identifies one of the five tariff zones
type Zone int

const (
	// ZoneAllowance is the tax-free allowance up to the first threshold
	ZoneAllowance Zone = iota

	// ZoneProgression1 is the first linear-progressive zone
	ZoneProgression1

	// ZoneProgression2 is the second linear-progressive zone
	ZoneProgression2

	// ZoneProportional1 is the first flat-rate zone
	ZoneProportional1

	// ZoneProportional2 is the top flat-rate zone
	ZoneProportional2
)

// String returns the zone name
func (z Zone) String() string {
	switch z {
	case ZoneAllowance:
		return "allowance"
	case ZoneProgression1:
		return "progression-1"
	case ZoneProgression2:
		return "progression-2"
	case ZoneProportional1:
		return "proportional-1"
	case ZoneProportional2:
		return "proportional-2"
	default:
		return "unknown"
	}
}

// zoneFor selects the zone for a non-negative income. The comparison
// chain is exhaustive for any real income >= 0; the trailing error exists
// to keep the dispatch explicitly total and is never reachable through
// the exported API.
func (s *Schedule) zoneFor(income float64) (Zone, error) {
	switch {
	case income <= s.params.E0:
		return ZoneAllowance, nil
	case income <= s.params.E1:
		return ZoneProgression1, nil
	case income <= s.params.E2:
		return ZoneProgression2, nil
	case income <= s.params.E3:
		return ZoneProportional1, nil
	case income > s.params.E3:
		return ZoneProportional2, nil
	}
	return ZoneAllowance, errors.Internal("no tariff zone matched income").
		WithContext("income", income)
}
