// Package macrs provides the MACRS depreciation percentage tables.
//
// The half-year-convention tables for 5, 7 and 15-year property are domain
// constants taken from IRS Publication 946 (Appendix A, tables A-1 and A-8).
// They are data, not derived values; a tax-law change touches this file only.
package macrs

import (
	"fmt"
	"math"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

// ErrUnsupportedRecoveryPeriod is returned for any recovery period outside
// the enumerated set {5, 7, 15, 27.5, 39}. Callers are expected to validate
// at the API boundary, so hitting this is a configuration error.
var ErrUnsupportedRecoveryPeriod = fmt.Errorf("unsupported recovery period")

// halfYearTables holds the accelerated percentage-of-basis fractions per
// year, half-year convention. 5 and 7-year classes use 200% declining
// balance, 15-year uses 150%. Each table sums to exactly 1.
var halfYearTables = map[domain.RecoveryPeriod][]float64{
	domain.PeriodFiveYear: {
		0.2000, 0.3200, 0.1920, 0.1152, 0.1152, 0.0576,
	},
	domain.PeriodSevenYear: {
		0.1429, 0.2449, 0.1749, 0.1249, 0.0893, 0.0892, 0.0893, 0.0446,
	},
	domain.PeriodFifteenYear: {
		0.0500, 0.0950, 0.0855, 0.0770, 0.0693, 0.0623, 0.0590, 0.0590,
		0.0591, 0.0590, 0.0591, 0.0590, 0.0591, 0.0590, 0.0591, 0.0295,
	},
}

// ScheduleLength returns the number of yearly entries a full schedule for
// the given class spans. Half-year-convention classes span period+1 years;
// straight-line building classes span ceil(period + 0.5) years because the
// first year is prorated.
func ScheduleLength(period domain.RecoveryPeriod) (int, error) {
	if table, ok := halfYearTables[period]; ok {
		return len(table), nil
	}
	if period.StraightLine() {
		return int(math.Ceil(float64(period) + 0.5)), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedRecoveryPeriod, period)
}

// PercentageFor returns the fraction of depreciable basis recognized in the
// given year (1-based) for the given class. Years past the end of the
// schedule return 0.
func PercentageFor(period domain.RecoveryPeriod, year int) (float64, error) {
	if year < 1 {
		return 0, fmt.Errorf("year index must be >= 1, got %d", year)
	}
	if table, ok := halfYearTables[period]; ok {
		if year > len(table) {
			return 0, nil
		}
		return table[year-1], nil
	}
	if period.StraightLine() {
		return straightLinePercentage(float64(period), year), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedRecoveryPeriod, period)
}

// Table returns a copy of the full year-by-year fraction table for the
// given class.
func Table(period domain.RecoveryPeriod) ([]float64, error) {
	length, err := ScheduleLength(period)
	if err != nil {
		return nil, err
	}
	if table, ok := halfYearTables[period]; ok {
		out := make([]float64, length)
		copy(out, table)
		return out, nil
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = straightLinePercentage(float64(period), i+1)
	}
	return out, nil
}

// straightLinePercentage annualizes the building mid-month convention: half
// a year's rate in year 1, a full year's rate in the middle years, and
// whatever remains in the final year so the table reaches exactly 100%.
func straightLinePercentage(period float64, year int) float64 {
	length := int(math.Ceil(period + 0.5))
	full := 1.0 / period
	switch {
	case year > length:
		return 0
	case year == 1:
		return full / 2
	case year == length:
		return 1 - full/2 - full*float64(length-2)
	default:
		return full
	}
}
