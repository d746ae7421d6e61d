// Package savings derives tax savings from the depreciation timing delta and
// discounts the resulting cash flows.
package savings

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

// ErrInvalidRate is returned for tax rates outside 0-100 or negative
// discount rates.
var ErrInvalidRate = fmt.Errorf("invalid rate")

// CalculateTaxSavings merges an accelerated and a straight-line schedule by
// year index over the longer of the two horizons; years missing from either
// side contribute zero. Annual savings are the depreciation delta times the
// tax rate and can be negative once straight-line catches up.
func CalculateTaxSavings(
	accelerated []domain.YearAmount,
	straightLine []domain.YearAmount,
	taxRatePercent float64,
) ([]domain.SavingsEntry, error) {
	if taxRatePercent < 0 || taxRatePercent > 100 {
		return nil, fmt.Errorf("%w: tax rate must be within 0-100, got %v", ErrInvalidRate, taxRatePercent)
	}

	horizon := 0
	byYear := func(entries []domain.YearAmount) map[int]decimal.Decimal {
		m := make(map[int]decimal.Decimal, len(entries))
		for _, e := range entries {
			m[e.Year] = m[e.Year].Add(e.Amount)
			if e.Year > horizon {
				horizon = e.Year
			}
		}
		return m
	}
	accel := byYear(accelerated)
	straight := byYear(straightLine)

	taxRate := decimal.NewFromFloat(taxRatePercent).Div(decimal.NewFromInt(100))
	entries := make([]domain.SavingsEntry, 0, horizon)
	cumulative := decimal.Zero
	for year := 1; year <= horizon; year++ {
		with := accel[year]
		without := straight[year]
		annual := with.Sub(without).Mul(taxRate).Round(2)
		cumulative = cumulative.Add(annual)
		entries = append(entries, domain.SavingsEntry{
			Year:              year,
			WithCostSeg:       with,
			WithoutCostSeg:    without,
			AnnualSavings:     annual,
			CumulativeSavings: cumulative,
		})
	}
	return entries, nil
}

// CalculateNPV discounts a series of annual cash flows at the given rate.
// Flows are assumed to land at the end of years 1..N; an empty series has a
// net present value of zero.
func CalculateNPV(cashFlows []decimal.Decimal, discountRatePercent float64) (decimal.Decimal, error) {
	if discountRatePercent < 0 {
		return decimal.Zero, fmt.Errorf("%w: discount rate must be >= 0, got %v", ErrInvalidRate, discountRatePercent)
	}
	rate := discountRatePercent / 100

	npv := decimal.Zero
	for t, flow := range cashFlows {
		factor := math.Pow(1+rate, float64(t+1))
		npv = npv.Add(flow.Div(decimal.NewFromFloat(factor)))
	}
	return npv.Round(2), nil
}
