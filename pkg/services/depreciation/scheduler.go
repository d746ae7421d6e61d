// Package depreciation builds year-by-year depreciation schedules: bonus
// depreciation in year one plus the MACRS percentage table applied to the
// remaining basis, or pure straight-line for building property.
package depreciation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/services/macrs"
)

// ErrInvalidInput covers non-positive cost bases and out-of-range bonus
// rates. The API boundary validates first; these are defensive checks for
// direct callers.
var ErrInvalidInput = fmt.Errorf("invalid depreciation input")

var hundred = decimal.NewFromInt(100)

// CalculateSchedule produces the full accelerated schedule for one asset.
// Bonus depreciation applies to 5/7/15-year property only and is ignored for
// 27.5/39-year building classes. The MACRS percentages are applied to the
// post-bonus basis every year (percentage-table usage, not a declining
// balance), each entry is rounded to cents as it is built, and the final
// entry absorbs accumulated rounding so the remaining basis lands exactly
// on zero.
func CalculateSchedule(
	costBasis decimal.Decimal,
	period domain.RecoveryPeriod,
	bonusRatePercent float64,
) ([]domain.ScheduleEntry, error) {
	if costBasis.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: cost basis must be positive, got %s", ErrInvalidInput, costBasis)
	}
	if bonusRatePercent < 0 || bonusRatePercent > 100 {
		return nil, fmt.Errorf("%w: bonus rate must be within 0-100, got %v", ErrInvalidInput, bonusRatePercent)
	}

	table, err := macrs.Table(period)
	if err != nil {
		return nil, err
	}

	bonus := decimal.Zero
	if period.BonusEligible() && bonusRatePercent > 0 {
		bonus = costBasis.Mul(decimal.NewFromFloat(bonusRatePercent)).Div(hundred).Round(2)
	}
	depreciable := costBasis.Sub(bonus)

	schedule := make([]domain.ScheduleEntry, 0, len(table))
	cumulative := decimal.Zero
	for i, pct := range table {
		amount := depreciable.Mul(decimal.NewFromFloat(pct)).Round(2)
		if i == 0 {
			amount = amount.Add(bonus)
		}
		if i == len(table)-1 {
			// Last year takes whatever is left so cumulative
			// depreciation equals the basis exactly.
			amount = costBasis.Sub(cumulative)
		}
		cumulative = cumulative.Add(amount)
		remaining := costBasis.Sub(cumulative)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		schedule = append(schedule, domain.ScheduleEntry{
			Year:                   i + 1,
			Depreciation:           amount,
			CumulativeDepreciation: cumulative,
			RemainingBasis:         remaining,
		})
	}
	return schedule, nil
}

// CalculateStraightLine produces the "without cost segregation" baseline for
// a building basis over 27.5 or 39 years.
func CalculateStraightLine(costBasis decimal.Decimal, period domain.RecoveryPeriod) ([]domain.ScheduleEntry, error) {
	if !period.StraightLine() {
		return nil, fmt.Errorf("%w: straight-line applies to 27.5 and 39-year property, got %v",
			macrs.ErrUnsupportedRecoveryPeriod, period)
	}
	return CalculateSchedule(costBasis, period, 0)
}

// CalculateBonus computes the isolated first-year position for one asset.
// The rate is clamped to 0-100; property with a recovery period over 20
// years gets no bonus and its first year is the straight-line amount.
func CalculateBonus(
	amount decimal.Decimal,
	period domain.RecoveryPeriod,
	bonusRatePercent float64,
) (domain.BonusResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.BonusResult{}, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidInput, amount)
	}
	rate := bonusRatePercent
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}

	firstYearPct, err := macrs.PercentageFor(period, 1)
	if err != nil {
		return domain.BonusResult{}, err
	}

	if !period.BonusEligible() {
		return domain.BonusResult{
			BonusAmount:    decimal.Zero,
			FirstYearTotal: amount.Mul(decimal.NewFromFloat(firstYearPct)).Round(2),
		}, nil
	}

	bonus := amount.Mul(decimal.NewFromFloat(rate)).Div(hundred).Round(2)
	regular := amount.Sub(bonus).Mul(decimal.NewFromFloat(firstYearPct)).Round(2)
	return domain.BonusResult{
		BonusAmount:    bonus,
		FirstYearTotal: bonus.Add(regular),
	}, nil
}
