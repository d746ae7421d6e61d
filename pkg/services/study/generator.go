// Package study composes the calculation engine into a full cost segregation
// report: per-asset schedules summed into a combined accelerated series,
// the straight-line baseline, the tax savings delta and its net present
// value.
package study

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/services/depreciation"
	"github.com/boca-banker/boca-banker/pkg/services/savings"
)

var (
	// ErrNoAssets is returned when a study arrives with an empty asset
	// list. A zero report would be misleading, so this fails fast.
	ErrNoAssets = fmt.Errorf("study has no assets")

	// ErrInvalidInput covers non-positive values and out-of-range rates.
	ErrInvalidInput = fmt.Errorf("invalid study input")
)

// savingsHorizonYears caps the UI-facing savings figure. Cost segregation
// shifts deductions forward without changing their total, so cumulative
// savings over the full building life trend back toward zero; the first
// five years are where the benefit is real.
const savingsHorizonYears = 5

// Calculator generates study reports. It holds no state; the interface
// exists so handlers can be tested against a mock.
type Calculator interface {
	Generate(input domain.StudyInput) (*domain.StudyReport, error)
}

type calculator struct{}

func NewCalculator() Calculator {
	return &calculator{}
}

func (c *calculator) Generate(input domain.StudyInput) (*domain.StudyReport, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	longLife := input.PropertyType.LongLifePeriod()

	// Sum every asset's schedule into a combined accelerated series keyed
	// by year index. Schedules have different lengths, so this is a
	// sparse merge, never a positional zip.
	acceleratedByYear := map[int]decimal.Decimal{}
	horizon := 0
	breakdown := make([]domain.AssetScheduleSummary, 0, len(input.Assets))
	totalReclassified := decimal.Zero
	totalBonus := decimal.Zero

	for _, asset := range input.Assets {
		if asset.RecoveryPeriod == domain.PeriodLand {
			breakdown = append(breakdown, domain.AssetScheduleSummary{
				Category:       asset.Category,
				RecoveryPeriod: asset.RecoveryPeriod,
				CostBasis:      asset.CostBasis,
			})
			continue
		}

		schedule, err := depreciation.CalculateSchedule(asset.CostBasis, asset.RecoveryPeriod, input.BonusDepreciationRate)
		if err != nil {
			return nil, fmt.Errorf("asset %q: %w", asset.Category, err)
		}
		for _, entry := range schedule {
			acceleratedByYear[entry.Year] = acceleratedByYear[entry.Year].Add(entry.Depreciation)
			if entry.Year > horizon {
				horizon = entry.Year
			}
		}

		bonus, err := depreciation.CalculateBonus(asset.CostBasis, asset.RecoveryPeriod, input.BonusDepreciationRate)
		if err != nil {
			return nil, fmt.Errorf("asset %q: %w", asset.Category, err)
		}
		if asset.RecoveryPeriod.BonusEligible() {
			totalReclassified = totalReclassified.Add(asset.CostBasis)
		}
		totalBonus = totalBonus.Add(bonus.BonusAmount)

		breakdown = append(breakdown, domain.AssetScheduleSummary{
			Category:           asset.Category,
			RecoveryPeriod:     asset.RecoveryPeriod,
			CostBasis:          asset.CostBasis,
			BonusDepreciation:  bonus.BonusAmount,
			FirstYearDeduction: schedule[0].Depreciation,
		})
	}

	straightLine, err := depreciation.CalculateStraightLine(input.BuildingValue, longLife)
	if err != nil {
		return nil, err
	}
	if len(straightLine) > horizon {
		horizon = len(straightLine)
	}

	accelerated := make([]domain.YearAmount, 0, horizon)
	for year := 1; year <= horizon; year++ {
		accelerated = append(accelerated, domain.YearAmount{Year: year, Amount: acceleratedByYear[year]})
	}
	baseline := make([]domain.YearAmount, 0, len(straightLine))
	for _, entry := range straightLine {
		baseline = append(baseline, domain.YearAmount{Year: entry.Year, Amount: entry.Depreciation})
	}

	taxSavings, err := savings.CalculateTaxSavings(accelerated, baseline, input.TaxRate)
	if err != nil {
		return nil, err
	}

	cashFlows := make([]decimal.Decimal, 0, len(taxSavings))
	for _, entry := range taxSavings {
		cashFlows = append(cashFlows, entry.AnnualSavings)
	}
	npv, err := savings.CalculateNPV(cashFlows, input.DiscountRate)
	if err != nil {
		return nil, err
	}

	comparison := make([]domain.ComparisonEntry, 0, len(taxSavings))
	for _, entry := range taxSavings {
		comparison = append(comparison, domain.ComparisonEntry{
			Year:         entry.Year,
			Accelerated:  entry.WithCostSeg,
			StraightLine: entry.WithoutCostSeg,
		})
	}

	report := &domain.StudyReport{
		PropertyAddress:      input.PropertyAddress,
		PropertyType:         input.PropertyType,
		StudyYear:            input.StudyYear,
		GeneratedAt:          time.Now().UTC(),
		AssetBreakdown:       breakdown,
		DepreciationSchedule: comparison,
		TaxSavingsSchedule:   taxSavings,
	}

	report.Summary = domain.StudySummary{
		TotalFirstYearDeduction: acceleratedByYear[1],
		TotalReclassified:       totalReclassified,
		TotalBonusDepreciation:  totalBonus,
		NPVTaxSavings:           npv,
	}
	if n := len(taxSavings); n > 0 {
		report.Summary.TotalTaxSavings = taxSavings[n-1].CumulativeSavings
		report.FirstYear = domain.FirstYearAnalysis{
			AcceleratedDeduction:  taxSavings[0].WithCostSeg,
			StraightLineDeduction: taxSavings[0].WithoutCostSeg,
			AdditionalDeduction:   taxSavings[0].WithCostSeg.Sub(taxSavings[0].WithoutCostSeg),
			TaxSavings:            taxSavings[0].AnnualSavings,
		}
		idx := savingsHorizonYears - 1
		if idx >= n {
			idx = n - 1
		}
		report.Summary.FiveYearSavings = taxSavings[idx].CumulativeSavings
	}
	return report, nil
}

func validate(input domain.StudyInput) error {
	if len(input.Assets) == 0 {
		return ErrNoAssets
	}
	if input.BuildingValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: building value must be positive", ErrInvalidInput)
	}
	if input.PurchasePrice.IsNegative() || input.LandValue.IsNegative() {
		return fmt.Errorf("%w: purchase price and land value must not be negative", ErrInvalidInput)
	}
	if input.TaxRate < 0 || input.TaxRate > 100 {
		return fmt.Errorf("%w: tax rate must be within 0-100", ErrInvalidInput)
	}
	if input.BonusDepreciationRate < 0 || input.BonusDepreciationRate > 100 {
		return fmt.Errorf("%w: bonus rate must be within 0-100", ErrInvalidInput)
	}
	if input.DiscountRate < 0 {
		return fmt.Errorf("%w: discount rate must be >= 0", ErrInvalidInput)
	}
	for _, asset := range input.Assets {
		if asset.RecoveryPeriod == domain.PeriodLand {
			continue
		}
		if !asset.RecoveryPeriod.Valid() {
			return fmt.Errorf("%w: asset %q has recovery period %v", ErrInvalidInput, asset.Category, asset.RecoveryPeriod)
		}
		if asset.CostBasis.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: asset %q has non-positive cost basis", ErrInvalidInput, asset.Category)
		}
	}
	return nil
}
