package study

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/services/allocation"
)

func commercialInput(t *testing.T) domain.StudyInput {
	t.Helper()

	// Seed the asset list from the default allocation the way the API does.
	items, err := allocation.DefaultAllocation(domain.PropertyCommercial, decimal.NewFromInt(2_000_000))
	require.NoError(t, err)

	assets := make([]domain.StudyAsset, 0, len(items))
	for _, item := range items {
		assets = append(assets, domain.StudyAsset{
			Category:       item.Category,
			CostBasis:      item.Amount,
			RecoveryPeriod: item.RecoveryPeriod,
		})
	}
	// The land bucket carries no value in the default split; give the
	// schedule a non-empty land row to prove it is skipped, not rejected.
	assets[0].CostBasis = decimal.NewFromInt(500_000)

	return domain.StudyInput{
		PropertyAddress:       "101 E Palmetto Park Rd, Boca Raton, FL",
		PropertyType:          domain.PropertyCommercial,
		PurchasePrice:         decimal.NewFromInt(2_500_000),
		BuildingValue:         decimal.NewFromInt(2_000_000),
		LandValue:             decimal.NewFromInt(500_000),
		StudyYear:             2025,
		TaxRate:               37,
		DiscountRate:          8,
		BonusDepreciationRate: 100,
		Assets:                assets,
	}
}

func TestGenerate_CommercialFullBonus(t *testing.T) {
	calc := NewCalculator()
	report, err := calc.Generate(commercialInput(t))
	require.NoError(t, err)

	// 100% bonus writes off the 5/7/15 buckets (600k) in year 1, plus the
	// building's first straight-line year.
	firstYear := report.Summary.TotalFirstYearDeduction.InexactFloat64()
	assert.Greater(t, firstYear, 600_000.0)
	assert.Less(t, firstYear, 700_000.0)

	assert.InDelta(t, 600_000, report.Summary.TotalReclassified.InexactFloat64(), 0.01)
	assert.InDelta(t, 600_000, report.Summary.TotalBonusDepreciation.InexactFloat64(), 0.01)

	assert.Positive(t, report.FirstYear.TaxSavings.InexactFloat64(),
		"first-year savings must be positive")
	assert.Positive(t, report.Summary.FiveYearSavings.InexactFloat64())
	assert.Positive(t, report.Summary.NPVTaxSavings.InexactFloat64(),
		"earlier deductions are worth more discounted")

	// Both schedules recover the same total, so full-horizon savings net
	// out to roughly zero... but only when accelerated and baseline cover
	// the same basis. Here the accelerated side covers 2M (600k carved
	// out + 1.4M building) against a 2M straight-line baseline.
	final := report.TaxSavingsSchedule[len(report.TaxSavingsSchedule)-1]
	assert.InDelta(t, 0, final.CumulativeSavings.InexactFloat64(), 1.0)

	// Horizon runs the building's full 40 straight-line years even though
	// the personal-property schedules end after 16.
	assert.Len(t, report.DepreciationSchedule, 40)
	assert.Len(t, report.TaxSavingsSchedule, 40)

	// The land row survives into the breakdown with no deduction.
	require.Len(t, report.AssetBreakdown, 5)
	land := report.AssetBreakdown[0]
	assert.Equal(t, domain.PeriodLand, land.RecoveryPeriod)
	assert.True(t, land.FirstYearDeduction.IsZero())
}

func TestGenerate_ScheduleAlignment(t *testing.T) {
	calc := NewCalculator()
	input := commercialInput(t)
	report, err := calc.Generate(input)
	require.NoError(t, err)

	// Years past a short schedule's end contribute zero, not stale values:
	// by year 17 every 5/7/15 class is done, so accelerated equals the
	// building's straight-line remainder exactly.
	year17 := report.DepreciationSchedule[16]
	buildingRate := decimal.NewFromInt(1_400_000).
		Mul(decimal.NewFromFloat(1.0 / 39)).Round(2)
	assert.InDelta(t, buildingRate.InexactFloat64(), year17.Accelerated.InexactFloat64(), 0.02)
}

func TestGenerate_FiveYearSavingsHorizon(t *testing.T) {
	calc := NewCalculator()
	report, err := calc.Generate(commercialInput(t))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(report.TaxSavingsSchedule), 5)
	assert.True(t, report.Summary.FiveYearSavings.Equal(report.TaxSavingsSchedule[4].CumulativeSavings),
		"five-year savings is cumulative savings at year 5")
}

func TestGenerate_InputValidation(t *testing.T) {
	calc := NewCalculator()

	t.Run("no assets", func(t *testing.T) {
		input := commercialInput(t)
		input.Assets = nil
		_, err := calc.Generate(input)
		assert.ErrorIs(t, err, ErrNoAssets)
	})

	t.Run("non-positive building value", func(t *testing.T) {
		input := commercialInput(t)
		input.BuildingValue = decimal.Zero
		_, err := calc.Generate(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		input := commercialInput(t)
		input.TaxRate = 140
		_, err := calc.Generate(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad asset recovery period", func(t *testing.T) {
		input := commercialInput(t)
		input.Assets[1].RecoveryPeriod = domain.RecoveryPeriod(10)
		_, err := calc.Generate(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("asset with non-positive basis", func(t *testing.T) {
		input := commercialInput(t)
		input.Assets[1].CostBasis = decimal.Zero
		_, err := calc.Generate(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGenerate_MultifamilyUses27_5YearBaseline(t *testing.T) {
	calc := NewCalculator()
	input := domain.StudyInput{
		PropertyAddress:       "55 SE Mizner Blvd",
		PropertyType:          domain.PropertyMultifamily,
		PurchasePrice:         decimal.NewFromInt(1_000_000),
		BuildingValue:         decimal.NewFromInt(825_000),
		LandValue:             decimal.NewFromInt(175_000),
		StudyYear:             2025,
		TaxRate:               32,
		DiscountRate:          6,
		BonusDepreciationRate: 0,
		Assets: []domain.StudyAsset{
			{Category: "5-Year Personal Property", CostBasis: decimal.NewFromInt(120_000), RecoveryPeriod: domain.PeriodFiveYear},
			{Category: "Building", CostBasis: decimal.NewFromInt(705_000), RecoveryPeriod: domain.PeriodResidentialBldg},
		},
	}

	report, err := calc.Generate(input)
	require.NoError(t, err)
	assert.Len(t, report.TaxSavingsSchedule, 28, "27.5-year baseline spans 28 entries")
	assert.True(t, report.Summary.TotalBonusDepreciation.IsZero())
}
