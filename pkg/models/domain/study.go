package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudyAsset is one reclassified line item of a cost segregation study.
// Land items carry RecoveryPeriod 0 and contribute no depreciation.
type StudyAsset struct {
	Category       string
	CostBasis      decimal.Decimal
	RecoveryPeriod RecoveryPeriod
}

// StudyInput carries everything the report generator needs. Rates are
// percentages (37 means 37%).
type StudyInput struct {
	PropertyAddress       string
	PropertyType          PropertyType
	PurchasePrice         decimal.Decimal
	BuildingValue         decimal.Decimal
	LandValue             decimal.Decimal
	StudyYear             int
	TaxRate               float64
	DiscountRate          float64
	BonusDepreciationRate float64
	Assets                []StudyAsset
}

// StudySummary holds the headline figures extracted from a report.
// TotalTaxSavings is the cumulative figure over the full straight-line
// horizon; FiveYearSavings is the cumulative figure at year 5 and is the
// number surfaced to users, since timing-shift savings trend back toward
// zero over the building's full life.
type StudySummary struct {
	TotalFirstYearDeduction decimal.Decimal
	TotalReclassified       decimal.Decimal
	TotalBonusDepreciation  decimal.Decimal
	TotalTaxSavings         decimal.Decimal
	FiveYearSavings         decimal.Decimal
	NPVTaxSavings           decimal.Decimal
}

// FirstYearAnalysis breaks down the year-1 position of the study.
type FirstYearAnalysis struct {
	AcceleratedDeduction  decimal.Decimal
	StraightLineDeduction decimal.Decimal
	AdditionalDeduction   decimal.Decimal
	TaxSavings            decimal.Decimal
}

// AssetScheduleSummary is one row of the report's asset breakdown.
type AssetScheduleSummary struct {
	Category           string
	RecoveryPeriod     RecoveryPeriod
	CostBasis          decimal.Decimal
	BonusDepreciation  decimal.Decimal
	FirstYearDeduction decimal.Decimal
}

// ComparisonEntry is one year of the merged accelerated-vs-straight-line
// depreciation series.
type ComparisonEntry struct {
	Year         int
	Accelerated  decimal.Decimal
	StraightLine decimal.Decimal
}

// StudyReport is the complete output of a study calculation. It is built
// fresh on every invocation and never mutated; persistence of a snapshot is
// the caller's concern.
type StudyReport struct {
	PropertyAddress      string
	PropertyType         PropertyType
	StudyYear            int
	GeneratedAt          time.Time
	Summary              StudySummary
	FirstYear            FirstYearAnalysis
	AssetBreakdown       []AssetScheduleSummary
	DepreciationSchedule []ComparisonEntry
	TaxSavingsSchedule   []SavingsEntry
}
