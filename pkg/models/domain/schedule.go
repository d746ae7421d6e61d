package domain

import "github.com/shopspring/decimal"

// ScheduleEntry is one year of a depreciation schedule. Amounts are rounded
// to cents when the entry is built; RemainingBasis is never negative and the
// final entry's CumulativeDepreciation equals the original cost basis.
type ScheduleEntry struct {
	Year                   int
	Depreciation           decimal.Decimal
	CumulativeDepreciation decimal.Decimal
	RemainingBasis         decimal.Decimal
}

// YearAmount is a sparse (year, dollar amount) pair used when schedules of
// different lengths are merged.
type YearAmount struct {
	Year   int
	Amount decimal.Decimal
}

// BonusResult is the outcome of a single-asset bonus depreciation check.
type BonusResult struct {
	BonusAmount    decimal.Decimal
	FirstYearTotal decimal.Decimal
}
