package domain

import "github.com/shopspring/decimal"

// SavingsEntry compares one year of accelerated vs straight-line
// depreciation. AnnualSavings can go negative in later years once the
// straight-line schedule catches up; cost segregation shifts deductions
// forward, it does not create them.
type SavingsEntry struct {
	Year              int
	WithCostSeg       decimal.Decimal
	WithoutCostSeg    decimal.Decimal
	AnnualSavings     decimal.Decimal
	CumulativeSavings decimal.Decimal
}
