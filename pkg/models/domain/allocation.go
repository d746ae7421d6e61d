package domain

import "github.com/shopspring/decimal"

// AllocationItem is one bucket of a property-type default allocation: a slice
// of the building value assigned to a recovery-period class. Amounts across
// an allocation sum to the building value; percentages sum to 100.
type AllocationItem struct {
	Category       string
	Description    string
	RecoveryPeriod RecoveryPeriod
	Amount         decimal.Decimal
	Percentage     float64
}
