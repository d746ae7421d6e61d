// Package allocation holds the default percentage-of-value breakdowns used
// to seed a study before an engineering review. The splits per property type
// are industry-typical study outcomes; they are business data, not derived
// figures.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

// ErrUnknownPropertyType is returned for property-type labels outside the
// enumerated set.
var ErrUnknownPropertyType = fmt.Errorf("unknown property type")

// ErrInvalidBuildingValue is returned for non-positive building values.
var ErrInvalidBuildingValue = fmt.Errorf("building value must be positive")

// split is a per-property-type percentage breakdown of building value.
// The structural building bucket takes the remainder to 100.
type split struct {
	fiveYear    float64
	sevenYear   float64
	fifteenYear float64
}

var defaultSplits = map[domain.PropertyType]split{
	domain.PropertyCommercial:  {fiveYear: 12, sevenYear: 5, fifteenYear: 13},
	domain.PropertyResidential: {fiveYear: 15, sevenYear: 3, fifteenYear: 12},
	domain.PropertyMixedUse:    {fiveYear: 13, sevenYear: 4, fifteenYear: 12},
	domain.PropertyIndustrial:  {fiveYear: 8, sevenYear: 7, fifteenYear: 20},
	domain.PropertyRetail:      {fiveYear: 14, sevenYear: 4, fifteenYear: 16},
	domain.PropertyHospitality: {fiveYear: 20, sevenYear: 5, fifteenYear: 10},
	domain.PropertyHealthcare:  {fiveYear: 18, sevenYear: 6, fifteenYear: 9},
	domain.PropertyMultifamily: {fiveYear: 16, sevenYear: 3, fifteenYear: 11},
}

var bucketDescriptions = map[domain.RecoveryPeriod]string{
	domain.PeriodLand:        "Land (non-depreciable)",
	domain.PeriodFiveYear:    "Carpeting, decorative fixtures, equipment, window treatments",
	domain.PeriodSevenYear:   "Office furniture, fixtures, machinery",
	domain.PeriodFifteenYear: "Site improvements: paving, landscaping, outdoor lighting",
}

// DefaultAllocation breaks a building value into land, 5/7/15-year and
// structural buckets for the given property type. Amounts sum to the
// building value exactly; the structural bucket absorbs rounding.
func DefaultAllocation(
	propertyType domain.PropertyType,
	buildingValue decimal.Decimal,
) ([]domain.AllocationItem, error) {
	if buildingValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidBuildingValue, buildingValue)
	}
	s, ok := defaultSplits[propertyType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyType, propertyType)
	}

	longLife := propertyType.LongLifePeriod()
	buildingPct := 100 - s.fiveYear - s.sevenYear - s.fifteenYear

	items := []domain.AllocationItem{
		{
			Category:       "Land",
			Description:    bucketDescriptions[domain.PeriodLand],
			RecoveryPeriod: domain.PeriodLand,
			Amount:         decimal.Zero,
			Percentage:     0,
		},
		{
			Category:       "5-Year Personal Property",
			Description:    bucketDescriptions[domain.PeriodFiveYear],
			RecoveryPeriod: domain.PeriodFiveYear,
			Amount:         share(buildingValue, s.fiveYear),
			Percentage:     s.fiveYear,
		},
		{
			Category:       "7-Year Personal Property",
			Description:    bucketDescriptions[domain.PeriodSevenYear],
			RecoveryPeriod: domain.PeriodSevenYear,
			Amount:         share(buildingValue, s.sevenYear),
			Percentage:     s.sevenYear,
		},
		{
			Category:       "15-Year Land Improvements",
			Description:    bucketDescriptions[domain.PeriodFifteenYear],
			RecoveryPeriod: domain.PeriodFifteenYear,
			Amount:         share(buildingValue, s.fifteenYear),
			Percentage:     s.fifteenYear,
		},
	}

	allocated := decimal.Zero
	for _, item := range items {
		allocated = allocated.Add(item.Amount)
	}
	items = append(items, domain.AllocationItem{
		Category:       fmt.Sprintf("Building (%v-Year)", longLife),
		Description:    "Structural components depreciated straight-line",
		RecoveryPeriod: longLife,
		Amount:         buildingValue.Sub(allocated),
		Percentage:     buildingPct,
	})
	return items, nil
}

func share(total decimal.Decimal, percent float64) decimal.Decimal {
	return total.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100)).Round(2)
}
