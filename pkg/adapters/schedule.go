package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

// dollars collapses an engine amount to the float the JSON layer serves.
// Engine amounts are already rounded to cents, so the conversion is exact
// within float64 precision.
func dollars(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func MapScheduleDomainToApi(schedule []domain.ScheduleEntry) []api.ScheduleEntry {
	out := make([]api.ScheduleEntry, 0, len(schedule))
	for _, entry := range schedule {
		out = append(out, api.ScheduleEntry{
			Year:                   entry.Year,
			Depreciation:           dollars(entry.Depreciation),
			CumulativeDepreciation: dollars(entry.CumulativeDepreciation),
			RemainingBasis:         dollars(entry.RemainingBasis),
		})
	}
	return out
}

func MapBonusDomainToApi(result domain.BonusResult) api.BonusResponse {
	return api.BonusResponse{
		BonusAmount:    dollars(result.BonusAmount),
		FirstYearTotal: dollars(result.FirstYearTotal),
	}
}

func MapAllocationDomainToApi(items []domain.AllocationItem) []api.AllocationItem {
	out := make([]api.AllocationItem, 0, len(items))
	for _, item := range items {
		out = append(out, api.AllocationItem{
			Category:       item.Category,
			Description:    item.Description,
			RecoveryPeriod: float64(item.RecoveryPeriod),
			Amount:         dollars(item.Amount),
			Percentage:     item.Percentage,
		})
	}
	return out
}
