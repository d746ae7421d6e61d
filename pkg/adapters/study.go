package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/models/store"
)

func MapStudyRequestApiToDomain(req api.StudyRequest) domain.StudyInput {
	assets := make([]domain.StudyAsset, 0, len(req.Assets))
	for _, asset := range req.Assets {
		assets = append(assets, domain.StudyAsset{
			Category:       asset.Category,
			CostBasis:      decimal.NewFromFloat(asset.CostBasis),
			RecoveryPeriod: domain.RecoveryPeriod(asset.RecoveryPeriod),
		})
	}
	return domain.StudyInput{
		PropertyAddress:       req.PropertyAddress,
		PropertyType:          domain.PropertyType(req.PropertyType),
		PurchasePrice:         decimal.NewFromFloat(req.PurchasePrice),
		BuildingValue:         decimal.NewFromFloat(req.BuildingValue),
		LandValue:             decimal.NewFromFloat(req.LandValue),
		StudyYear:             req.StudyYear,
		TaxRate:               req.TaxRate,
		DiscountRate:          req.DiscountRate,
		BonusDepreciationRate: req.BonusRate,
		Assets:                assets,
	}
}

func MapStudyReportDomainToApi(report *domain.StudyReport) api.StudyReport {
	breakdown := make([]api.AssetScheduleSummary, 0, len(report.AssetBreakdown))
	for _, row := range report.AssetBreakdown {
		breakdown = append(breakdown, api.AssetScheduleSummary{
			Category:           row.Category,
			RecoveryPeriod:     float64(row.RecoveryPeriod),
			CostBasis:          dollars(row.CostBasis),
			BonusDepreciation:  dollars(row.BonusDepreciation),
			FirstYearDeduction: dollars(row.FirstYearDeduction),
		})
	}

	comparison := make([]api.ComparisonEntry, 0, len(report.DepreciationSchedule))
	for _, entry := range report.DepreciationSchedule {
		comparison = append(comparison, api.ComparisonEntry{
			Year:         entry.Year,
			Accelerated:  dollars(entry.Accelerated),
			StraightLine: dollars(entry.StraightLine),
		})
	}

	taxSavings := make([]api.SavingsEntry, 0, len(report.TaxSavingsSchedule))
	for _, entry := range report.TaxSavingsSchedule {
		taxSavings = append(taxSavings, api.SavingsEntry{
			Year:              entry.Year,
			WithCostSeg:       dollars(entry.WithCostSeg),
			WithoutCostSeg:    dollars(entry.WithoutCostSeg),
			AnnualSavings:     dollars(entry.AnnualSavings),
			CumulativeSavings: dollars(entry.CumulativeSavings),
		})
	}

	return api.StudyReport{
		PropertyAddress: report.PropertyAddress,
		PropertyType:    string(report.PropertyType),
		StudyYear:       report.StudyYear,
		GeneratedAt:     report.GeneratedAt,
		Summary: api.StudySummary{
			TotalFirstYearDeduction: dollars(report.Summary.TotalFirstYearDeduction),
			TotalReclassified:       dollars(report.Summary.TotalReclassified),
			TotalBonusDepreciation:  dollars(report.Summary.TotalBonusDepreciation),
			TotalTaxSavings:         dollars(report.Summary.TotalTaxSavings),
			FiveYearSavings:         dollars(report.Summary.FiveYearSavings),
			NPVTaxSavings:           dollars(report.Summary.NPVTaxSavings),
		},
		FirstYearAnalysis: api.FirstYearAnalysis{
			AcceleratedDeduction:  dollars(report.FirstYear.AcceleratedDeduction),
			StraightLineDeduction: dollars(report.FirstYear.StraightLineDeduction),
			AdditionalDeduction:   dollars(report.FirstYear.AdditionalDeduction),
			TaxSavings:            dollars(report.FirstYear.TaxSavings),
		},
		AssetBreakdown:       breakdown,
		DepreciationSchedule: comparison,
		TaxSavingsSchedule:   taxSavings,
	}
}

func MapStudySummaryStoreToApi(row store.StudySummaryRow) api.StudyListing {
	return api.StudyListing{
		ID:                      row.ID,
		PropertyAddress:         row.PropertyAddress,
		PropertyType:            row.PropertyType,
		StudyYear:               row.StudyYear,
		TotalFirstYearDeduction: row.TotalFirstYearDeduction,
		TotalTaxSavings:         row.TotalTaxSavings,
		NPVTaxSavings:           row.NPVTaxSavings,
		CreatedAt:               row.CreatedAt,
	}
}
