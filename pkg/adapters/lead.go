package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/models/store"
)

func MapLeadApiToDomain(lead api.Lead) domain.Lead {
	return domain.Lead{
		County:       lead.County,
		ParcelID:     lead.ParcelID,
		OwnerName:    lead.OwnerName,
		SitusAddress: lead.SitusAddress,
		SalePrice:    decimal.NewFromFloat(lead.SalePrice),
		SaleDate:     lead.SaleDate,
		PropertyType: domain.PropertyType(lead.PropertyType),
		Source:       lead.Source,
	}
}

func MapLeadStoreToApi(record store.LeadRecord) api.Lead {
	return api.Lead{
		ID:           record.ID,
		County:       record.County,
		ParcelID:     record.ParcelID,
		OwnerName:    record.OwnerName,
		SitusAddress: record.SitusAddress,
		SalePrice:    record.SalePrice,
		SaleDate:     record.SaleDate,
		PropertyType: record.PropertyType,
		Source:       record.Source,
		CreatedAt:    record.CreatedAt,
	}
}

func MapLeadDomainToStore(lead domain.Lead) store.LeadRecord {
	return store.LeadRecord{
		County:       lead.County,
		ParcelID:     lead.ParcelID,
		OwnerName:    lead.OwnerName,
		SitusAddress: lead.SitusAddress,
		SalePrice:    lead.SalePrice.InexactFloat64(),
		SaleDate:     lead.SaleDate,
		PropertyType: string(lead.PropertyType),
		Source:       lead.Source,
	}
}
