package api

import "time"

type Lead struct {
	ID           string    `json:"id,omitempty"`
	County       string    `json:"county"`
	ParcelID     string    `json:"parcelId"`
	OwnerName    string    `json:"ownerName,omitempty"`
	SitusAddress string    `json:"situsAddress,omitempty"`
	SalePrice    float64   `json:"salePrice"`
	SaleDate     time.Time `json:"saleDate"`
	PropertyType string    `json:"propertyType,omitempty"`
	Source       string    `json:"source,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

type LeadImportResult struct {
	Parsed    int          `json:"parsed"`
	Imported  int          `json:"imported"`
	Duplicate int          `json:"duplicate"`
	Skipped   []ImportSkip `json:"skipped,omitempty"`
}

type ImportSkip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}
