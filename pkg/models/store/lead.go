package store

import "time"

// LeadRecord is a row of the leads table. Duplicates are keyed on
// (county, parcel_id, sale_date).
type LeadRecord struct {
	ID           string
	County       string
	ParcelID     string
	OwnerName    string
	SitusAddress string
	SalePrice    float64
	SaleDate     time.Time
	PropertyType string
	Source       string
	CreatedAt    time.Time
}
