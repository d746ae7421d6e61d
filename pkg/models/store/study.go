package store

import "time"

// StudyRecord is a row of the studies table. Assets and Report hold JSON
// blobs; the three summary columns are denormalized from the report so
// listings never touch the blob.
type StudyRecord struct {
	ID              string
	PropertyAddress string
	PropertyType    string
	PurchasePrice   float64
	BuildingValue   float64
	LandValue       float64
	StudyYear       int
	TaxRate         float64
	DiscountRate    float64
	BonusRate       float64
	Assets          []byte
	Report          []byte

	TotalFirstYearDeduction float64
	TotalTaxSavings         float64
	NPVTaxSavings           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudySummaryRow is the projection used by the listing query.
type StudySummaryRow struct {
	ID                      string
	PropertyAddress         string
	PropertyType            string
	StudyYear               int
	TotalFirstYearDeduction float64
	TotalTaxSavings         float64
	NPVTaxSavings           float64
	CreatedAt               time.Time
}
