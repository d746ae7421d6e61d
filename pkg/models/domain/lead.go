package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is a scraped county property-sale record used to seed the pipeline.
type Lead struct {
	County       string
	ParcelID     string
	OwnerName    string
	SitusAddress string
	SalePrice    decimal.Decimal
	SaleDate     time.Time
	PropertyType PropertyType
	Source       string
}

// ImportResult summarizes a lead import run.
type ImportResult struct {
	Parsed    int
	Imported  int
	Duplicate int
	Skipped   []ImportSkip
}

// ImportSkip records a rejected row and the reason it was rejected.
type ImportSkip struct {
	Line   int
	Reason string
}
