package api

import "time"

type StudyAsset struct {
	Category       string  `json:"category"`
	CostBasis      float64 `json:"costBasis"`
	RecoveryPeriod float64 `json:"recoveryPeriod"`
}

type StudyRequest struct {
	PropertyAddress string       `json:"propertyAddress"`
	PropertyType    string       `json:"propertyType"`
	PurchasePrice   float64      `json:"purchasePrice"`
	BuildingValue   float64      `json:"buildingValue"`
	LandValue       float64      `json:"landValue"`
	StudyYear       int          `json:"studyYear"`
	TaxRate         float64      `json:"taxRate"`
	DiscountRate    float64      `json:"discountRate"`
	BonusRate       float64      `json:"bonusRate"`
	Assets          []StudyAsset `json:"assets"`
}

// RecalculateRequest optionally overrides the stored rates; nil fields keep
// the values the study was created with.
type RecalculateRequest struct {
	TaxRate      *float64 `json:"taxRate,omitempty"`
	DiscountRate *float64 `json:"discountRate,omitempty"`
	BonusRate    *float64 `json:"bonusRate,omitempty"`
}

type StudySummary struct {
	TotalFirstYearDeduction float64 `json:"totalFirstYearDeduction"`
	TotalReclassified       float64 `json:"totalReclassified"`
	TotalBonusDepreciation  float64 `json:"totalBonusDepreciation"`
	TotalTaxSavings         float64 `json:"totalTaxSavings"`
	FiveYearSavings         float64 `json:"fiveYearSavings"`
	NPVTaxSavings           float64 `json:"npvTaxSavings"`
}

type FirstYearAnalysis struct {
	AcceleratedDeduction  float64 `json:"acceleratedDeduction"`
	StraightLineDeduction float64 `json:"straightLineDeduction"`
	AdditionalDeduction   float64 `json:"additionalDeduction"`
	TaxSavings            float64 `json:"taxSavings"`
}

type AssetScheduleSummary struct {
	Category           string  `json:"category"`
	RecoveryPeriod     float64 `json:"recoveryPeriod"`
	CostBasis          float64 `json:"costBasis"`
	BonusDepreciation  float64 `json:"bonusDepreciation"`
	FirstYearDeduction float64 `json:"firstYearDeduction"`
}

type ComparisonEntry struct {
	Year         int     `json:"year"`
	Accelerated  float64 `json:"accelerated"`
	StraightLine float64 `json:"straightLine"`
}

type SavingsEntry struct {
	Year              int     `json:"year"`
	WithCostSeg       float64 `json:"withCostSeg"`
	WithoutCostSeg    float64 `json:"withoutCostSeg"`
	AnnualSavings     float64 `json:"annualSavings"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
}

type StudyReport struct {
	PropertyAddress      string                 `json:"propertyAddress"`
	PropertyType         string                 `json:"propertyType"`
	StudyYear            int                    `json:"studyYear"`
	GeneratedAt          time.Time              `json:"generatedAt"`
	Summary              StudySummary           `json:"summary"`
	FirstYearAnalysis    FirstYearAnalysis      `json:"firstYearAnalysis"`
	AssetBreakdown       []AssetScheduleSummary `json:"assetBreakdown"`
	DepreciationSchedule []ComparisonEntry      `json:"depreciationSchedule"`
	TaxSavingsSchedule   []SavingsEntry         `json:"taxSavingsSchedule"`
}

// Study is the persisted record: the report plus its identifying fields.
type Study struct {
	ID        string       `json:"id"`
	Request   StudyRequest `json:"request"`
	Report    StudyReport  `json:"report"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// StudyListing is the lightweight row served by the list endpoint; it is
// built from scalar columns without deserializing the report blob.
type StudyListing struct {
	ID                      string    `json:"id"`
	PropertyAddress         string    `json:"propertyAddress"`
	PropertyType            string    `json:"propertyType"`
	StudyYear               int       `json:"studyYear"`
	TotalFirstYearDeduction float64   `json:"totalFirstYearDeduction"`
	TotalTaxSavings         float64   `json:"totalTaxSavings"`
	NPVTaxSavings           float64   `json:"npvTaxSavings"`
	CreatedAt               time.Time `json:"createdAt"`
}
