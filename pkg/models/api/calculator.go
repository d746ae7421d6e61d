package api

// Currency fields are plain JSON numbers, already rounded to 2 decimals by
// the engine.

type DepreciationRequest struct {
	CostBasis      float64 `json:"costBasis"`
	RecoveryPeriod float64 `json:"recoveryPeriod"`
	BonusRate      float64 `json:"bonusRate"`
}

type ScheduleEntry struct {
	Year                   int     `json:"year"`
	Depreciation           float64 `json:"depreciation"`
	CumulativeDepreciation float64 `json:"cumulativeDepreciation"`
	RemainingBasis         float64 `json:"remainingBasis"`
}

type DepreciationResponse struct {
	Schedule []ScheduleEntry `json:"schedule"`
}

type BonusRequest struct {
	Amount         float64 `json:"amount"`
	RecoveryPeriod float64 `json:"recoveryPeriod"`
	BonusRate      float64 `json:"bonusRate"`
}

type BonusResponse struct {
	BonusAmount    float64 `json:"bonusAmount"`
	FirstYearTotal float64 `json:"firstYearTotal"`
}

type NPVRequest struct {
	CashFlows    []float64 `json:"cashFlows"`
	DiscountRate float64   `json:"discountRate"`
}

type NPVResponse struct {
	NPV float64 `json:"npv"`
}

type AllocationItem struct {
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	RecoveryPeriod float64 `json:"recoveryPeriod"`
	Amount         float64 `json:"amount"`
	Percentage     float64 `json:"percentage"`
}

type AllocationResponse struct {
	PropertyType  string           `json:"propertyType"`
	BuildingValue float64          `json:"buildingValue"`
	Items         []AllocationItem `json:"items"`
}
