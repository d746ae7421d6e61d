package domain

// RecoveryPeriod is the number of years over which an asset class is
// depreciated. Only the enumerated values are valid; 0 marks land, which is
// never depreciated.
type RecoveryPeriod float64

const (
	PeriodLand            RecoveryPeriod = 0
	PeriodFiveYear        RecoveryPeriod = 5
	PeriodSevenYear       RecoveryPeriod = 7
	PeriodFifteenYear     RecoveryPeriod = 15
	PeriodResidentialBldg RecoveryPeriod = 27.5
	PeriodNonResidentBldg RecoveryPeriod = 39
)

// BonusEligible reports whether the class qualifies for bonus depreciation
// (property with a recovery period of 20 years or less).
func (p RecoveryPeriod) BonusEligible() bool {
	return p == PeriodFiveYear || p == PeriodSevenYear || p == PeriodFifteenYear
}

// StraightLine reports whether the class is depreciated straight-line with
// the annualized mid-month convention (building property).
func (p RecoveryPeriod) StraightLine() bool {
	return p == PeriodResidentialBldg || p == PeriodNonResidentBldg
}

// Valid reports whether p is one of the enumerated depreciable classes.
func (p RecoveryPeriod) Valid() bool {
	return p.BonusEligible() || p.StraightLine()
}

type PropertyType string

const (
	PropertyCommercial  PropertyType = "commercial"
	PropertyResidential PropertyType = "residential"
	PropertyMixedUse    PropertyType = "mixed_use"
	PropertyIndustrial  PropertyType = "industrial"
	PropertyRetail      PropertyType = "retail"
	PropertyHospitality PropertyType = "hospitality"
	PropertyHealthcare  PropertyType = "healthcare"
	PropertyMultifamily PropertyType = "multifamily"
)

var propertyTypes = map[PropertyType]struct{}{
	PropertyCommercial:  {},
	PropertyResidential: {},
	PropertyMixedUse:    {},
	PropertyIndustrial:  {},
	PropertyRetail:      {},
	PropertyHospitality: {},
	PropertyHealthcare:  {},
	PropertyMultifamily: {},
}

// Known reports whether t is one of the enumerated property types.
func (t PropertyType) Known() bool {
	_, ok := propertyTypes[t]
	return ok
}

// LongLifePeriod returns the recovery period for the structural building
// component: 27.5 years for residential-style property, 39 otherwise.
func (t PropertyType) LongLifePeriod() RecoveryPeriod {
	if t == PropertyResidential || t == PropertyMultifamily {
		return PeriodResidentialBldg
	}
	return PeriodNonResidentBldg
}
