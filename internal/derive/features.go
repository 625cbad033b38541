// Package derive computes the feature columns of the analysis: salary
// annualization, expected-vs-actual deltas and the categorical
// groupings. Everything here is a pure function over loaded records.
package derive

import (
	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

const (
	monthsPerYear = 12

	// Annual income at or above this lands in the high bucket.
	highIncomeThreshold = 50000

	// Commutes up to this many miles count as near.
	nearCommuteMiles = 25
)

// AnnualIncome converts a monthly income to its yearly equivalent.
func AnnualIncome(monthly float64) float64 {
	return monthly * monthsPerYear
}

// SalaryDelta is actual minus expected annual income. Negative means
// the employee earns less than the reference expectation.
func SalaryDelta(annual, expected float64) float64 {
	return annual - expected
}

// SalaryBucketFor classifies an annual income against the threshold.
func SalaryBucketFor(annual float64) models.SalaryBucket {
	if annual >= highIncomeThreshold {
		return models.SalaryHigh
	}
	return models.SalaryLow
}

// TravelCategoryFor maps the HR travel codes onto analysis categories.
// The loader rejects codes outside the known three.
func TravelCategoryFor(travel models.BusinessTravel) models.TravelCategory {
	switch travel {
	case models.TravelRarely:
		return models.TravelCategoryRare
	case models.TravelFrequently:
		return models.TravelCategoryFrequent
	default:
		return models.TravelCategoryNone
	}
}

// DistanceBandFor splits commute distances at the near/far boundary.
func DistanceBandFor(miles int) models.DistanceBand {
	if miles <= nearCommuteMiles {
		return models.DistanceNear
	}
	return models.DistanceFar
}

// Enrich fills the derived salary fields of merged records in place.
func Enrich(records []models.MergedRecord) {
	for i := range records {
		rec := &records[i]
		rec.AnnualIncome = AnnualIncome(rec.Employee.MonthlyIncome)
		rec.SalaryDelta = SalaryDelta(rec.AnnualIncome, rec.ExpectedIncome)
		rec.SalaryBucket = SalaryBucketFor(rec.AnnualIncome)
	}
}
