package derive

import (
	"testing"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

func TestSalaryDelta_BelowExpectation(t *testing.T) {
	// An employee on 40000 a year against a 55000 expectation sits
	// 15000 under it and in the low bucket.
	delta := SalaryDelta(40000, 55000)
	if delta != -15000 {
		t.Errorf("SalaryDelta(40000, 55000) = %v, want -15000", delta)
	}
	if got := SalaryBucketFor(40000); got != models.SalaryLow {
		t.Errorf("SalaryBucketFor(40000) = %q, want low", got)
	}
}

func TestSalaryBucketFor_Threshold(t *testing.T) {
	cases := []struct {
		annual float64
		want   models.SalaryBucket
	}{
		{49999.99, models.SalaryLow},
		{50000, models.SalaryHigh},
		{50000.01, models.SalaryHigh},
		{0, models.SalaryLow},
	}
	for _, tc := range cases {
		if got := SalaryBucketFor(tc.annual); got != tc.want {
			t.Errorf("SalaryBucketFor(%v) = %q, want %q", tc.annual, got, tc.want)
		}
	}
}

func TestAnnualIncome(t *testing.T) {
	if got := AnnualIncome(5993); got != 71916 {
		t.Errorf("AnnualIncome(5993) = %v, want 71916", got)
	}
}

func TestTravelCategoryFor(t *testing.T) {
	cases := []struct {
		travel models.BusinessTravel
		want   models.TravelCategory
	}{
		{models.TravelNone, models.TravelCategoryNone},
		{models.TravelRarely, models.TravelCategoryRare},
		{models.TravelFrequently, models.TravelCategoryFrequent},
	}
	for _, tc := range cases {
		if got := TravelCategoryFor(tc.travel); got != tc.want {
			t.Errorf("TravelCategoryFor(%q) = %q, want %q", tc.travel, got, tc.want)
		}
	}
}

func TestDistanceBandFor_Boundary(t *testing.T) {
	if got := DistanceBandFor(25); got != models.DistanceNear {
		t.Errorf("DistanceBandFor(25) = %q, want near", got)
	}
	if got := DistanceBandFor(26); got != models.DistanceFar {
		t.Errorf("DistanceBandFor(26) = %q, want far", got)
	}
	if got := DistanceBandFor(1); got != models.DistanceNear {
		t.Errorf("DistanceBandFor(1) = %q, want near", got)
	}
}

func TestEnrich(t *testing.T) {
	records := []models.MergedRecord{
		{
			Employee:       models.Employee{MonthlyIncome: 5000},
			ExpectedIncome: 55000,
		},
		{
			Employee:       models.Employee{MonthlyIncome: 3000},
			ExpectedIncome: 41000,
		},
	}

	Enrich(records)

	first := records[0]
	if first.AnnualIncome != 60000 || first.SalaryDelta != 5000 || first.SalaryBucket != models.SalaryHigh {
		t.Errorf("first enriched record = %+v", first)
	}

	second := records[1]
	if second.AnnualIncome != 36000 || second.SalaryDelta != -5000 || second.SalaryBucket != models.SalaryLow {
		t.Errorf("second enriched record = %+v", second)
	}
}
