package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeBucket is a closed age range, formatted "lo-hi".
type AgeBucket struct {
	Lo int
	Hi int
}

// ParseAgeBucket reads a "lo-hi" range with lo ≤ hi.
func ParseAgeBucket(s string) (AgeBucket, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return AgeBucket{}, fmt.Errorf("age bucket %q is not a lo-hi range", s)
	}

	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return AgeBucket{}, fmt.Errorf("age bucket %q: bad lower bound", s)
	}
	high, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return AgeBucket{}, fmt.Errorf("age bucket %q: bad upper bound", s)
	}

	if low < 0 || low > high {
		return AgeBucket{}, fmt.Errorf("age bucket %q: bounds out of order", s)
	}
	return AgeBucket{Lo: low, Hi: high}, nil
}

// Contains reports whether the age falls inside the range.
func (b AgeBucket) Contains(age int) bool {
	return age >= b.Lo && age <= b.Hi
}

// Overlaps reports whether two ranges share any age.
func (b AgeBucket) Overlaps(o AgeBucket) bool {
	return b.Lo <= o.Hi && o.Lo <= b.Hi
}

func (b AgeBucket) String() string {
	return fmt.Sprintf("%d-%d", b.Lo, b.Hi)
}

// AgeBuckets are the canonical working-age brackets the reference
// builder emits, ascending.
var AgeBuckets = []AgeBucket{
	{Lo: 18, Hi: 24},
	{Lo: 25, Hi: 34},
	{Lo: 35, Hi: 44},
	{Lo: 45, Hi: 54},
	{Lo: 55, Hi: 60},
}

// BucketForAge places an age into its canonical bracket. The bool
// reports whether the age falls inside the supported 18..60 range.
func BucketForAge(age int) (AgeBucket, bool) {
	for _, b := range AgeBuckets {
		if b.Contains(age) {
			return b, true
		}
	}
	return AgeBucket{}, false
}

// RefKey is the join key between employees and the reference table.
type RefKey struct {
	Bucket    AgeBucket
	Education int
}

func (k RefKey) String() string {
	return fmt.Sprintf("%s/%d", k.Bucket, k.Education)
}

// ReferenceRecord is one row of the expected-salary reference table:
// the annual income a person in the given age bucket with the given
// education level is expected to earn.
type ReferenceRecord struct {
	Bucket         AgeBucket
	Education      int
	ExpectedIncome float64
}

// Key returns the record's join key.
func (r ReferenceRecord) Key() RefKey {
	return RefKey{Bucket: r.Bucket, Education: r.Education}
}

// AdultRecord is one row of the census income dataset, reduced to the
// columns the reference builder consumes.
type AdultRecord struct {
	Age           int
	WorkClass     string
	Education     string
	Occupation    string
	NativeCountry string
	Over50K       bool
}

// SalaryBucket classifies an annual income against the high/low threshold.
type SalaryBucket string

const (
	SalaryHigh SalaryBucket = "high"
	SalaryLow  SalaryBucket = "low"
)

// TravelCategory is the analysis-side label for a travel frequency.
type TravelCategory string

const (
	TravelCategoryNone     TravelCategory = "none"
	TravelCategoryRare     TravelCategory = "rare"
	TravelCategoryFrequent TravelCategory = "frequent"
)

// DistanceBand splits commute distances at the 25 mile mark.
type DistanceBand string

const (
	DistanceNear DistanceBand = "near"
	DistanceFar  DistanceBand = "far"
)

// MergedRecord pairs an employee with the reference row its age bucket
// and education level matched. The salary features are filled in by the
// derivation stage after the join.
type MergedRecord struct {
	Employee       Employee
	Bucket         AgeBucket
	ExpectedIncome float64

	AnnualIncome float64
	SalaryDelta  float64
	SalaryBucket SalaryBucket
}
