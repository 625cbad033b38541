package stats

import (
	"fmt"

	"github.com/kunalpachori/hr-attrition-analysis/internal/derive"
	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

// ExpectationSide summarizes the leavers whose reference expectation
// fell on one side of the salary threshold: how many of them actually
// earned a high salary versus a low one.
type ExpectationSide struct {
	Expectation models.SalaryBucket `json:"expectation"`
	Leavers     int                 `json:"leavers"`
	HighCount   int                 `json:"high_count"`
	LowCount    int                 `json:"low_count"`
	HighPct     float64             `json:"high_pct"`
	LowPct      float64             `json:"low_pct"`
}

// ExpectationSplit is the two-sided view of leavers against their
// salary expectations.
type ExpectationSplit struct {
	LowExpectation  ExpectationSide `json:"low_expectation"`
	HighExpectation ExpectationSide `json:"high_expectation"`
}

// SplitByExpectation partitions leavers by whether their expected
// income clears the threshold, then computes the share of each side
// actually earning high and low salaries. Percentages are rounded to
// two decimals. A side with no leavers makes the split undefined.
func SplitByExpectation(records []models.MergedRecord) (ExpectationSplit, error) {
	split := ExpectationSplit{
		LowExpectation:  ExpectationSide{Expectation: models.SalaryLow},
		HighExpectation: ExpectationSide{Expectation: models.SalaryHigh},
	}

	for _, rec := range records {
		if !rec.Employee.Attrition {
			continue
		}

		side := &split.LowExpectation
		if derive.SalaryBucketFor(rec.ExpectedIncome) == models.SalaryHigh {
			side = &split.HighExpectation
		}

		side.Leavers++
		if rec.SalaryBucket == models.SalaryHigh {
			side.HighCount++
		} else {
			side.LowCount++
		}
	}

	for _, side := range []*ExpectationSide{&split.LowExpectation, &split.HighExpectation} {
		if side.Leavers == 0 {
			return ExpectationSplit{}, &ComputationError{
				Op:     "expectation split",
				Reason: fmt.Sprintf("no leavers with %s expectation", side.Expectation),
			}
		}
		side.HighPct = RoundTo2(float64(side.HighCount) / float64(side.Leavers) * 100)
		side.LowPct = RoundTo2(float64(side.LowCount) / float64(side.Leavers) * 100)
	}

	return split, nil
}
