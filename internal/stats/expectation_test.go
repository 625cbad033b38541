package stats

import (
	"errors"
	"testing"

	"github.com/kunalpachori/hr-attrition-analysis/internal/derive"
	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

func merged(monthly, expected float64, left bool) models.MergedRecord {
	rec := models.MergedRecord{
		Employee:       models.Employee{MonthlyIncome: monthly, Attrition: left},
		ExpectedIncome: expected,
	}
	records := []models.MergedRecord{rec}
	derive.Enrich(records)
	return records[0]
}

func TestSplitByExpectation(t *testing.T) {
	records := []models.MergedRecord{
		// Low expectation (40000): three leavers, one of them a high earner.
		merged(3000, 40000, true),
		merged(2500, 40000, true),
		merged(5000, 40000, true),
		// High expectation (60000): one leaver, earning low.
		merged(3000, 60000, true),
		// Stayers are ignored.
		merged(9000, 40000, false),
		merged(9000, 60000, false),
	}

	split, err := SplitByExpectation(records)
	if err != nil {
		t.Fatalf("SplitByExpectation returned error: %v", err)
	}

	low := split.LowExpectation
	if low.Leavers != 3 || low.HighCount != 1 || low.LowCount != 2 {
		t.Errorf("low side counts = %+v", low)
	}
	if low.HighPct != 33.33 || low.LowPct != 66.67 {
		t.Errorf("low side percentages = %v / %v, want 33.33 / 66.67", low.HighPct, low.LowPct)
	}

	high := split.HighExpectation
	if high.Leavers != 1 || high.HighCount != 0 || high.LowCount != 1 {
		t.Errorf("high side counts = %+v", high)
	}
	if high.HighPct != 0 || high.LowPct != 100 {
		t.Errorf("high side percentages = %v / %v, want 0 / 100", high.HighPct, high.LowPct)
	}
}

func TestSplitByExpectation_SideWithoutLeavers(t *testing.T) {
	records := []models.MergedRecord{
		merged(3000, 40000, true),
		merged(9000, 60000, false),
	}

	_, err := SplitByExpectation(records)
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}
}

func TestSplitByExpectation_Empty(t *testing.T) {
	if _, err := SplitByExpectation(nil); !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}
}
