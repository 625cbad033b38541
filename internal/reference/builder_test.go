package reference

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

func qualifying(age int, education string, over bool) models.AdultRecord {
	return models.AdultRecord{
		Age:           age,
		WorkClass:     "Private",
		Education:     education,
		Occupation:    "Adm-clerical",
		NativeCountry: "United-States",
		Over50K:       over,
	}
}

func TestBuild_FiltersAndAggregates(t *testing.T) {
	records := []models.AdultRecord{
		// 25-34 / level 3: two of four over the threshold.
		qualifying(30, "Bachelors", true),
		qualifying(31, "Bachelors", true),
		qualifying(32, "Bachelors", false),
		qualifying(33, "Bachelors", false),
		// 45-54 / level 2: one of one over.
		qualifying(50, "HS-grad", true),
	}

	// None of these qualify.
	wrongClass := qualifying(30, "Bachelors", true)
	wrongClass.WorkClass = "State-gov"
	wrongCountry := qualifying(30, "Bachelors", true)
	wrongCountry.NativeCountry = "Mexico"
	tooOld := qualifying(61, "Bachelors", true)
	tooYoung := qualifying(17, "Bachelors", true)
	unmappedOccupation := qualifying(30, "Bachelors", true)
	unmappedOccupation.Occupation = "Exec-managerial"
	unmappedEducation := qualifying(30, "?", true)

	records = append(records, wrongClass, wrongCountry, tooOld, tooYoung,
		unmappedOccupation, unmappedEducation)

	out, err := NewBuilder(zap.NewNop()).Build(records)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d reference records, want 2: %+v", len(out), out)
	}

	first := out[0]
	if first.Bucket != (models.AgeBucket{Lo: 25, Hi: 34}) || first.Education != 3 {
		t.Errorf("first group = %+v, want 25-34 level 3", first)
	}
	if first.ExpectedIncome != 50000 {
		t.Errorf("first expected income = %v, want 50000", first.ExpectedIncome)
	}

	second := out[1]
	if second.Bucket != (models.AgeBucket{Lo: 45, Hi: 54}) || second.Education != 2 {
		t.Errorf("second group = %+v, want 45-54 level 2", second)
	}
	if second.ExpectedIncome != incomeScale {
		t.Errorf("second expected income = %v, want %v", second.ExpectedIncome, incomeScale)
	}
}

func TestBuild_DeterministicOrder(t *testing.T) {
	records := []models.AdultRecord{
		qualifying(55, "Doctorate", true),
		qualifying(20, "HS-grad", false),
		qualifying(55, "HS-grad", false),
		qualifying(20, "Doctorate", true),
	}

	out, err := NewBuilder(zap.NewNop()).Build(records)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := []models.RefKey{
		{Bucket: models.AgeBucket{Lo: 18, Hi: 24}, Education: 2},
		{Bucket: models.AgeBucket{Lo: 18, Hi: 24}, Education: 5},
		{Bucket: models.AgeBucket{Lo: 55, Hi: 60}, Education: 2},
		{Bucket: models.AgeBucket{Lo: 55, Hi: 60}, Education: 5},
	}
	if len(out) != len(want) {
		t.Fatalf("got %d records, want %d", len(out), len(want))
	}
	for i, rec := range out {
		if rec.Key() != want[i] {
			t.Errorf("record %d key = %v, want %v", i, rec.Key(), want[i])
		}
	}
}

func TestBuild_NoQualifyingRows(t *testing.T) {
	records := []models.AdultRecord{
		{Age: 30, WorkClass: "Self-emp-inc", NativeCountry: "United-States"},
	}

	_, err := NewBuilder(zap.NewNop()).Build(records)
	if !errors.Is(err, ErrNoQualifyingRows) {
		t.Fatalf("err = %v, want ErrNoQualifyingRows", err)
	}
}

func TestEmbeddedMappings(t *testing.T) {
	if got := educationLevels["Bachelors"]; got != 3 {
		t.Errorf("educationLevels[Bachelors] = %d, want 3", got)
	}
	if got := educationLevels["Doctorate"]; got != 5 {
		t.Errorf("educationLevels[Doctorate] = %d, want 5", got)
	}
	if got := fieldMappings["Prof-specialty"]; got != "Medical" {
		t.Errorf("fieldMappings[Prof-specialty] = %q, want Medical", got)
	}
	if _, ok := fieldMappings["Exec-managerial"]; ok {
		t.Error("Exec-managerial should not be mapped")
	}
}
