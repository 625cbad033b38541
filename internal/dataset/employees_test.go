package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const employeeHeader = "Age,Attrition,BusinessTravel,DailyRate,Department,DistanceFromHome,Education,EducationField,EmployeeNumber,Gender,JobRole,MonthlyIncome"

func TestLoadEmployees_ParsesRows(t *testing.T) {
	path := writeFixture(t, "hr.csv", employeeHeader+"\n"+
		"41,Yes,Travel_Rarely,1102,Sales,1,2,Life Sciences,1,Female,Sales Executive,5993\n"+
		"49,no,Travel_Frequently,279,Research & Development,8,1,Life Sciences,2,Male,Research Scientist,5130\n")

	employees, err := LoadEmployees(path)
	if err != nil {
		t.Fatalf("LoadEmployees returned error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("got %d employees, want 2", len(employees))
	}

	first := employees[0]
	if first.EmployeeNumber != 1 || first.Age != 41 || !first.Attrition {
		t.Errorf("first row parsed as %+v", first)
	}
	if first.BusinessTravel != models.TravelRarely {
		t.Errorf("BusinessTravel = %q, want %q", first.BusinessTravel, models.TravelRarely)
	}
	if first.JobRole != "Sales Executive" {
		t.Errorf("JobRole = %q, want Sales Executive", first.JobRole)
	}
	if first.MonthlyIncome != 5993 {
		t.Errorf("MonthlyIncome = %v, want 5993", first.MonthlyIncome)
	}

	// Attrition matching is case-insensitive.
	if employees[1].Attrition {
		t.Error("second row Attrition = true, want false")
	}
}

func TestLoadEmployees_MissingColumn(t *testing.T) {
	path := writeFixture(t, "hr.csv",
		"Age,Attrition,BusinessTravel,Department,DistanceFromHome,Education,EducationField,EmployeeNumber,Gender,JobRole\n"+
			"41,Yes,Travel_Rarely,Sales,1,2,Life Sciences,1,Female,Sales Executive\n")

	_, err := LoadEmployees(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}

	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("err %T not a *MissingColumnError", err)
	}
	if missing.Column != "MonthlyIncome" {
		t.Errorf("missing column = %q, want MonthlyIncome", missing.Column)
	}
}

func TestLoadEmployees_BadAttritionFlag(t *testing.T) {
	path := writeFixture(t, "hr.csv", employeeHeader+"\n"+
		"41,Maybe,Travel_Rarely,1102,Sales,1,2,Life Sciences,1,Female,Sales Executive,5993\n")

	_, err := LoadEmployees(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err %T not a *ParseError", err)
	}
	if parseErr.Row != 1 || parseErr.Column != "Attrition" || parseErr.Value != "Maybe" {
		t.Errorf("parse error context = %+v", parseErr)
	}
}

func TestLoadEmployees_EducationOutOfRange(t *testing.T) {
	path := writeFixture(t, "hr.csv", employeeHeader+"\n"+
		"41,Yes,Travel_Rarely,1102,Sales,1,6,Life Sciences,1,Female,Sales Executive,5993\n")

	_, err := LoadEmployees(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestLoadEmployees_RaggedRow(t *testing.T) {
	path := writeFixture(t, "hr.csv", employeeHeader+"\n"+
		"41,Yes,Travel_Rarely\n")

	_, err := LoadEmployees(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.Row != 1 {
		t.Errorf("Row = %d, want 1", parseErr.Row)
	}
}

func TestLoadEmployees_HeaderOnly(t *testing.T) {
	path := writeFixture(t, "hr.csv", employeeHeader+"\n")

	_, err := LoadEmployees(path)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}
