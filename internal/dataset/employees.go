package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

var employeeColumns = []string{
	"EmployeeNumber",
	"Age",
	"Attrition",
	"BusinessTravel",
	"Department",
	"DistanceFromHome",
	"Education",
	"EducationField",
	"Gender",
	"JobRole",
	"MonthlyIncome",
}

var (
	errAttritionFlag  = errors.New("want Yes or No")
	errTravelCode     = errors.New("unknown travel code")
	errEducationLevel = errors.New("education level outside 1..5")
)

// LoadEmployees reads the HR attrition dataset. Extra columns are
// ignored; a missing required column or an unparseable cell aborts the
// load with the offending location.
func LoadEmployees(path string) ([]models.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open employees dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read employees header: %w", err)
	}
	cols, err := indexColumns(path, header, employeeColumns)
	if err != nil {
		return nil, err
	}

	var employees []models.Employee
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Row: row, Err: err}
		}

		emp, err := parseEmployee(path, row, fields, cols)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if len(employees) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}
	return employees, nil
}

func parseEmployee(path string, row int, fields []string, cols map[string]int) (models.Employee, error) {
	var emp models.Employee
	var err error

	if emp.EmployeeNumber, err = parseIntCell(path, row, "EmployeeNumber", cell(fields, cols, "EmployeeNumber")); err != nil {
		return models.Employee{}, err
	}
	if emp.Age, err = parseIntCell(path, row, "Age", cell(fields, cols, "Age")); err != nil {
		return models.Employee{}, err
	}
	if emp.DistanceFromHome, err = parseIntCell(path, row, "DistanceFromHome", cell(fields, cols, "DistanceFromHome")); err != nil {
		return models.Employee{}, err
	}
	if emp.MonthlyIncome, err = parseFloatCell(path, row, "MonthlyIncome", cell(fields, cols, "MonthlyIncome")); err != nil {
		return models.Employee{}, err
	}

	if emp.Education, err = parseIntCell(path, row, "Education", cell(fields, cols, "Education")); err != nil {
		return models.Employee{}, err
	}
	if emp.Education < 1 || emp.Education > 5 {
		return models.Employee{}, &ParseError{
			Path: path, Row: row, Column: "Education",
			Value: cell(fields, cols, "Education"), Err: errEducationLevel,
		}
	}

	switch v := cell(fields, cols, "Attrition"); {
	case strings.EqualFold(v, "Yes"):
		emp.Attrition = true
	case strings.EqualFold(v, "No"):
		emp.Attrition = false
	default:
		return models.Employee{}, &ParseError{
			Path: path, Row: row, Column: "Attrition", Value: v, Err: errAttritionFlag,
		}
	}

	switch v := models.BusinessTravel(cell(fields, cols, "BusinessTravel")); v {
	case models.TravelNone, models.TravelRarely, models.TravelFrequently:
		emp.BusinessTravel = v
	default:
		return models.Employee{}, &ParseError{
			Path: path, Row: row, Column: "BusinessTravel", Value: string(v), Err: errTravelCode,
		}
	}

	emp.Department = cell(fields, cols, "Department")
	emp.EducationField = cell(fields, cols, "EducationField")
	emp.Gender = cell(fields, cols, "Gender")
	emp.JobRole = cell(fields, cols, "JobRole")

	return emp, nil
}
