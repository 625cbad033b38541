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

// The census income file carries no header row. Positions follow the
// published column order of the UCI adult dataset.
const (
	adultFieldCount = 15

	adultAge           = 0
	adultWorkClass     = 1
	adultEducation     = 3
	adultOccupation    = 6
	adultNativeCountry = 13
	adultIncome        = 14
)

var errIncomeLabel = errors.New("want <=50K or >50K")

// LoadAdult reads the census income dataset.
func LoadAdult(path string) ([]models.AdultRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open census dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = adultFieldCount

	var records []models.AdultRecord
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Row: row, Err: err}
		}

		rec, err := parseAdult(path, row, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}
	return records, nil
}

func parseAdult(path string, row int, fields []string) (models.AdultRecord, error) {
	var rec models.AdultRecord
	var err error

	if rec.Age, err = parseIntCell(path, row, "age", strings.TrimSpace(fields[adultAge])); err != nil {
		return models.AdultRecord{}, err
	}

	rec.WorkClass = strings.TrimSpace(fields[adultWorkClass])
	rec.Education = strings.TrimSpace(fields[adultEducation])
	rec.Occupation = strings.TrimSpace(fields[adultOccupation])
	rec.NativeCountry = strings.TrimSpace(fields[adultNativeCountry])

	// The test split of the dataset suffixes income labels with a period.
	switch strings.TrimSuffix(strings.TrimSpace(fields[adultIncome]), ".") {
	case ">50K":
		rec.Over50K = true
	case "<=50K":
		rec.Over50K = false
	default:
		return models.AdultRecord{}, &ParseError{
			Path: path, Row: row, Column: "income",
			Value: fields[adultIncome], Err: errIncomeLabel,
		}
	}

	return rec, nil
}
