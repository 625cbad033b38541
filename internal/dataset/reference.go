package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
	"github.com/kunalpachori/hr-attrition-analysis/internal/reference"
)

var referenceColumns = []string{"age_bucket", "education", "expected_income"}

var (
	errEducationLabel = errors.New("neither a 1..5 level nor a known education label")
	errNegativeIncome = errors.New("expected income cannot be negative")
)

// LoadReference reads an expected-salary reference table. The education
// column accepts a numeric 1..5 level or an education label such as
// "Bachelors".
func LoadReference(path string) ([]models.ReferenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read reference header: %w", err)
	}
	cols, err := indexColumns(path, header, referenceColumns)
	if err != nil {
		return nil, err
	}

	var records []models.ReferenceRecord
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Row: row, Err: err}
		}

		rec, err := parseReference(path, row, fields, cols)
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

func parseReference(path string, row int, fields []string, cols map[string]int) (models.ReferenceRecord, error) {
	var rec models.ReferenceRecord
	var err error

	rawBucket := cell(fields, cols, "age_bucket")
	if rec.Bucket, err = models.ParseAgeBucket(rawBucket); err != nil {
		return models.ReferenceRecord{}, &ParseError{
			Path: path, Row: row, Column: "age_bucket", Value: rawBucket, Err: err,
		}
	}

	if rec.Education, err = parseEducation(path, row, cell(fields, cols, "education")); err != nil {
		return models.ReferenceRecord{}, err
	}

	if rec.ExpectedIncome, err = parseFloatCell(path, row, "expected_income", cell(fields, cols, "expected_income")); err != nil {
		return models.ReferenceRecord{}, err
	}
	if rec.ExpectedIncome < 0 {
		return models.ReferenceRecord{}, &ParseError{
			Path: path, Row: row, Column: "expected_income",
			Value: cell(fields, cols, "expected_income"), Err: errNegativeIncome,
		}
	}

	return rec, nil
}

func parseEducation(path string, row int, value string) (int, error) {
	if level, err := strconv.Atoi(value); err == nil {
		if level < 1 || level > 5 {
			return 0, &ParseError{
				Path: path, Row: row, Column: "education", Value: value, Err: errEducationLevel,
			}
		}
		return level, nil
	}

	if level, ok := reference.EducationLevelFor(value); ok {
		return level, nil
	}

	return 0, &ParseError{
		Path: path, Row: row, Column: "education", Value: value, Err: errEducationLabel,
	}
}

// WriteReference persists a reference table in the same layout
// LoadReference reads, with incomes rounded to cents.
func WriteReference(path string, records []models.ReferenceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create reference table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(referenceColumns); err != nil {
		return fmt.Errorf("write reference header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Bucket.String(),
			strconv.Itoa(rec.Education),
			strconv.FormatFloat(rec.ExpectedIncome, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write reference row: %w", err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flush reference table: %w", err)
	}
	return f.Close()
}
