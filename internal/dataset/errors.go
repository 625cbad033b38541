package dataset

import (
	"errors"
	"fmt"
)

// Sentinel kinds for errors.Is checks. The concrete types below carry
// the file, row and column context.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrParse         = errors.New("malformed cell")
	ErrEmptyDataset  = errors.New("dataset has no data rows")
)

// MissingColumnError reports a required header absent from a dataset.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Path, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// ParseError reports a cell or row that could not be converted. Row is
// 1-based and counts data rows, excluding any header.
type ParseError struct {
	Path   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d: column %q: cannot parse %q: %v",
		e.Path, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrParse }
