// Package dataset reads the delimited source files into typed records.
// Loaders stream row by row, validate headers up front and surface the
// offending file, row and column on every failure.
package dataset

import (
	"strconv"
	"strings"
)

// indexColumns maps lowercased header names to their positions and
// verifies every required column is present.
func indexColumns(path string, header []string, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, name := range required {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return nil, &MissingColumnError{Path: path, Column: name}
		}
	}

	return cols, nil
}

// cell returns the trimmed value of the named column in the current row.
func cell(fields []string, cols map[string]int, name string) string {
	return strings.TrimSpace(fields[cols[strings.ToLower(name)]])
}

func parseIntCell(path string, row int, column, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Path: path, Row: row, Column: column, Value: value, Err: err}
	}
	return n, nil
}

func parseFloatCell(path string, row int, column, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Path: path, Row: row, Column: column, Value: value, Err: err}
	}
	return f, nil
}
