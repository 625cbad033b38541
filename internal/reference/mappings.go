package reference

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

//go:embed assets/education_levels.csv
var educationLevelsCSV string

//go:embed assets/field_mappings.csv
var fieldMappingsCSV string

// educationLevels maps census education labels to the 1..5 ordinal
// scale of the HR dataset. Labels absent from the table do not qualify.
var educationLevels = mustParseLevels(educationLevelsCSV)

// fieldMappings maps census occupations to HR education fields.
// Occupations absent from the table do not qualify.
var fieldMappings = mustParseFields(fieldMappingsCSV)

// EducationLevelFor translates an education label ("Bachelors") to its
// 1..5 level.
func EducationLevelFor(label string) (int, bool) {
	level, ok := educationLevels[label]
	return level, ok
}

func mustParseLevels(raw string) map[string]int {
	out := make(map[string]int)
	for _, row := range mustReadRows(raw, "education_levels") {
		level, err := strconv.Atoi(row[1])
		if err != nil || level < 1 || level > 5 {
			panic(fmt.Sprintf("education_levels: bad level %q for %q", row[1], row[0]))
		}
		out[row[0]] = level
	}
	return out
}

func mustParseFields(raw string) map[string]string {
	out := make(map[string]string)
	for _, row := range mustReadRows(raw, "field_mappings") {
		out[row[0]] = row[1]
	}
	return out
}

func mustReadRows(raw, name string) [][]string {
	r := csv.NewReader(strings.NewReader(raw))
	rows, err := r.ReadAll()
	if err != nil {
		panic(fmt.Sprintf("%s: embedded table unreadable: %v", name, err))
	}
	if len(rows) < 2 {
		panic(fmt.Sprintf("%s: embedded table is empty", name))
	}
	for _, row := range rows[1:] {
		if len(row) != 2 || row[0] == "" || row[1] == "" {
			panic(fmt.Sprintf("%s: malformed row %v", name, row))
		}
	}
	return rows[1:]
}
