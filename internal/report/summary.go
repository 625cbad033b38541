package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/stats"
)

// Summary is the machine-readable result of one run. Apart from the
// run id, identical inputs produce identical content.
type Summary struct {
	RunID       string              `json:"run_id"`
	Inputs      InputCounts         `json:"inputs"`
	Salary      *SalarySummary      `json:"salary_expectation,omitempty"`
	Correlation *CorrelationSummary `json:"correlation,omitempty"`
	Logistics   *LogisticsSummary   `json:"workplace_logistics,omitempty"`
	Errors      []string            `json:"errors,omitempty"`
}

// InputCounts records how many rows each source contributed.
type InputCounts struct {
	Employees     int `json:"employees"`
	ReferenceRows int `json:"reference_rows,omitempty"`
}

// SalarySummary is the salary-shortfall hypothesis outcome.
type SalarySummary struct {
	Merged        int                    `json:"merged"`
	Dropped       int                    `json:"dropped"`
	DuplicateKeys int                    `json:"duplicate_reference_keys"`
	Split         stats.ExpectationSplit `json:"split"`
}

// CorrelationSummary is the correlation-strength hypothesis outcome.
type CorrelationSummary struct {
	Pairs       []stats.CorrelationResult `json:"pairs"`
	IncomeByAge stats.RegressionResult    `json:"income_by_age_fit"`
}

// LogisticsSummary is the workplace-logistics hypothesis outcome.
type LogisticsSummary struct {
	Travel         []stats.GroupRate `json:"travel"`
	Department     []stats.GroupRate `json:"department"`
	Distance       []stats.GroupRate `json:"distance"`
	DistanceShares []PieSlice        `json:"distance_shares"`
}

// WriteSummary writes summary.json into the output directory. It is
// written on every run, including failed ones.
func (r *Renderer) WriteSummary(s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(r.dir, SummaryJSONFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	r.logger.Info("wrote run summary",
		zap.String("file", SummaryJSONFile),
		zap.Int("errors", len(s.Errors)))

	return nil
}
