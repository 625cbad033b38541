// Package report turns aggregate statistics into the run artifacts:
// summary tables on the console and in summary.txt, standalone HTML
// charts, and a machine-readable summary.json.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/config"
)

// Artifact file names under the output directory.
const (
	ExpectationChartFile  = "expectation_split.html"
	IncomeByAgeChartFile  = "income_by_age.html"
	TravelChartFile       = "attrition_by_travel.html"
	DepartmentChartFile   = "attrition_by_department.html"
	DistanceNearChartFile = "distance_near.html"
	DistanceFarChartFile  = "distance_far.html"
	DistancePieChartFile  = "distance_pie.html"
	SummaryTextFile       = "summary.txt"
	SummaryJSONFile       = "summary.json"
)

// Renderer writes analysis output to the console and the output
// directory. Tables go to stdout and summary.txt, charts to HTML files.
type Renderer struct {
	dir     string
	charts  bool
	tables  bool
	console io.Writer
	summary *os.File
	logger  *zap.Logger
}

// NewRenderer creates the output directory and opens the text summary.
func NewRenderer(cfg config.OutputConfig, logger *zap.Logger) (*Renderer, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	r := &Renderer{
		dir:     cfg.Dir,
		charts:  cfg.Charts,
		tables:  cfg.Tables,
		console: os.Stdout,
		logger:  logger,
	}

	if cfg.Tables {
		f, err := os.Create(filepath.Join(cfg.Dir, SummaryTextFile))
		if err != nil {
			return nil, fmt.Errorf("failed to create text summary: %w", err)
		}
		r.summary = f
	}

	return r, nil
}

// Close flushes and closes the text summary.
func (r *Renderer) Close() error {
	if r.summary == nil {
		return nil
	}
	err := r.summary.Close()
	r.summary = nil
	if err != nil {
		return fmt.Errorf("failed to close text summary: %w", err)
	}
	return nil
}

// tableWriter duplicates table output onto the text summary when open.
func (r *Renderer) tableWriter() io.Writer {
	if r.summary != nil {
		return io.MultiWriter(r.console, r.summary)
	}
	return r.console
}

// writeChart renders one chart into the output directory.
func (r *Renderer) writeChart(name string, render func(io.Writer) error) error {
	path := filepath.Join(r.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	r.logger.Debug("wrote chart",
		zap.String("file", name))

	return nil
}
