// Package pipeline orchestrates the hypothesis analyses: load the
// datasets, run each selected hypothesis to completion, and collect
// every artifact and failure into the run summary.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/config"
	"github.com/kunalpachori/hr-attrition-analysis/internal/dataset"
	"github.com/kunalpachori/hr-attrition-analysis/internal/derive"
	"github.com/kunalpachori/hr-attrition-analysis/internal/fetch"
	"github.com/kunalpachori/hr-attrition-analysis/internal/merge"
	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
	"github.com/kunalpachori/hr-attrition-analysis/internal/reference"
	"github.com/kunalpachori/hr-attrition-analysis/internal/report"
	"github.com/kunalpachori/hr-attrition-analysis/internal/stats"
)

// Runner executes the analysis pipeline for one configuration.
type Runner struct {
	cfg      *config.Config
	logger   *zap.Logger
	fetcher  *fetch.Client
	renderer *report.Renderer
	runID    string
}

// NewRunner wires the pipeline collaborators and creates the output
// directory. Every log line of the run carries the run id.
func NewRunner(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	renderer, err := report.NewRenderer(cfg.Output, logger)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      cfg,
		logger:   logger,
		fetcher:  fetch.NewClient(&cfg.Download, logger),
		renderer: renderer,
		runID:    runID,
	}, nil
}

// Run executes the selected hypotheses in order. A failing hypothesis
// is recorded and the remaining ones still run; the summary is written
// either way and the combined failure comes back as the error.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	defer r.fetcher.Close()

	summary := &report.Summary{RunID: r.runID}

	employees, err := r.loadEmployees(ctx)
	if err != nil {
		// Nothing can run without the HR table.
		summary.Errors = append(summary.Errors, err.Error())
		if werr := r.renderer.WriteSummary(summary); werr != nil {
			r.logger.Error("failed to write run summary", zap.Error(werr))
		}
		r.renderer.Close()
		return err
	}
	summary.Inputs.Employees = len(employees)

	var failures []error

	if r.selected("1") {
		if err := r.runSalary(ctx, employees, summary); err != nil {
			r.logger.Error("salary expectation analysis failed", zap.Error(err))
			failures = append(failures, fmt.Errorf("salary expectation: %w", err))
		}
	}

	if r.selected("2") {
		if err := r.runCorrelation(employees, summary); err != nil {
			r.logger.Error("income correlation analysis failed", zap.Error(err))
			failures = append(failures, fmt.Errorf("income correlation: %w", err))
		}
	}

	if r.selected("3") {
		if err := r.runLogistics(employees, summary); err != nil {
			r.logger.Error("workplace logistics analysis failed", zap.Error(err))
			failures = append(failures, fmt.Errorf("workplace logistics: %w", err))
		}
	}

	for _, f := range failures {
		summary.Errors = append(summary.Errors, f.Error())
	}
	if err := r.renderer.WriteSummary(summary); err != nil {
		failures = append(failures, err)
	}
	if err := r.renderer.Close(); err != nil {
		failures = append(failures, err)
	}

	r.logger.Info("analysis run finished",
		zap.Int("failures", len(failures)),
		zap.Duration("elapsed", time.Since(start)))

	return errors.Join(failures...)
}

// selected reports whether the numbered hypothesis is enabled.
func (r *Runner) selected(hypothesis string) bool {
	return r.cfg.Analysis.Hypothesis == "all" || r.cfg.Analysis.Hypothesis == hypothesis
}

func (r *Runner) loadEmployees(ctx context.Context) ([]models.Employee, error) {
	start := time.Now()

	path, err := r.fetcher.Resolve(ctx, r.cfg.Inputs.Employees)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee dataset: %w", err)
	}

	employees, err := dataset.LoadEmployees(path)
	if err != nil {
		return nil, err
	}

	r.logger.Info("loaded employee dataset",
		zap.String("path", path),
		zap.Int("rows", len(employees)),
		zap.Duration("elapsed", time.Since(start)))

	return employees, nil
}

// loadReferenceRecords reads a prepared reference table when one is
// configured, otherwise builds one from the raw census extract.
func (r *Runner) loadReferenceRecords(ctx context.Context) ([]models.ReferenceRecord, error) {
	if r.cfg.Inputs.Reference != "" {
		path, err := r.fetcher.Resolve(ctx, r.cfg.Inputs.Reference)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reference table: %w", err)
		}
		return dataset.LoadReference(path)
	}

	path, err := r.fetcher.Resolve(ctx, r.cfg.Inputs.Adult)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve census dataset: %w", err)
	}
	adults, err := dataset.LoadAdult(path)
	if err != nil {
		return nil, err
	}

	records, err := reference.NewBuilder(r.logger).Build(adults)
	if err != nil {
		return nil, err
	}

	if r.cfg.Analysis.WriteReference {
		out := filepath.Join(r.cfg.Output.Dir, "reference_salaries.csv")
		if err := dataset.WriteReference(out, records); err != nil {
			return nil, fmt.Errorf("failed to write built reference table: %w", err)
		}
		r.logger.Info("wrote built reference table", zap.String("path", out))
	}

	return records, nil
}

// runSalary tests whether leavers were underpaid against the expected
// income for their age and education bracket.
func (r *Runner) runSalary(ctx context.Context, employees []models.Employee, summary *report.Summary) error {
	start := time.Now()

	refs, err := r.loadReferenceRecords(ctx)
	if err != nil {
		return err
	}
	summary.Inputs.ReferenceRows = len(refs)

	idx, err := merge.NewIndex(refs, r.cfg.Analysis.StrictJoin)
	if err != nil {
		return err
	}

	merged := merge.NewMerger(r.logger).Merge(employees, idx)
	if len(merged.Records) == 0 {
		return fmt.Errorf("no employees matched the reference table")
	}
	derive.Enrich(merged.Records)

	split, err := stats.SplitByExpectation(merged.Records)
	if err != nil {
		return err
	}

	r.renderer.ExpectationTable(split)
	if err := r.renderer.ExpectationChart(split); err != nil {
		return err
	}

	summary.Salary = &report.SalarySummary{
		Merged:        len(merged.Records),
		Dropped:       merged.Dropped,
		DuplicateKeys: idx.Conflicts(),
		Split:         split,
	}

	r.logger.Info("salary expectation analysis complete",
		zap.Int("merged", len(merged.Records)),
		zap.Int("dropped", merged.Dropped),
		zap.Int("duplicate_reference_keys", idx.Conflicts()),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// runCorrelation measures how strongly annual income tracks age,
// education level and attrition across the whole HR table.
func (r *Runner) runCorrelation(employees []models.Employee, summary *report.Summary) error {
	start := time.Now()

	ages := make([]float64, len(employees))
	incomes := make([]float64, len(employees))
	educations := make([]float64, len(employees))
	attrition := make([]bool, len(employees))
	for i, e := range employees {
		ages[i] = float64(e.Age)
		incomes[i] = derive.AnnualIncome(e.MonthlyIncome)
		educations[i] = float64(e.Education)
		attrition[i] = e.Attrition
	}

	byAge, err := stats.Correlation("annual income vs age", incomes, ages)
	if err != nil {
		return err
	}
	byEducation, err := stats.Correlation("annual income vs education", incomes, educations)
	if err != nil {
		return err
	}
	byAttrition, err := stats.Correlation("annual income vs attrition", incomes, stats.Binary(attrition))
	if err != nil {
		return err
	}
	results := []stats.CorrelationResult{byAge, byEducation, byAttrition}

	fit, err := stats.Regression(ages, incomes)
	if err != nil {
		return err
	}

	r.renderer.CorrelationTable(results, fit)

	leavers := report.ScatterSeries{Name: "leavers"}
	stayers := report.ScatterSeries{Name: "stayers"}
	for i, e := range employees {
		point := report.ScatterPoint{X: ages[i], Y: incomes[i]}
		if e.Attrition {
			leavers.Points = append(leavers.Points, point)
		} else {
			stayers.Points = append(stayers.Points, point)
		}
	}
	series := []report.ScatterSeries{leavers, stayers}
	if err := r.renderer.ScatterChart("Annual income by age", report.IncomeByAgeChartFile,
		"age", "annual income", series, &fit); err != nil {
		return err
	}

	summary.Correlation = &report.CorrelationSummary{Pairs: results, IncomeByAge: fit}

	r.logger.Info("income correlation analysis complete",
		zap.Int("observations", len(employees)),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// runLogistics tests travel frequency, department and commute distance
// against attrition. It works off the HR table alone.
func (r *Runner) runLogistics(employees []models.Employee, summary *report.Summary) error {
	start := time.Now()

	travel := make([]stats.Observation, len(employees))
	department := make([]stats.Observation, len(employees))
	distance := make([]stats.Observation, len(employees))
	for i, e := range employees {
		travel[i] = stats.Observation{Category: string(derive.TravelCategoryFor(e.BusinessTravel)), Left: e.Attrition}
		department[i] = stats.Observation{Category: e.Department, Left: e.Attrition}
		distance[i] = stats.Observation{Category: string(derive.DistanceBandFor(e.DistanceFromHome)), Left: e.Attrition}
	}

	travelRates, err := stats.RateByCategory(travel)
	if err != nil {
		return err
	}
	departmentRates, err := stats.RateByCategory(department)
	if err != nil {
		return err
	}
	distanceRates, err := stats.RateByCategory(distance)
	if err != nil {
		return err
	}

	r.renderer.RatesTable("Attrition by business travel", travelRates)
	r.renderer.RatesTable("Attrition by department", departmentRates)
	r.renderer.RatesTable("Attrition by commute distance", distanceRates)

	if err := r.renderer.RatesChart("Attrition by business travel", report.TravelChartFile, travelRates); err != nil {
		return err
	}
	if err := r.renderer.RatesChart("Attrition by department", report.DepartmentChartFile, departmentRates); err != nil {
		return err
	}

	near, far := distanceSeries(employees)
	if err := r.renderer.ScatterChart("Near commutes", report.DistanceNearChartFile,
		"distance from home", "age", near, nil); err != nil {
		return err
	}
	if err := r.renderer.ScatterChart("Far commutes", report.DistanceFarChartFile,
		"distance from home", "age", far, nil); err != nil {
		return err
	}

	shares := distanceShares(distanceRates)
	if err := r.renderer.PieChart("Attrition by commute distance", report.DistancePieChartFile, shares); err != nil {
		return err
	}

	summary.Logistics = &report.LogisticsSummary{
		Travel:         travelRates,
		Department:     departmentRates,
		Distance:       distanceRates,
		DistanceShares: shares,
	}

	r.logger.Info("workplace logistics analysis complete",
		zap.Int("employees", len(employees)),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// distanceSeries splits employees into near and far commute scatter
// series, with leavers and stayers as separate legend entries.
func distanceSeries(employees []models.Employee) (near, far []report.ScatterSeries) {
	build := func(band models.DistanceBand) []report.ScatterSeries {
		leavers := report.ScatterSeries{Name: "leavers"}
		stayers := report.ScatterSeries{Name: "stayers"}
		for _, e := range employees {
			if derive.DistanceBandFor(e.DistanceFromHome) != band {
				continue
			}
			point := report.ScatterPoint{X: float64(e.DistanceFromHome), Y: float64(e.Age)}
			if e.Attrition {
				leavers.Points = append(leavers.Points, point)
			} else {
				stayers.Points = append(stayers.Points, point)
			}
		}
		return []report.ScatterSeries{leavers, stayers}
	}
	return build(models.DistanceNear), build(models.DistanceFar)
}

// distanceShares turns the near/far rates into the four slices the
// study reports: leaver and stayer fractions within each band.
func distanceShares(rates []stats.GroupRate) []report.PieSlice {
	slices := make([]report.PieSlice, 0, len(rates)*2)
	for _, g := range rates {
		slices = append(slices,
			report.PieSlice{
				Label: fmt.Sprintf("left, %s commute", g.Category),
				Value: stats.RoundTo2(float64(g.Leavers) / float64(g.Total)),
			},
			report.PieSlice{
				Label: fmt.Sprintf("stayed, %s commute", g.Category),
				Value: stats.RoundTo2(float64(g.Stayers) / float64(g.Total)),
			})
	}
	return slices
}
