package report

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kunalpachori/hr-attrition-analysis/internal/stats"
)

// ScatterPoint is one x/y observation.
type ScatterPoint struct {
	X float64
	Y float64
}

// ScatterSeries is a named group of points, one series per chart legend
// entry.
type ScatterSeries struct {
	Name   string
	Points []ScatterPoint
}

// PieSlice is one labelled share of a pie chart.
type PieSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ExpectationChart draws the leaver salary split per expectation band
// as a grouped bar chart.
func (r *Renderer) ExpectationChart(split stats.ExpectationSplit) error {
	if !r.charts {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Leaver salaries against expectation"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Name: "share of leavers %"}),
	)
	bar.SetXAxis([]string{"low expectation", "high expectation"}).
		AddSeries("high salary", []opts.BarData{
			{Value: split.LowExpectation.HighPct},
			{Value: split.HighExpectation.HighPct},
		}).
		AddSeries("low salary", []opts.BarData{
			{Value: split.LowExpectation.LowPct},
			{Value: split.HighExpectation.LowPct},
		})

	return r.writeChart(ExpectationChartFile, bar.Render)
}

// RatesChart draws attrition percentages per group as a bar chart.
func (r *Renderer) RatesChart(caption, file string, rates []stats.GroupRate) error {
	if !r.charts {
		return nil
	}

	categories := make([]string, len(rates))
	values := make([]opts.BarData, len(rates))
	for i, g := range rates {
		categories[i] = g.Category
		values[i] = opts.BarData{Value: stats.RoundTo2(g.Rate * 100)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: caption}),
		charts.WithYAxisOpts(opts.YAxis{Name: "attrition %"}),
	)
	bar.SetXAxis(categories).AddSeries("attrition", values)

	return r.writeChart(file, bar.Render)
}

// ScatterChart draws one or more point series on numeric axes. A
// non-nil fit adds the least-squares line across the observed x range.
func (r *Renderer) ScatterChart(caption, file, xName, yName string, series []ScatterSeries, fit *stats.RegressionResult) error {
	if !r.charts {
		return nil
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: caption}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value", Scale: true}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Scale: true}),
	)

	for _, s := range series {
		points := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			points[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}}
		}
		scatter.AddSeries(s.Name, points)
	}

	if fit != nil {
		lo, hi := xRange(series)
		line := charts.NewLine()
		line.AddSeries("fit", []opts.LineData{
			{Value: []interface{}{lo, fit.Intercept + fit.Slope*lo}},
			{Value: []interface{}{hi, fit.Intercept + fit.Slope*hi}},
		})
		scatter.Overlap(line)
	}

	return r.writeChart(file, scatter.Render)
}

// PieChart draws labelled shares as a pie.
func (r *Renderer) PieChart(caption, file string, slices []PieSlice) error {
	if !r.charts {
		return nil
	}

	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{Name: s.Label, Value: s.Value}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: caption}),
	)
	pie.AddSeries("share", data)

	return r.writeChart(file, pie.Render)
}

// xRange finds the x extent across every series.
func xRange(series []ScatterSeries) (float64, float64) {
	lo, hi := 0.0, 0.0
	first := true
	for _, s := range series {
		for _, p := range s.Points {
			if first {
				lo, hi = p.X, p.X
				first = false
				continue
			}
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
	}
	return lo, hi
}
