package report

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kunalpachori/hr-attrition-analysis/internal/stats"
)

// ExpectationTable prints the leaver salary split per expectation band.
func (r *Renderer) ExpectationTable(split stats.ExpectationSplit) {
	if !r.tables {
		return
	}

	w := r.tableWriter()
	fmt.Fprintln(w, "Leaver salaries against the expected income for their bracket")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Expectation", "Leavers", "High Salary %", "Low Salary %"})
	for _, side := range []stats.ExpectationSide{split.LowExpectation, split.HighExpectation} {
		table.Append([]string{
			string(side.Expectation),
			strconv.Itoa(side.Leavers),
			formatFloat(side.HighPct),
			formatFloat(side.LowPct),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

// RatesTable prints attrition rates per group under a caption.
func (r *Renderer) RatesTable(caption string, rates []stats.GroupRate) {
	if !r.tables {
		return
	}

	w := r.tableWriter()
	fmt.Fprintln(w, caption)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Total", "Leavers", "Stayers", "Attrition %"})
	for _, g := range rates {
		table.Append([]string{
			g.Category,
			strconv.Itoa(g.Total),
			strconv.Itoa(g.Leavers),
			strconv.Itoa(g.Stayers),
			formatFloat(stats.RoundTo2(g.Rate * 100)),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

// CorrelationTable prints the Pearson coefficients and the fitted
// income-on-age line.
func (r *Renderer) CorrelationTable(results []stats.CorrelationResult, fit stats.RegressionResult) {
	if !r.tables {
		return
	}

	w := r.tableWriter()
	fmt.Fprintln(w, "Correlation of annual income with age, education and attrition")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pair", "N", "Pearson R"})
	for _, res := range results {
		table.Append([]string{
			res.Pair,
			strconv.Itoa(res.N),
			strconv.FormatFloat(res.R, 'f', 4, 64),
		})
	}
	table.Render()

	fmt.Fprintf(w, "income-on-age fit: income = %.2f + %.2f*age (r=%.4f, r2=%.4f)\n\n",
		fit.Intercept, fit.Slope, fit.R, fit.R2)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
