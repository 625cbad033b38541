// Package stats computes the aggregate measures behind the hypotheses:
// attrition rates per group, the expectation split and the paired-series
// statistics. Rates live in [0,1]; printed percentages are rounded to
// two decimals.
package stats

import "math"

// Observation pairs a grouping key with an attrition flag.
type Observation struct {
	Category string
	Left     bool
}

// GroupRate is the attrition outcome of one group.
type GroupRate struct {
	Category string  `json:"category"`
	Total    int     `json:"total"`
	Leavers  int     `json:"leavers"`
	Stayers  int     `json:"stayers"`
	Rate     float64 `json:"rate"`
}

// AttritionRate is leavers over total.
func AttritionRate(leavers, total int) (float64, error) {
	if total == 0 {
		return 0, &ComputationError{Op: "attrition rate", Reason: "empty group"}
	}
	return float64(leavers) / float64(total), nil
}

// RateByCategory groups observations by category and computes each
// group's attrition rate. Groups come back in first-appearance order,
// so equal inputs always produce equal outputs.
func RateByCategory(observations []Observation) ([]GroupRate, error) {
	if len(observations) == 0 {
		return nil, &ComputationError{Op: "attrition rate", Reason: "empty group"}
	}

	index := make(map[string]int)
	var rates []GroupRate
	for _, obs := range observations {
		i, ok := index[obs.Category]
		if !ok {
			i = len(rates)
			index[obs.Category] = i
			rates = append(rates, GroupRate{Category: obs.Category})
		}
		rates[i].Total++
		if obs.Left {
			rates[i].Leavers++
		} else {
			rates[i].Stayers++
		}
	}

	for i := range rates {
		rate, err := AttritionRate(rates[i].Leavers, rates[i].Total)
		if err != nil {
			return nil, err
		}
		rates[i].Rate = rate
	}

	return rates, nil
}

// RoundTo2 keeps two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Binary encodes a flag series as 0/1 values for paired-series math.
func Binary(flags []bool) []float64 {
	out := make([]float64, len(flags))
	for i, f := range flags {
		if f {
			out[i] = 1
		}
	}
	return out
}
