package stats

import (
	"gonum.org/v1/gonum/stat"
)

// CorrelationResult is the Pearson coefficient of one labelled pair of
// series, with the number of observations behind it.
type CorrelationResult struct {
	Pair string  `json:"pair"`
	N    int     `json:"n"`
	R    float64 `json:"r"`
}

// Correlation computes the Pearson coefficient of two equal-length
// series. It is undefined when either series has zero variance.
func Correlation(pair string, xs, ys []float64) (CorrelationResult, error) {
	if err := checkPaired("correlation", xs, ys); err != nil {
		return CorrelationResult{}, err
	}
	return CorrelationResult{Pair: pair, N: len(xs), R: stat.Correlation(xs, ys, nil)}, nil
}

// RegressionResult is a fitted least-squares line.
type RegressionResult struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	R         float64 `json:"r"`
	R2        float64 `json:"r2"`
}

// Regression fits y = intercept + slope*x by ordinary least squares.
func Regression(xs, ys []float64) (RegressionResult, error) {
	if err := checkPaired("regression", xs, ys); err != nil {
		return RegressionResult{}, err
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r := stat.Correlation(xs, ys, nil)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)

	return RegressionResult{Intercept: intercept, Slope: slope, R: r, R2: r2}, nil
}

func checkPaired(name string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &ComputationError{Op: name, Reason: "series lengths differ"}
	}
	if len(xs) < 2 {
		return &ComputationError{Op: name, Reason: "need at least two observations"}
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return &ComputationError{Op: name, Reason: "zero variance"}
	}
	return nil
}
