package stats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCorrelation_PerfectPositive(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}

	result, err := Correlation("x vs y", xs, ys)
	if err != nil {
		t.Fatalf("Correlation returned error: %v", err)
	}
	if !almostEqual(result.R, 1) {
		t.Errorf("R = %v, want 1", result.R)
	}
	if result.Pair != "x vs y" || result.N != 5 {
		t.Errorf("result = %+v, want pair %q n 5", result, "x vs y")
	}
}

func TestCorrelation_PerfectNegative(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{8, 6, 4, 2}

	result, err := Correlation("x vs y", xs, ys)
	if err != nil {
		t.Fatalf("Correlation returned error: %v", err)
	}
	if !almostEqual(result.R, -1) {
		t.Errorf("R = %v, want -1", result.R)
	}
}

func TestCorrelation_StaysInRange(t *testing.T) {
	xs := []float64{3, 7, 1, 9, 4, 6, 2}
	ys := []float64{1, 0, 1, 0, 0, 1, 1}

	result, err := Correlation("x vs flag", xs, ys)
	if err != nil {
		t.Fatalf("Correlation returned error: %v", err)
	}
	if result.R < -1 || result.R > 1 {
		t.Errorf("R = %v, outside [-1,1]", result.R)
	}
}

func TestCorrelation_ZeroVariance(t *testing.T) {
	xs := []float64{5, 5, 5, 5}
	ys := []float64{1, 2, 3, 4}

	_, err := Correlation("flat vs y", xs, ys)
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}

	var comp *ComputationError
	if !errors.As(err, &comp) || comp.Reason != "zero variance" {
		t.Errorf("error context = %v", err)
	}
}

func TestCorrelation_LengthMismatch(t *testing.T) {
	if _, err := Correlation("x vs y", []float64{1, 2}, []float64{1}); !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}
}

func TestCorrelation_TooFewObservations(t *testing.T) {
	if _, err := Correlation("x vs y", []float64{1}, []float64{2}); !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}
}

func TestRegression_FitsExactLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 + 2*x
	}

	fit, err := Regression(xs, ys)
	if err != nil {
		t.Fatalf("Regression returned error: %v", err)
	}
	if !almostEqual(fit.Intercept, 3) || !almostEqual(fit.Slope, 2) {
		t.Errorf("fit = %+v, want intercept 3 slope 2", fit)
	}
	if !almostEqual(fit.R, 1) || !almostEqual(fit.R2, 1) {
		t.Errorf("fit = %+v, want r 1 r2 1", fit)
	}
}

func TestRegression_ZeroVariance(t *testing.T) {
	_, err := Regression([]float64{1, 2, 3}, []float64{7, 7, 7})
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("err = %v, want ErrComputation", err)
	}
}
