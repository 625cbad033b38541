package stats

import (
	"errors"
	"fmt"
)

// ErrComputation is the sentinel kind for statistics that are undefined
// on the given data.
var ErrComputation = errors.New("statistic undefined")

// ComputationError reports a statistic that could not be computed and why.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s", e.Op, e.Reason)
}

func (e *ComputationError) Unwrap() error { return ErrComputation }
