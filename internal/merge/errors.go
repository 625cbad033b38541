package merge

import (
	"errors"
	"fmt"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

// ErrJoinAmbiguity is the sentinel kind for conflicting reference keys
// under strict matching.
var ErrJoinAmbiguity = errors.New("ambiguous reference key")

// JoinAmbiguityError reports a reference key that more than one row can
// answer for: an exact duplicate, or a second bucket overlapping ages
// at the same education level.
type JoinAmbiguityError struct {
	Bucket    models.AgeBucket
	Education int
	Count     int
}

func (e *JoinAmbiguityError) Error() string {
	return fmt.Sprintf("reference key %s/%d is claimed by %d rows",
		e.Bucket, e.Education, e.Count)
}

func (e *JoinAmbiguityError) Unwrap() error { return ErrJoinAmbiguity }
