// Package merge joins employees against the expected-salary reference
// table: an employee matches the reference row whose age bucket
// contains their age at their education level.
package merge

import (
	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

// Index holds the reference table arranged for the join. Conflicting
// rows (exact duplicate keys, or overlapping buckets at one education
// level) resolve to the earliest row in input order; the conflicts are
// recorded for reporting.
type Index struct {
	byEducation map[int][]models.ReferenceRecord
	size        int
	conflicts   int
	conflictKey []models.RefKey
}

// NewIndex builds a join index from reference records. With strict set,
// any conflict fails the build with a JoinAmbiguityError naming the
// earliest contested key.
func NewIndex(records []models.ReferenceRecord, strict bool) (*Index, error) {
	idx := &Index{byEducation: make(map[int][]models.ReferenceRecord)}

	conflictCount := make(map[models.RefKey]int)
	for _, rec := range records {
		var contested *models.ReferenceRecord
		for i, earlier := range idx.byEducation[rec.Education] {
			if earlier.Bucket == rec.Bucket || earlier.Bucket.Overlaps(rec.Bucket) {
				contested = &idx.byEducation[rec.Education][i]
				break
			}
		}

		if contested != nil {
			key := contested.Key()
			if conflictCount[key] == 0 {
				conflictCount[key] = 2
				idx.conflictKey = append(idx.conflictKey, key)
			} else {
				conflictCount[key]++
			}
			idx.conflicts++

			// An exact duplicate adds nothing; an overlapping bucket
			// stays so ages beyond the earlier row still resolve.
			if contested.Bucket == rec.Bucket {
				continue
			}
		}

		idx.byEducation[rec.Education] = append(idx.byEducation[rec.Education], rec)
		idx.size++
	}

	if strict && len(idx.conflictKey) > 0 {
		key := idx.conflictKey[0]
		return nil, &JoinAmbiguityError{
			Bucket:    key.Bucket,
			Education: key.Education,
			Count:     conflictCount[key],
		}
	}

	return idx, nil
}

// Lookup returns the reference row answering for an age and education
// level: the earliest row in input order whose bucket contains the age.
func (idx *Index) Lookup(age, education int) (models.ReferenceRecord, bool) {
	for _, rec := range idx.byEducation[education] {
		if rec.Bucket.Contains(age) {
			return rec, true
		}
	}
	return models.ReferenceRecord{}, false
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int { return idx.size }

// Conflicts returns how many reference rows contested a key held by an
// earlier row.
func (idx *Index) Conflicts() int { return idx.conflicts }

// ConflictKeys lists the contested keys in first-appearance order.
func (idx *Index) ConflictKeys() []models.RefKey { return idx.conflictKey }

// Result is the outcome of a merge.
type Result struct {
	Records []models.MergedRecord
	Dropped int
}

// Merger performs the inner join.
type Merger struct {
	logger *zap.Logger
}

// NewMerger creates a merger.
func NewMerger(logger *zap.Logger) *Merger {
	return &Merger{logger: logger}
}

// Merge attaches the matching reference row to every employee it can.
// Employees without a match are dropped and counted, never silently
// lost. Input order is kept, so the output is deterministic.
func (m *Merger) Merge(employees []models.Employee, idx *Index) *Result {
	result := &Result{Records: make([]models.MergedRecord, 0, len(employees))}

	for _, emp := range employees {
		ref, ok := idx.Lookup(emp.Age, emp.Education)
		if !ok {
			result.Dropped++
			m.logger.Debug("no reference row for employee",
				zap.Int("employee_number", emp.EmployeeNumber),
				zap.Int("age", emp.Age),
				zap.Int("education", emp.Education))
			continue
		}

		result.Records = append(result.Records, models.MergedRecord{
			Employee:       emp,
			Bucket:         ref.Bucket,
			ExpectedIncome: ref.ExpectedIncome,
		})
	}

	m.logger.Info("datasets merged",
		zap.Int("employees", len(employees)),
		zap.Int("merged", len(result.Records)),
		zap.Int("dropped", result.Dropped),
		zap.Int("reference_rows", idx.Len()))

	return result
}
