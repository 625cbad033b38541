// Package reference derives the expected-salary table from the census
// income dataset: for every age bucket and education level, the share
// of qualifying workers earning over $50K scaled to an annual income.
package reference

import (
	"errors"

	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/models"
)

const (
	qualifyingWorkClass = "Private"
	qualifyingCountry   = "United-States"

	// A group where everyone clears the $50K census threshold is
	// expected to earn this much per year.
	incomeScale = 100000
)

// ErrNoQualifyingRows means no census row survived the filters.
var ErrNoQualifyingRows = errors.New("no census rows qualify for the reference table")

// Builder aggregates census records into a reference table.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a reference table builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build keeps private-sector United States workers whose education and
// occupation translate to the HR vocabulary, then aggregates the share
// earning over $50K per (age bucket, education level) group into an
// expected annual income. Records come back in bucket-then-level order.
func (b *Builder) Build(records []models.AdultRecord) ([]models.ReferenceRecord, error) {
	type group struct {
		total   int
		over50K int
	}
	groups := make(map[models.RefKey]*group)

	var kept, unmappedEducation, unmappedOccupation int
	fieldCounts := make(map[string]int)
	for _, rec := range records {
		if rec.WorkClass != qualifyingWorkClass || rec.NativeCountry != qualifyingCountry {
			continue
		}

		// Ages outside 18..60 have no bucket and drop out here.
		bucket, ok := models.BucketForAge(rec.Age)
		if !ok {
			continue
		}

		level, ok := educationLevels[rec.Education]
		if !ok {
			unmappedEducation++
			continue
		}
		field, ok := fieldMappings[rec.Occupation]
		if !ok {
			unmappedOccupation++
			continue
		}
		fieldCounts[field]++

		kept++
		key := models.RefKey{Bucket: bucket, Education: level}
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
		}
		g.total++
		if rec.Over50K {
			g.over50K++
		}
	}

	if kept == 0 {
		return nil, ErrNoQualifyingRows
	}

	var out []models.ReferenceRecord
	for _, bucket := range models.AgeBuckets {
		for level := 1; level <= 5; level++ {
			g, ok := groups[models.RefKey{Bucket: bucket, Education: level}]
			if !ok {
				continue
			}
			share := float64(g.over50K) / float64(g.total)
			out = append(out, models.ReferenceRecord{
				Bucket:         bucket,
				Education:      level,
				ExpectedIncome: share * incomeScale,
			})
		}
	}

	b.logger.Info("reference table built",
		zap.Int("census_rows", len(records)),
		zap.Int("qualifying_rows", kept),
		zap.Int("unmapped_education", unmappedEducation),
		zap.Int("unmapped_occupation", unmappedOccupation),
		zap.Any("rows_per_field", fieldCounts),
		zap.Int("groups", len(out)))

	return out, nil
}
