package service

import (
	"math"
	"sort"
	"time"

	"lostfound-admin/internal/console/domain/model"
	"lostfound-admin/internal/shared/errors"
)

// DefaultThreshold is the similarity score a lost/found pair must reach to be
// reported as a match.
const DefaultThreshold = 0.55

// Matcher computes matches between lost and found reports. It is pure with
// respect to its inputs: no I/O, no retained state between calls, and the
// caller is responsible for having fetched the records. The only injected
// dependency is the clock, so tests can pin computation time.
type Matcher struct {
	now func() time.Time
}

// NewMatcher creates a matcher using the wall clock.
func NewMatcher() *Matcher {
	return &Matcher{now: time.Now}
}

// NewMatcherWithClock creates a matcher with a custom clock.
func NewMatcherWithClock(now func() time.Time) *Matcher {
	if now == nil {
		now = time.Now
	}
	return &Matcher{now: now}
}

// Match scores every lost record against every found record and returns the
// pairs whose similarity reached threshold (inclusive), ordered by score
// descending. Ties keep encounter order: outer loop over lost records, inner
// loop over found records, both in store-iteration order.
//
// Scores are rounded half away from zero to two decimals after the threshold
// test. Created is the lost record's own creation time when present,
// otherwise the computation time. Either input being empty yields an empty
// result, not an error; a threshold outside [0, 1] is a validation error.
func (m *Matcher) Match(lost, found []model.ItemRecord, threshold float64) ([]model.MatchRecord, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, errors.NewValidationError(errors.ErrInvalidThreshold.Error()).
			WithCause(errors.ErrInvalidThreshold).
			WithDetail("threshold", threshold)
	}

	normLost := normalizeAll(lost)
	normFound := normalizeAll(found)

	matches := make([]model.MatchRecord, 0)
	for _, l := range normLost {
		for _, f := range normFound {
			score := Ratio(l.text, f.text)
			if score < threshold {
				continue
			}

			created := m.now()
			if l.rec.CreatedAt != nil {
				created = *l.rec.CreatedAt
			}

			matches = append(matches, model.MatchRecord{
				ID:      l.rec.ID + "_" + f.rec.ID,
				Score:   roundScore(score),
				Created: created,
				Lost:    l.rec,
				Found:   f.rec,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

type normalizedItem struct {
	rec  model.ItemRecord
	text string
}

func normalizeAll(items []model.ItemRecord) []normalizedItem {
	out := make([]normalizedItem, 0, len(items))
	for _, it := range items {
		rec, text := NormalizeItem(it, it.ID)
		out = append(out, normalizedItem{rec: rec, text: text})
	}
	return out
}

// roundScore rounds half away from zero to two decimal places.
func roundScore(s float64) float64 {
	return math.Round(s*100) / 100
}
