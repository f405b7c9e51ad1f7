package search

import (
	"errors"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/measure"
)

// ErrNotFound signals that no catalog entry matched a normalized query. It is
// a user-retryable condition, not a failure; callers own the presentation.
var ErrNotFound = errors.New("search: no matching entry")

// Matcher resolves per-category queries against a built catalog index.
type Matcher struct {
	index *catalog.Index
}

func New(index *catalog.Index) *Matcher {
	return &Matcher{index: index}
}

// Resolve validates the query, then scans the (category, subMaterial) bucket
// in insertion order and returns the first entry the query matches. Both
// sides of every comparison pass through the identical normalization, so
// catalog-authored formatting differences never break a match. Ties are not
// expected in well-formed data; first-inserted winning is the deliberate
// tie-break, not a ranking.
//
// Frame queries ignore subMaterial and scan every Montura bucket, because
// frames are searched by code alone.
func (m *Matcher) Resolve(q measure.Query, subMaterial string) (catalog.Entry, error) {
	if err := q.Validate(); err != nil {
		return catalog.Entry{}, err
	}

	if _, ok := q.(measure.FrameQuery); ok {
		for _, name := range m.index.SubMaterials(measure.CategoryFrame) {
			if entry, ok := scan(q, m.index.Entries(measure.CategoryFrame, name)); ok {
				return entry, nil
			}
		}
		return catalog.Entry{}, ErrNotFound
	}

	if entry, ok := scan(q, m.index.Entries(q.Category(), subMaterial)); ok {
		return entry, nil
	}
	return catalog.Entry{}, ErrNotFound
}

func scan(q measure.Query, entries []catalog.Entry) (catalog.Entry, bool) {
	for _, entry := range entries {
		if q.Matches(entry.Measure) {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}
