// Package search provides the fuzzy matcher and the query debouncer that sit
// in front of the filter pipeline.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"orderscope/internal/order"
)

const (
	// DefaultSensitivity is the dissimilarity threshold on a 0-to-1 scale.
	// 0 accepts exact matches only, 1 accepts anything.
	DefaultSensitivity = 0.3

	// DefaultMinQueryLength is the shortest query matched fuzzily. Shorter
	// queries behave like an empty query.
	DefaultMinQueryLength = 2
)

// Matcher indexes a fixed order set and answers typo-tolerant queries over
// the id and store-name fields. The index is a pure function of the order
// set and the sensitivity; rebuild it only when the order set changes.
type Matcher struct {
	sensitivity float64
	minQueryLen int
	entries     []indexEntry
}

type indexEntry struct {
	order  order.Order
	fields [2]string // lowercased id, store name
}

// NewMatcher creates a matcher with the given sensitivity, clamped to [0,1],
// and minimum query length. A non-positive length falls back to the default.
func NewMatcher(sensitivity float64, minQueryLen int) *Matcher {
	if sensitivity < 0 {
		sensitivity = 0
	}
	if sensitivity > 1 {
		sensitivity = 1
	}
	if minQueryLen < 1 {
		minQueryLen = DefaultMinQueryLength
	}
	return &Matcher{sensitivity: sensitivity, minQueryLen: minQueryLen}
}

// Build rebuilds the search index from the given order set.
func (m *Matcher) Build(orders []order.Order) {
	entries := make([]indexEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, indexEntry{
			order:  o,
			fields: [2]string{strings.ToLower(o.ID), strings.ToLower(o.StoreName)},
		})
	}
	m.entries = entries
}

// Len returns the number of indexed orders.
func (m *Matcher) Len() int {
	return len(m.entries)
}

// MinQueryLen returns the shortest query Search will match.
func (m *Matcher) MinQueryLen() int {
	return m.minQueryLen
}

// Search returns the orders matching query, best match first. Ties keep the
// index (repository) order. An unbuilt or empty index yields no matches.
func (m *Matcher) Search(query string) []order.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < m.minQueryLen || len(m.entries) == 0 {
		return nil
	}

	type hit struct {
		pos   int
		score float64
	}
	var hits []hit
	for i, e := range m.entries {
		best := -1.0
		for _, field := range e.fields {
			s, ok := m.score(q, field)
			if ok && (best < 0 || s < best) {
				best = s
			}
		}
		if best >= 0 {
			hits = append(hits, hit{pos: i, score: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score < hits[j].score
	})

	out := make([]order.Order, len(hits))
	for i, h := range hits {
		out[i] = m.entries[h.pos].order
	}
	return out
}

// score computes the dissimilarity of query against one field, lower is
// better. A substring hit always lands inside the threshold, scaled by how
// much of the field it covers, so partial store names match the way a search
// box is expected to. Otherwise the normalized edit distance decides.
func (m *Matcher) score(query, field string) (float64, bool) {
	if field == "" {
		return 0, false
	}
	if query == field {
		return 0, true
	}

	qLen := len([]rune(query))
	fLen := len([]rune(field))

	if strings.Contains(field, query) {
		return m.sensitivity * (1 - float64(qLen)/float64(fLen)), true
	}

	longest := qLen
	if fLen > longest {
		longest = fLen
	}
	dissimilarity := float64(levenshtein.ComputeDistance(query, field)) / float64(longest)
	if dissimilarity > m.sensitivity {
		return 0, false
	}
	return dissimilarity, true
}
