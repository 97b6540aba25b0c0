// Package listing implements the in-memory pipeline both list pages share:
// substring search over a fetched month of records, page slicing, and the
// stale-fetch guard protecting month navigation.
package listing

import (
	"strings"

	"github.com/samber/lo"
)

// Searchable exposes the displayed string form of every field of a row.
type Searchable interface {
	SearchFields() []string
}

// Filter returns the rows for which at least one displayed field contains
// query as a case-insensitive substring. A blank query is the identity
// filter; a non-blank query is matched as typed, surrounding spaces included.
// The result is a stable subsequence of rows: original order is preserved and
// nothing is re-sorted, so Filter(Filter(rows, q), q) equals Filter(rows, q).
func Filter[T Searchable](rows []T, query string) []T {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	q := strings.ToLower(query)
	return lo.Filter(rows, func(row T, _ int) bool {
		for _, field := range row.SearchFields() {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	})
}
