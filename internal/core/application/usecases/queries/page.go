// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built from raw SQL through GORM,
// bypassing the aggregates entirely.
package queries

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Page is the skip/limit window shared by every list query.
type Page struct {
	Skip  int
	Limit int
}

// NewPage normalizes a skip/limit pair: negative skip becomes 0, a
// non-positive limit becomes the default, and the limit is clamped to the
// maximum.
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	return Page{Skip: skip, Limit: limit}
}
