package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
// It saturates at math.MaxInt instead of overflowing for huge pages.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Bounds returns the [start, end) slice bounds of the page within a
// collection of n items. Pages past the end yield an empty range, and the
// bounds always satisfy 0 <= start <= end <= n.
func (p PaginationParams) Bounds(n int) (start, end int) {
	if p.Limit <= 0 {
		return n, n
	}
	start = p.Offset()
	if start >= n {
		return n, n
	}
	if p.Limit > n-start {
		return start, n
	}
	return start, start + p.Limit
}
