package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams_Defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestNewPaginationParams_CapsLimit(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(2), intPtr(500))

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 100, p.Offset())
}

func TestPaginationParams_OffsetSaturates(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(math.MaxInt), intPtr(20))

	assert.Equal(t, math.MaxInt, p.Offset())
}

func TestPaginationParams_Bounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		n          int
		start, end int
	}{
		{"first page", 1, 2, 5, 0, 2},
		{"last partial page", 3, 2, 5, 4, 5},
		{"past the end", 4, 2, 5, 5, 5},
		{"empty collection", 1, 20, 0, 0, 0},
		{"huge page", 4611686018427387904, 20, 5, 5, 5},
		{"max page", math.MaxInt, 100, 5, 5, 5},
		{"huge limit", 2, math.MaxInt, 5, 5, 5},
		{"huge limit first page", 1, math.MaxInt, 5, 0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := domain.PaginationParams{Page: tc.page, Limit: tc.limit}.Bounds(tc.n)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
