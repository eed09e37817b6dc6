package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	testCases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -5, 10, 1, 10},
		{"limit above max", 2, 500, 2, 100},
		{"in bounds", 3, 50, 3, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := ClampPage(tc.page, tc.limit, 20, 100)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewPagination(t *testing.T) {
	// 23 records at 10 per page: pages of 10, 10, and 3.
	p := NewPagination(1, 10, 23)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrevious)
	assert.True(t, p.HasNext)
	assert.Nil(t, p.PreviousPage)
	assert.Equal(t, 2, *p.NextPage)

	p = NewPagination(2, 10, 23)
	assert.True(t, p.HasPrevious)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, *p.PreviousPage)
	assert.Equal(t, 3, *p.NextPage)

	p = NewPagination(3, 10, 23)
	assert.True(t, p.HasPrevious)
	assert.False(t, p.HasNext)
	assert.Nil(t, p.NextPage)
}

func TestNewPaginationBeyondLastPage(t *testing.T) {
	p := NewPagination(5, 10, 23)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrevious)
	assert.False(t, p.HasNext)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Zero(t, p.TotalPages)
	assert.False(t, p.HasPrevious)
	assert.False(t, p.HasNext)
}

// Walking consecutive pages covers the record range exactly once.
func TestPageOffsetConcatenation(t *testing.T) {
	const limit = 10
	covered := 0
	for page := 1; page <= 3; page++ {
		assert.Equal(t, covered, PageOffset(page, limit))
		covered += limit
	}
}
