package utils

// Pagination holds page metadata for list responses. Previous/next page
// numbers are present only when the respective page exists.
type Pagination struct {
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	TotalItems   int  `json:"totalItems"`
	TotalPages   int  `json:"totalPages"`
	HasPrevious  bool `json:"hasPrevious"`
	HasNext      bool `json:"hasNext"`
	PreviousPage *int `json:"previousPage,omitempty"`
	NextPage     *int `json:"nextPage,omitempty"`
}

// ClampPage normalizes a requested page and limit: page >= 1,
// 1 <= limit <= maxLimit, with defaultLimit substituted when limit <= 0.
func ClampPage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// PageOffset returns the record offset of a page: (page-1)*limit.
func PageOffset(page, limit int) int {
	return (page - 1) * limit
}

// NewPagination computes page metadata for an already-clamped page/limit pair
// and a precomputed total record count. It never touches storage; the fetched
// slice and the count come from the caller, which must apply a stable ordering
// before clipping so pages stay consistent across calls.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	p := Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	if page > 1 {
		prev := page - 1
		p.HasPrevious = true
		p.PreviousPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.HasNext = true
		p.NextPage = &next
	}
	return p
}
