package repository

import (
	"strings"

	"github.com/lib/pq"

	"github.com/modavn/catalog_api/internal/models"
)

// conditionSet accumulates parameterized WHERE fragments for a query. Values
// always travel in the args slice; no value is ever spliced into the SQL text.
// Fragments use ? placeholders and the assembled query is rebound to $n form
// with sqlx.Rebind by the caller.
type conditionSet struct {
	frags []string
	args  []interface{}
}

func (cs *conditionSet) add(frag string, args ...interface{}) {
	cs.frags = append(cs.frags, frag)
	cs.args = append(cs.args, args...)
}

func (cs *conditionSet) empty() bool {
	return len(cs.frags) == 0
}

// where returns the assembled WHERE clause, or "" when no condition was added.
func (cs *conditionSet) where() string {
	if cs.empty() {
		return ""
	}
	return "WHERE " + strings.Join(cs.frags, " AND ")
}

// buildVariantFilter maps a sparse filter request onto a conjunction of
// predicates over the variant/product/category join. Only fields present in
// the request contribute a predicate: an absent or empty field restricts
// nothing. The predicates are independent, so the order they are appended in
// does not change the result set.
func buildVariantFilter(f *models.FilterRequest) *conditionSet {
	cs := &conditionSet{}
	if f == nil {
		return cs
	}
	if len(f.Colors) > 0 {
		cs.add("sp.color = ANY(?)", pq.Array(f.Colors))
	}
	if f.Size != "" {
		cs.add("sp.size = ?", f.Size)
	}
	if len(f.Price) == 2 {
		cs.add("sp.price BETWEEN ? AND ?", f.Price[0], f.Price[1])
	}
	if len(f.Categories) > 0 {
		cs.add(`EXISTS (
            SELECT 1 FROM product_categories pc
            WHERE pc.product_id = p.id AND pc.category_id::text = ANY(?))`, pq.Array(f.Categories))
	}
	return cs
}
