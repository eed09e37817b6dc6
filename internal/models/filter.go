package models

import "github.com/shopspring/decimal"

// FilterRequest is a sparse, transient filter over the variant/product/category
// join. An absent or empty field means "no restriction on that field", never
// "match the empty value".
type FilterRequest struct {
	Colors []string `json:"colors"`
	Size   string   `json:"size"`
	// Price is a two-element [min, max] range, inclusive on both ends.
	// Any other length is ignored.
	Price []decimal.Decimal `json:"price"`
	// Categories holds category ids in their canonical string form.
	Categories []string `json:"categories"`
}

// FilterValues aggregates the option lists for filter widgets: distinct
// non-empty colors and sizes in first-seen order, and every price observed
// across variants with duplicates retained.
type FilterValues struct {
	Colors []string          `json:"colors"`
	Sizes  []string          `json:"sizes"`
	Prices []decimal.Decimal `json:"prices"`
}
