package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog product. A product owns its category links and
// sub-product variants: deleting a product removes both (ON DELETE CASCADE).
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Content     string         `db:"content" json:"content"`
	Description string         `db:"description" json:"description"`
	Supplier    string         `db:"supplier" json:"supplier"`
	Images      pq.StringArray `db:"images" json:"images"`
	ExpiresAt   *time.Time     `db:"expires_at" json:"expiresAt,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`

	// Loaded separately; not columns of the products table.
	Categories  []Category   `db:"-" json:"categories"`
	SubProducts []SubProduct `db:"-" json:"subProducts"`
}

// ProductCategory is the join row between a product and a category. It has no
// independent lifecycle: rows are written only as a side effect of product writes.
type ProductCategory struct {
	ProductID  uuid.UUID `db:"product_id" json:"productId"`
	CategoryID uuid.UUID `db:"category_id" json:"categoryId"`
}
