package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SubProduct is a purchasable size/color/price variant of a product.
// ProductID is a non-nullable foreign key to the owning product.
type SubProduct struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	ProductID uuid.UUID       `db:"product_id" json:"productId"`
	Size      string          `db:"size" json:"size"`
	Color     string          `db:"color" json:"color"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Images    pq.StringArray  `db:"images" json:"images"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
