package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionType enumerates how a promotion value is applied.
type PromotionType string

const (
	PromotionTypePercentage PromotionType = "percentage"
	PromotionTypeAmount     PromotionType = "amount"
)

// Promotion is a redeemable promotional code with a validity window.
// Independent lifecycle, no relation to products.
type Promotion struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Code        string          `db:"code" json:"code"`
	Type        PromotionType   `db:"type" json:"type"`
	Value       decimal.Decimal `db:"value" json:"value"`
	Available   int             `db:"available" json:"available"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	StartsAt    time.Time       `db:"starts_at" json:"startsAt"`
	EndsAt      time.Time       `db:"ends_at" json:"endsAt"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
