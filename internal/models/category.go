package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a product grouping. Read-mostly: the catalog engine references
// categories when writing link rows but never mutates them.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
