package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/modavn/catalog_api/internal/models"
)

// CategoryRepository handles data access for categories. Read-mostly: the
// catalog engine references categories inside its own transaction (see
// CatalogTx.GetCategory); this repository serves the listing and seeding
// endpoints.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns all categories ordered by title.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	const q = `SELECT id, title, created_at, updated_at FROM categories ORDER BY title`
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// Insert persists a new category row.
func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) error {
	const q = `INSERT INTO categories (id, title, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Title, c.CreatedAt, c.UpdatedAt)
	return err
}
