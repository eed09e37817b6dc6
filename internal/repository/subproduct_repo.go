package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/modavn/catalog_api/internal/models"
)

// SubProductRepository handles data access for product variants.
type SubProductRepository struct {
	db *sqlx.DB
}

// NewSubProductRepository creates a new SubProductRepository.
func NewSubProductRepository(db *sqlx.DB) *SubProductRepository {
	return &SubProductRepository{db: db}
}

// Insert persists a new variant row.
func (r *SubProductRepository) Insert(ctx context.Context, sp *models.SubProduct) error {
	const q = `
        INSERT INTO sub_products (id, product_id, size, color, price, quantity, images, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, q,
		sp.ID, sp.ProductID, sp.Size, sp.Color, sp.Price, sp.Quantity,
		sp.Images, sp.CreatedAt, sp.UpdatedAt,
	)
	return err
}

// GetByID returns a single variant by id.
func (r *SubProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SubProduct, error) {
	const q = `
        SELECT id, product_id, size, color, price, quantity, images, created_at, updated_at
        FROM sub_products WHERE id = $1 LIMIT 1`
	var sp models.SubProduct
	if err := r.db.GetContext(ctx, &sp, q, id); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Update overwrites an existing variant row.
func (r *SubProductRepository) Update(ctx context.Context, sp *models.SubProduct) error {
	const q = `
        UPDATE sub_products SET
            size = $2, color = $3, price = $4, quantity = $5, images = $6, updated_at = $7
        WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q,
		sp.ID, sp.Size, sp.Color, sp.Price, sp.Quantity, sp.Images, sp.UpdatedAt,
	)
	return err
}

// Delete removes a variant row by id.
func (r *SubProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sub_products WHERE id = $1`, id)
	return err
}

// ListAll returns every variant in insertion order; used by the filter-values
// aggregation.
func (r *SubProductRepository) ListAll(ctx context.Context) ([]models.SubProduct, error) {
	const q = `
        SELECT id, product_id, size, color, price, quantity, images, created_at, updated_at
        FROM sub_products ORDER BY created_at, id`
	var subs []models.SubProduct
	if err := r.db.SelectContext(ctx, &subs, q); err != nil {
		return nil, err
	}
	return subs, nil
}
