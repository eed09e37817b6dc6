package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/modavn/catalog_api/internal/models"
)

// PromotionRepository handles data access for promotions.
type PromotionRepository struct {
	db *sqlx.DB
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(db *sqlx.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

const promotionColumns = `id, title, description, code, type, value, available,
    image_url, starts_at, ends_at, created_at, updated_at`

// Insert persists a new promotion row.
func (r *PromotionRepository) Insert(ctx context.Context, p *models.Promotion) error {
	const q = `
        INSERT INTO promotions (id, title, description, code, type, value, available, image_url, starts_at, ends_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Description, p.Code, p.Type, p.Value, p.Available,
		p.ImageURL, p.StartsAt, p.EndsAt, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID returns a single promotion by id.
func (r *PromotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	const q = `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1 LIMIT 1`
	var p models.Promotion
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns every promotion, newest first.
func (r *PromotionRepository) ListAll(ctx context.Context) ([]models.Promotion, error) {
	const q = `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC, id DESC`
	var promos []models.Promotion
	if err := r.db.SelectContext(ctx, &promos, q); err != nil {
		return nil, err
	}
	return promos, nil
}

// Update overwrites an existing promotion row.
func (r *PromotionRepository) Update(ctx context.Context, p *models.Promotion) error {
	const q = `
        UPDATE promotions SET
            title = $2, description = $3, code = $4, type = $5, value = $6,
            available = $7, image_url = $8, starts_at = $9, ends_at = $10, updated_at = $11
        WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Description, p.Code, p.Type, p.Value,
		p.Available, p.ImageURL, p.StartsAt, p.EndsAt, p.UpdatedAt,
	)
	return err
}

// Delete removes a promotion row by id.
func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	return err
}
