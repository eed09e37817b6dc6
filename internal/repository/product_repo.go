package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/modavn/catalog_api/internal/models"
)

// productColumns is the scan list shared by every product query.
const productColumns = `p.id, p.title, p.slug, p.content, p.description, p.supplier,
    p.images, p.expires_at, p.created_at, p.updated_at`

// ProductRepository handles data access for products and their category links.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// CatalogTx is the atomic unit for a multi-row product write: the product row,
// category existence checks, and link rows all commit or roll back together.
// The unit is request-scoped; the context passed to Begin covers its lifetime.
type CatalogTx interface {
	InsertProduct(p *models.Product) error
	GetProduct(id uuid.UUID) (*models.Product, error)
	UpdateProduct(p *models.Product) error
	GetCategory(id uuid.UUID) (*models.Category, error)
	CategoryIDs(productID uuid.UUID) ([]uuid.UUID, error)
	InsertLink(productID, categoryID uuid.UUID) error
	DeleteLinks(productID uuid.UUID) error
	Commit() error
	Rollback() error
}

// Begin opens the atomic unit for a multi-row product write.
func (r *ProductRepository) Begin(ctx context.Context) (CatalogTx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &productTx{tx: tx, ctx: ctx}, nil
}

type productTx struct {
	tx  *sqlx.Tx
	ctx context.Context
}

func (t *productTx) InsertProduct(p *models.Product) error {
	const q = `
        INSERT INTO products (id, title, slug, content, description, supplier, images, expires_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := t.tx.ExecContext(t.ctx, q,
		p.ID, p.Title, p.Slug, p.Content, p.Description, p.Supplier,
		p.Images, p.ExpiresAt, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (t *productTx) GetProduct(id uuid.UUID) (*models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 LIMIT 1`
	var p models.Product
	if err := t.tx.GetContext(t.ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *productTx) UpdateProduct(p *models.Product) error {
	const q = `
        UPDATE products SET
            title = $2, slug = $3, content = $4, description = $5,
            supplier = $6, images = $7, expires_at = $8, updated_at = $9
        WHERE id = $1`
	_, err := t.tx.ExecContext(t.ctx, q,
		p.ID, p.Title, p.Slug, p.Content, p.Description,
		p.Supplier, p.Images, p.ExpiresAt, p.UpdatedAt,
	)
	return err
}

func (t *productTx) GetCategory(id uuid.UUID) (*models.Category, error) {
	const q = `SELECT id, title, created_at, updated_at FROM categories WHERE id = $1 LIMIT 1`
	var c models.Category
	if err := t.tx.GetContext(t.ctx, &c, q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (t *productTx) CategoryIDs(productID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT category_id FROM product_categories WHERE product_id = $1`
	var ids []uuid.UUID
	if err := t.tx.SelectContext(t.ctx, &ids, q, productID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (t *productTx) InsertLink(productID, categoryID uuid.UUID) error {
	const q = `INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`
	_, err := t.tx.ExecContext(t.ctx, q, productID, categoryID)
	return err
}

func (t *productTx) DeleteLinks(productID uuid.UUID) error {
	const q = `DELETE FROM product_categories WHERE product_id = $1`
	_, err := t.tx.ExecContext(t.ctx, q, productID)
	return err
}

func (t *productTx) Commit() error   { return t.tx.Commit() }
func (t *productTx) Rollback() error { return t.tx.Rollback() }

// GetByID returns a single product with its categories and variants loaded.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	products := []models.Product{p}
	if err := r.hydrate(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// ListAll returns every product, newest first, with categories and variants.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products p ORDER BY p.created_at DESC, p.id DESC`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListPaged returns one page of products plus the total record count. The
// ordering matches ListAll so pages are stable while the set is unchanged.
func (r *ProductRepository) ListPaged(ctx context.Context, offset, limit int) ([]models.Product, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(1) FROM products`); err != nil {
		return nil, 0, err
	}

	const q = `SELECT ` + productColumns + `
        FROM products p
        ORDER BY p.created_at DESC, p.id DESC
        LIMIT $1 OFFSET $2`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q, limit, offset); err != nil {
		return nil, 0, err
	}
	if err := r.hydrate(ctx, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Search returns products whose slug or title contains the term.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]models.Product, error) {
	const q = `SELECT ` + productColumns + `
        FROM products p
        WHERE p.slug ILIKE '%' || $1 || '%' OR p.title ILIKE '%' || $1 || '%'
        ORDER BY p.created_at DESC, p.id DESC`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q, term); err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Filter returns the products owning at least one variant that satisfies every
// predicate present in the request. Starting set: variants joined to their
// owning product; survivors are projected back to products and de-duplicated
// by product id.
func (r *ProductRepository) Filter(ctx context.Context, f *models.FilterRequest) ([]models.Product, error) {
	cs := buildVariantFilter(f)

	q := `SELECT DISTINCT ` + productColumns + `
        FROM sub_products sp
        JOIN products p ON p.id = sp.product_id
        ` + cs.where() + `
        ORDER BY p.created_at DESC, p.id DESC`
	q = sqlx.Rebind(sqlx.DOLLAR, q)

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q, cs.args...); err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes a product row. Category links and variants are removed by the
// ON DELETE CASCADE constraints.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

// hydrate loads categories and variants for a batch of products in two
// queries instead of one pair per product.
func (r *ProductRepository) hydrate(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(products))
	index := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		products[i].Categories = []models.Category{}
		products[i].SubProducts = []models.SubProduct{}
		ids[i] = products[i].ID
		index[products[i].ID] = &products[i]
	}

	const catQ = `
        SELECT pc.product_id, c.id, c.title, c.created_at, c.updated_at
        FROM product_categories pc
        JOIN categories c ON c.id = pc.category_id
        WHERE pc.product_id = ANY($1)`
	rows, err := r.db.QueryxContext(ctx, catQ, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var productID uuid.UUID
		var c models.Category
		if err := rows.Scan(&productID, &c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		if p, ok := index[productID]; ok {
			p.Categories = append(p.Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const subQ = `
        SELECT id, product_id, size, color, price, quantity, images, created_at, updated_at
        FROM sub_products
        WHERE product_id = ANY($1)
        ORDER BY created_at`
	var subs []models.SubProduct
	if err := r.db.SelectContext(ctx, &subs, subQ, pq.Array(ids)); err != nil {
		return err
	}
	for _, sp := range subs {
		if p, ok := index[sp.ProductID]; ok {
			p.SubProducts = append(p.SubProducts, sp)
		}
	}

	return nil
}
