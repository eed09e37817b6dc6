package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/repository"
)

// CatalogStore is the storage gateway consumed by the catalog engine.
// *repository.ProductRepository satisfies it; tests supply an in-memory fake.
type CatalogStore interface {
	Begin(ctx context.Context) (repository.CatalogTx, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListPaged(ctx context.Context, offset, limit int) ([]models.Product, int, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	Filter(ctx context.Context, f *models.FilterRequest) ([]models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogService keeps a product, its category links, and its variants
// mutually consistent: every multi-row product write runs inside one atomic
// unit and either fully applies or leaves no trace.
type CatalogService struct {
	store CatalogStore
	msgs  *config.Messages
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(store CatalogStore, msgs *config.Messages) *CatalogService {
	return &CatalogService{store: store, msgs: msgs}
}

// ProductRequest is the complete product draft supplied by the caller.
// CategoryIDs is the full desired set of category links, not a delta.
type ProductRequest struct {
	Title       string      `json:"title" binding:"required"`
	Slug        string      `json:"slug" binding:"required"`
	Content     string      `json:"content"`
	Description string      `json:"description"`
	Supplier    string      `json:"supplier"`
	Images      []string    `json:"images"`
	ExpiresAt   *time.Time  `json:"expiresAt"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

// CreateProduct stages the product row and one link row per requested
// category inside a single transaction. Any category that does not exist
// aborts the unit: the product row is rolled back with everything else and
// the caller gets a referential-violation result.
func (s *CatalogService) CreateProduct(ctx context.Context, req *ProductRequest) Result[models.Product] {
	createFailure := s.msgs.Get("ProductMessages", "CreateProductFailure")

	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Description: req.Description,
		Supplier:    req.Supplier,
		Images:      req.Images,
		ExpiresAt:   req.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fail[models.Product](StatusPersistence, createFailure)
	}

	if err := tx.InsertProduct(product); err != nil {
		_ = tx.Rollback()
		log.Error().Err(err).Str("slug", req.Slug).Msg("product insert failed")
		return fail[models.Product](StatusPersistence, createFailure)
	}

	categories := make([]models.Category, 0, len(req.CategoryIDs))
	for _, categoryID := range req.CategoryIDs {
		category, err := tx.GetCategory(categoryID)
		if err != nil {
			_ = tx.Rollback()
			if errors.Is(err, sql.ErrNoRows) {
				return fail[models.Product](StatusReferentialViolation, s.msgs.Get("ProductMessages", "CategoryNotExists"))
			}
			log.Error().Err(err).Str("category_id", categoryID.String()).Msg("category lookup failed")
			return fail[models.Product](StatusPersistence, createFailure)
		}
		if err := tx.InsertLink(product.ID, categoryID); err != nil {
			_ = tx.Rollback()
			log.Error().Err(err).Msg("category link insert failed")
			return fail[models.Product](StatusPersistence, createFailure)
		}
		categories = append(categories, *category)
	}

	if err := tx.Commit(); err != nil {
		return fail[models.Product](StatusPersistence, createFailure)
	}

	product.Categories = categories
	product.SubProducts = []models.SubProduct{}
	return ok(product, s.msgs.Get("ProductMessages", "CreateProductSuccess"))
}

// UpdateProduct overwrites the scalar fields and applies full-replace
// semantics to the category links: the submitted set becomes the set,
// regardless of what was there. When the submitted set equals the existing
// one the links are left untouched to avoid redundant writes.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, req *ProductRequest) Result[models.Product] {
	notFound := s.msgs.Get("ProductMessages", "ProductNotFound")
	updateFailure := s.msgs.Get("ProductMessages", "UpdateProductFailure")

	if productID == uuid.Nil {
		return fail[models.Product](StatusInvalidIdentity, notFound)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fail[models.Product](StatusPersistence, updateFailure)
	}

	product, err := tx.GetProduct(productID)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return fail[models.Product](StatusNotFound, notFound)
		}
		return fail[models.Product](StatusPersistence, updateFailure)
	}

	product.Title = req.Title
	product.Slug = req.Slug
	product.Content = req.Content
	product.Description = req.Description
	product.Supplier = req.Supplier
	product.Images = req.Images
	product.ExpiresAt = req.ExpiresAt
	product.UpdatedAt = time.Now().UTC()

	if err := tx.UpdateProduct(product); err != nil {
		_ = tx.Rollback()
		log.Error().Err(err).Str("product_id", productID.String()).Msg("product update failed")
		return fail[models.Product](StatusPersistence, updateFailure)
	}

	existing, err := tx.CategoryIDs(productID)
	if err != nil {
		_ = tx.Rollback()
		return fail[models.Product](StatusPersistence, updateFailure)
	}

	// Compared as sets: resubmitting the same ids in another order is not a
	// change and performs no link writes.
	if !sameIDSet(existing, req.CategoryIDs) {
		for _, categoryID := range req.CategoryIDs {
			if _, err := tx.GetCategory(categoryID); err != nil {
				_ = tx.Rollback()
				if errors.Is(err, sql.ErrNoRows) {
					return fail[models.Product](StatusReferentialViolation, s.msgs.Get("ProductMessages", "CategoryNotExists"))
				}
				return fail[models.Product](StatusPersistence, updateFailure)
			}
		}
		if err := tx.DeleteLinks(productID); err != nil {
			_ = tx.Rollback()
			return fail[models.Product](StatusPersistence, updateFailure)
		}
		for _, categoryID := range req.CategoryIDs {
			if err := tx.InsertLink(productID, categoryID); err != nil {
				_ = tx.Rollback()
				log.Error().Err(err).Msg("category link insert failed")
				return fail[models.Product](StatusPersistence, updateFailure)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fail[models.Product](StatusPersistence, updateFailure)
	}

	return ok(product, s.msgs.Get("ProductMessages", "UpdateProductSuccess"))
}

// DeleteProduct removes a product; links and variants go with it (cascade at
// the storage layer). Returns the removed snapshot.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) Result[models.Product] {
	return mutateByID(ctx, productID,
		mutateMessages{
			notFound: s.msgs.Get("ProductMessages", "ProductNotFound"),
			failure:  s.msgs.Get("ProductMessages", "DeleteProductFailure"),
			success:  s.msgs.Get("ProductMessages", "DeleteProductSuccess"),
		},
		s.store.GetByID,
		nil,
		func(ctx context.Context, p *models.Product) error {
			return s.store.Delete(ctx, p.ID)
		},
	)
}

// GetProduct returns a product with its categories and variants.
func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	return s.store.GetByID(ctx, productID)
}

// ListProducts returns every product, newest first.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListAll(ctx)
}

// ListProductsPaged returns one page of products plus the total count.
// page and limit must already be clamped by the caller.
func (s *CatalogService) ListProductsPaged(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit
	return s.store.ListPaged(ctx, offset, limit)
}

// SearchProducts returns products whose slug or title contains the term.
func (s *CatalogService) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	return s.store.Search(ctx, strings.TrimSpace(term))
}

// FilterProducts returns the products owning at least one variant matching
// every predicate present in the request. An empty request matches everything.
func (s *CatalogService) FilterProducts(ctx context.Context, f *models.FilterRequest) ([]models.Product, error) {
	return s.store.Filter(ctx, f)
}

// sameIDSet reports whether two id lists contain the same set of ids,
// ignoring order and duplicates.
func sameIDSet(a, b []uuid.UUID) bool {
	seen := make(map[uuid.UUID]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	other := make(map[uuid.UUID]bool, len(b))
	for _, id := range b {
		other[id] = true
	}
	for _, id := range a {
		if !other[id] {
			return false
		}
	}
	return true
}
