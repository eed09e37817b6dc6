package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/modavn/catalog_api/internal/cache"
	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/utils"
)

// VariantStore is the storage gateway consumed by the variant manager.
// *repository.SubProductRepository satisfies it.
type VariantStore interface {
	Insert(ctx context.Context, sp *models.SubProduct) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SubProduct, error)
	Update(ctx context.Context, sp *models.SubProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]models.SubProduct, error)
}

// VariantService handles CRUD for sub-products, each bound to exactly one
// product, plus the filter-values aggregation that drives UI filter widgets.
type VariantService struct {
	store  VariantStore
	values *cache.FilterValuesCache
	msgs   *config.Messages
}

// NewVariantService constructs a VariantService. The filter-values cache may
// be nil; every cache interaction is best-effort.
func NewVariantService(store VariantStore, values *cache.FilterValuesCache, msgs *config.Messages) *VariantService {
	return &VariantService{store: store, values: values, msgs: msgs}
}

// VariantRequest is the complete variant draft supplied by the caller.
// Updates overwrite every field from it; there is no partial-change form.
type VariantRequest struct {
	ProductID uuid.UUID       `json:"productId"`
	Size      string          `json:"size" binding:"required"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Images    []string        `json:"images"`
}

func (r *VariantRequest) validate() error {
	if r.Price.IsNegative() {
		return utils.ErrNegativePrice
	}
	if r.Quantity < 0 {
		return utils.ErrNegativeQuantity
	}
	return nil
}

// AddVariant persists a new variant. The parent identity must be non-zero;
// the parent row itself is not re-fetched here, the foreign key is the
// backstop (a bad parent surfaces as a persistence failure).
func (s *VariantService) AddVariant(ctx context.Context, req *VariantRequest) Result[models.SubProduct] {
	if req.ProductID == uuid.Nil {
		return fail[models.SubProduct](StatusInvalidIdentity, s.msgs.Get("VariantMessages", "InvalidParentProduct"))
	}
	if err := req.validate(); err != nil {
		return fail[models.SubProduct](StatusValidation, s.msgs.Get("VariantMessages", "InvalidPriceQuantity"))
	}

	now := time.Now().UTC()
	sub := &models.SubProduct{
		ID:        uuid.New(),
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Images:    req.Images,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, sub); err != nil {
		log.Error().Err(err).Str("product_id", req.ProductID.String()).Msg("variant insert failed")
		return fail[models.SubProduct](StatusPersistence, s.msgs.Get("VariantMessages", "CreateVariantFailure"))
	}

	s.invalidateValues(ctx)
	return ok(sub, s.msgs.Get("VariantMessages", "CreateVariantSuccess"))
}

// UpdateVariant overwrites size, color, price, quantity, and images of an
// existing variant. The caller supplies the complete draft.
func (s *VariantService) UpdateVariant(ctx context.Context, variantID uuid.UUID, req *VariantRequest) Result[models.SubProduct] {
	res := mutateByID(ctx, variantID,
		mutateMessages{
			notFound: s.msgs.Get("VariantMessages", "VariantNotFound"),
			invalid:  s.msgs.Get("VariantMessages", "InvalidPriceQuantity"),
			failure:  s.msgs.Get("VariantMessages", "UpdateVariantFailure"),
			success:  s.msgs.Get("VariantMessages", "UpdateVariantSuccess"),
		},
		s.store.GetByID,
		func(sub *models.SubProduct) error {
			if err := req.validate(); err != nil {
				return err
			}
			sub.Size = req.Size
			sub.Color = req.Color
			sub.Price = req.Price
			sub.Quantity = req.Quantity
			sub.Images = req.Images
			sub.UpdatedAt = time.Now().UTC()
			return nil
		},
		s.store.Update,
	)
	if res.Success {
		s.invalidateValues(ctx)
	}
	return res
}

// DeleteVariant removes a variant and returns the removed snapshot.
func (s *VariantService) DeleteVariant(ctx context.Context, variantID uuid.UUID) Result[models.SubProduct] {
	res := mutateByID(ctx, variantID,
		mutateMessages{
			notFound: s.msgs.Get("VariantMessages", "VariantNotFound"),
			failure:  s.msgs.Get("VariantMessages", "DeleteVariantFailure"),
			success:  s.msgs.Get("VariantMessages", "DeleteVariantSuccess"),
		},
		s.store.GetByID,
		nil,
		func(ctx context.Context, sub *models.SubProduct) error {
			return s.store.Delete(ctx, sub.ID)
		},
	)
	if res.Success {
		s.invalidateValues(ctx)
	}
	return res
}

// ListFilterValues returns the aggregated filter option lists, served from
// the cache when warm and recomputed from storage on a miss.
func (s *VariantService) ListFilterValues(ctx context.Context) (*models.FilterValues, error) {
	if s.values != nil {
		if v, err := s.values.Get(ctx); err == nil {
			return v, nil
		}
	}
	return s.RefreshFilterValues(ctx)
}

// RefreshFilterValues recomputes the filter option lists from storage and
// rewrites the cache. Used by the refresh worker and on cache misses.
func (s *VariantService) RefreshFilterValues(ctx context.Context) (*models.FilterValues, error) {
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	v := aggregateFilterValues(subs)
	if s.values != nil {
		if err := s.values.Set(ctx, v); err != nil {
			log.Warn().Err(err).Msg("filter values cache write failed")
		}
	}
	return v, nil
}

func (s *VariantService) invalidateValues(ctx context.Context) {
	if s.values == nil {
		return
	}
	if err := s.values.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("filter values cache invalidation failed")
	}
}

// aggregateFilterValues collects distinct non-empty colors and sizes in
// first-seen order and every price with duplicates retained.
func aggregateFilterValues(subs []models.SubProduct) *models.FilterValues {
	v := &models.FilterValues{
		Colors: []string{},
		Sizes:  []string{},
		Prices: []decimal.Decimal{},
	}
	seenColors := make(map[string]bool)
	seenSizes := make(map[string]bool)
	for _, sub := range subs {
		if sub.Color != "" && !seenColors[sub.Color] {
			seenColors[sub.Color] = true
			v.Colors = append(v.Colors, sub.Color)
		}
		if sub.Size != "" && !seenSizes[sub.Size] {
			seenSizes[sub.Size] = true
			v.Sizes = append(v.Sizes, sub.Size)
		}
		v.Prices = append(v.Prices, sub.Price)
	}
	return v
}
