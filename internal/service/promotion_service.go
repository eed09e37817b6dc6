package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/utils"
)

// PromotionStore is the storage gateway consumed by the promotion manager.
// *repository.PromotionRepository satisfies it.
type PromotionStore interface {
	Insert(ctx context.Context, p *models.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	ListAll(ctx context.Context) ([]models.Promotion, error)
	Update(ctx context.Context, p *models.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PromotionService handles promotion CRUD. No multi-entity atomicity here;
// the single-row write path is the same checkpoint chain product and variant
// mutations use.
type PromotionService struct {
	store PromotionStore
	msgs  *config.Messages
}

// NewPromotionService constructs a PromotionService.
func NewPromotionService(store PromotionStore, msgs *config.Messages) *PromotionService {
	return &PromotionService{store: store, msgs: msgs}
}

// PromotionRequest is the complete promotion draft supplied by the caller.
type PromotionRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Code        string               `json:"code" binding:"required"`
	Type        models.PromotionType `json:"type" binding:"required"`
	Value       decimal.Decimal      `json:"value"`
	Available   int                  `json:"available"`
	ImageURL    string               `json:"imageUrl"`
	StartsAt    time.Time            `json:"startsAt"`
	EndsAt      time.Time            `json:"endsAt"`
}

func validPromotionType(t models.PromotionType) bool {
	return t == models.PromotionTypePercentage || t == models.PromotionTypeAmount
}

// AddPromotion persists a new promotion.
func (s *PromotionService) AddPromotion(ctx context.Context, req *PromotionRequest) Result[models.Promotion] {
	if !validPromotionType(req.Type) {
		return fail[models.Promotion](StatusValidation, s.msgs.Get("PromotionMessages", "CreatePromotionFailure"))
	}

	now := time.Now().UTC()
	promo := &models.Promotion{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Type:        req.Type,
		Value:       req.Value,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, promo); err != nil {
		log.Error().Err(err).Str("code", req.Code).Msg("promotion insert failed")
		return fail[models.Promotion](StatusPersistence, s.msgs.Get("PromotionMessages", "CreatePromotionFailure"))
	}
	return ok(promo, s.msgs.Get("PromotionMessages", "CreatePromotionSuccess"))
}

// ListPromotions returns every promotion, newest first.
func (s *PromotionService) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.store.ListAll(ctx)
}

// GetPromotion returns a single promotion by id.
func (s *PromotionService) GetPromotion(ctx context.Context, promotionID uuid.UUID) (*models.Promotion, error) {
	return s.store.GetByID(ctx, promotionID)
}

// UpdatePromotion overwrites an existing promotion from the complete draft.
func (s *PromotionService) UpdatePromotion(ctx context.Context, promotionID uuid.UUID, req *PromotionRequest) Result[models.Promotion] {
	return mutateByID(ctx, promotionID,
		mutateMessages{
			notFound: s.msgs.Get("PromotionMessages", "PromotionNotFound"),
			invalid:  s.msgs.Get("PromotionMessages", "UpdatePromotionFailure"),
			failure:  s.msgs.Get("PromotionMessages", "UpdatePromotionFailure"),
			success:  s.msgs.Get("PromotionMessages", "UpdatePromotionSuccess"),
		},
		s.store.GetByID,
		func(promo *models.Promotion) error {
			if !validPromotionType(req.Type) {
				return utils.ErrInvalidPromoType
			}
			promo.Title = req.Title
			promo.Description = req.Description
			promo.Code = req.Code
			promo.Type = req.Type
			promo.Value = req.Value
			promo.Available = req.Available
			promo.ImageURL = req.ImageURL
			promo.StartsAt = req.StartsAt
			promo.EndsAt = req.EndsAt
			promo.UpdatedAt = time.Now().UTC()
			return nil
		},
		s.store.Update,
	)
}

// DeletePromotion removes a promotion and returns the removed snapshot.
func (s *PromotionService) DeletePromotion(ctx context.Context, promotionID uuid.UUID) Result[models.Promotion] {
	return mutateByID(ctx, promotionID,
		mutateMessages{
			notFound: s.msgs.Get("PromotionMessages", "PromotionNotFound"),
			failure:  s.msgs.Get("PromotionMessages", "DeletePromotionFailure"),
			success:  s.msgs.Get("PromotionMessages", "DeletePromotionSuccess"),
		},
		s.store.GetByID,
		nil,
		func(ctx context.Context, promo *models.Promotion) error {
			return s.store.Delete(ctx, promo.ID)
		},
	)
}
