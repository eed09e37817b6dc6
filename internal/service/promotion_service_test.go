package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
)

type fakePromotionStore struct {
	promos map[uuid.UUID]models.Promotion
}

func newFakePromotionStore() *fakePromotionStore {
	return &fakePromotionStore{promos: make(map[uuid.UUID]models.Promotion)}
}

func (s *fakePromotionStore) Insert(ctx context.Context, p *models.Promotion) error {
	s.promos[p.ID] = *p
	return nil
}

func (s *fakePromotionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	p, ok := s.promos[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (s *fakePromotionStore) ListAll(ctx context.Context) ([]models.Promotion, error) {
	out := make([]models.Promotion, 0, len(s.promos))
	for _, p := range s.promos {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePromotionStore) Update(ctx context.Context, p *models.Promotion) error {
	s.promos[p.ID] = *p
	return nil
}

func (s *fakePromotionStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.promos, id)
	return nil
}

func newPromotionService(store *fakePromotionStore) *PromotionService {
	msgs, err := config.LoadMessages("")
	if err != nil {
		panic(err)
	}
	return NewPromotionService(store, msgs)
}

func TestAddPromotionRejectsUnknownType(t *testing.T) {
	store := newFakePromotionStore()
	svc := newPromotionService(store)

	res := svc.AddPromotion(context.Background(), &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  "bogus",
	})

	assert.False(t, res.Success)
	assert.Equal(t, StatusValidation, res.Status)
	assert.Empty(t, store.promos)
}

func TestAddPromotionSuccess(t *testing.T) {
	store := newFakePromotionStore()
	svc := newPromotionService(store)

	res := svc.AddPromotion(context.Background(), &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  models.PromotionTypePercentage,
		Value: decimal.NewFromInt(10),
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.NotEqual(t, uuid.Nil, res.Data.ID)
	assert.Len(t, store.promos, 1)
}

func TestUpdatePromotion(t *testing.T) {
	store := newFakePromotionStore()
	svc := newPromotionService(store)

	created := svc.AddPromotion(context.Background(), &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  models.PromotionTypePercentage,
		Value: decimal.NewFromInt(10),
	})
	require.True(t, created.Success)

	res := svc.UpdatePromotion(context.Background(), created.Data.ID, &PromotionRequest{
		Title: "Summer Sale",
		Code:  "SUMMER15",
		Type:  models.PromotionTypeAmount,
		Value: decimal.NewFromInt(15),
	})

	require.True(t, res.Success)
	stored := store.promos[created.Data.ID]
	assert.Equal(t, "Summer Sale", stored.Title)
	assert.Equal(t, models.PromotionTypeAmount, stored.Type)
}

func TestUpdatePromotionRejectsUnknownType(t *testing.T) {
	store := newFakePromotionStore()
	svc := newPromotionService(store)

	created := svc.AddPromotion(context.Background(), &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  models.PromotionTypePercentage,
	})
	require.True(t, created.Success)

	res := svc.UpdatePromotion(context.Background(), created.Data.ID, &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  "bogus",
	})

	assert.False(t, res.Success)
	assert.Equal(t, StatusValidation, res.Status)
	assert.Equal(t, models.PromotionTypePercentage, store.promos[created.Data.ID].Type)
}

func TestUpdatePromotionIdentityChecks(t *testing.T) {
	svc := newPromotionService(newFakePromotionStore())
	req := &PromotionRequest{Title: "X", Code: "X", Type: models.PromotionTypeAmount}

	res := svc.UpdatePromotion(context.Background(), uuid.Nil, req)
	assert.Equal(t, StatusInvalidIdentity, res.Status)

	res = svc.UpdatePromotion(context.Background(), uuid.New(), req)
	assert.Equal(t, StatusNotFound, res.Status)
}

func TestDeletePromotion(t *testing.T) {
	store := newFakePromotionStore()
	svc := newPromotionService(store)

	created := svc.AddPromotion(context.Background(), &PromotionRequest{
		Title: "Summer",
		Code:  "SUMMER10",
		Type:  models.PromotionTypePercentage,
	})
	require.True(t, created.Success)

	res := svc.DeletePromotion(context.Background(), created.Data.ID)
	require.True(t, res.Success)
	assert.Empty(t, store.promos)

	_, err := svc.GetPromotion(context.Background(), created.Data.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
