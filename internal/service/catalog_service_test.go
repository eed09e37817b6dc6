package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/models"
	"github.com/modavn/catalog_api/internal/repository"
)

// fakeCatalogStore is an in-memory CatalogStore whose transactions stage their
// writes and only apply them on Commit, so rollback behavior is observable.
type fakeCatalogStore struct {
	products   map[uuid.UUID]models.Product
	categories map[uuid.UUID]models.Category
	links      map[uuid.UUID][]uuid.UUID

	// linkWrites counts committed InsertLink/DeleteLinks calls.
	linkWrites int
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		products:   make(map[uuid.UUID]models.Product),
		categories: make(map[uuid.UUID]models.Category),
		links:      make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *fakeCatalogStore) addCategory(title string) uuid.UUID {
	id := uuid.New()
	s.categories[id] = models.Category{ID: id, Title: title}
	return id
}

func (s *fakeCatalogStore) Begin(ctx context.Context) (repository.CatalogTx, error) {
	return &fakeCatalogTx{store: s}, nil
}

func (s *fakeCatalogStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (s *fakeCatalogStore) ListAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeCatalogStore) ListPaged(ctx context.Context, offset, limit int) ([]models.Product, int, error) {
	all, _ := s.ListAll(ctx)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (s *fakeCatalogStore) Search(ctx context.Context, term string) ([]models.Product, error) {
	return s.ListAll(ctx)
}

func (s *fakeCatalogStore) Filter(ctx context.Context, f *models.FilterRequest) ([]models.Product, error) {
	return s.ListAll(ctx)
}

func (s *fakeCatalogStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.products, id)
	delete(s.links, id)
	return nil
}

type fakeCatalogTx struct {
	store      *fakeCatalogStore
	staged     []func()
	linkWrites int
}

func (t *fakeCatalogTx) InsertProduct(p *models.Product) error {
	copied := *p
	t.staged = append(t.staged, func() { t.store.products[copied.ID] = copied })
	return nil
}

func (t *fakeCatalogTx) GetProduct(id uuid.UUID) (*models.Product, error) {
	p, ok := t.store.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (t *fakeCatalogTx) UpdateProduct(p *models.Product) error {
	copied := *p
	t.staged = append(t.staged, func() { t.store.products[copied.ID] = copied })
	return nil
}

func (t *fakeCatalogTx) GetCategory(id uuid.UUID) (*models.Category, error) {
	c, ok := t.store.categories[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (t *fakeCatalogTx) CategoryIDs(productID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), t.store.links[productID]...), nil
}

func (t *fakeCatalogTx) InsertLink(productID, categoryID uuid.UUID) error {
	t.linkWrites++
	t.staged = append(t.staged, func() {
		t.store.links[productID] = append(t.store.links[productID], categoryID)
	})
	return nil
}

func (t *fakeCatalogTx) DeleteLinks(productID uuid.UUID) error {
	t.linkWrites++
	t.staged = append(t.staged, func() { delete(t.store.links, productID) })
	return nil
}

func (t *fakeCatalogTx) Commit() error {
	for _, apply := range t.staged {
		apply()
	}
	t.store.linkWrites += t.linkWrites
	return nil
}

func (t *fakeCatalogTx) Rollback() error {
	t.staged = nil
	return nil
}

func newCatalogService(store *fakeCatalogStore) *CatalogService {
	msgs, err := config.LoadMessages("")
	if err != nil {
		panic(err)
	}
	return NewCatalogService(store, msgs)
}

func TestCreateProductStoresLinks(t *testing.T) {
	store := newFakeCatalogStore()
	shoes := store.addCategory("Shoes")
	sale := store.addCategory("Sale")
	svc := newCatalogService(store)

	res := svc.CreateProduct(context.Background(), &ProductRequest{
		Title:       "Runner",
		Slug:        "runner",
		CategoryIDs: []uuid.UUID{shoes, sale},
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, StatusOK, res.Status)
	assert.Len(t, res.Data.Categories, 2)

	_, stored := store.products[res.Data.ID]
	assert.True(t, stored)
	assert.ElementsMatch(t, []uuid.UUID{shoes, sale}, store.links[res.Data.ID])
}

func TestCreateProductUnknownCategoryLeavesNoTrace(t *testing.T) {
	store := newFakeCatalogStore()
	shoes := store.addCategory("Shoes")
	svc := newCatalogService(store)

	res := svc.CreateProduct(context.Background(), &ProductRequest{
		Title:       "Runner",
		Slug:        "runner",
		CategoryIDs: []uuid.UUID{shoes, uuid.New()},
	})

	require.False(t, res.Success)
	assert.Equal(t, StatusReferentialViolation, res.Status)
	assert.Empty(t, store.products)
	assert.Empty(t, store.links)
}

func TestUpdateProductReplacesLinkSet(t *testing.T) {
	store := newFakeCatalogStore()
	old := store.addCategory("Old")
	newA := store.addCategory("New A")
	newB := store.addCategory("New B")

	productID := uuid.New()
	store.products[productID] = models.Product{ID: productID, Title: "Runner", Slug: "runner"}
	store.links[productID] = []uuid.UUID{old}

	svc := newCatalogService(store)
	res := svc.UpdateProduct(context.Background(), productID, &ProductRequest{
		Title:       "Runner v2",
		Slug:        "runner",
		CategoryIDs: []uuid.UUID{newA, newB},
	})

	require.True(t, res.Success)
	assert.ElementsMatch(t, []uuid.UUID{newA, newB}, store.links[productID])
	assert.Equal(t, "Runner v2", store.products[productID].Title)
}

func TestUpdateProductSameSetSkipsLinkWrites(t *testing.T) {
	store := newFakeCatalogStore()
	a := store.addCategory("A")
	b := store.addCategory("B")

	productID := uuid.New()
	store.products[productID] = models.Product{ID: productID, Title: "Runner", Slug: "runner"}
	store.links[productID] = []uuid.UUID{a, b}

	svc := newCatalogService(store)
	res := svc.UpdateProduct(context.Background(), productID, &ProductRequest{
		Title:       "Runner",
		Slug:        "runner",
		CategoryIDs: []uuid.UUID{b, a},
	})

	require.True(t, res.Success)
	assert.Zero(t, store.linkWrites)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, store.links[productID])
}

func TestUpdateProductUnknownCategoryLeavesProductUntouched(t *testing.T) {
	store := newFakeCatalogStore()
	productID := uuid.New()
	store.products[productID] = models.Product{ID: productID, Title: "Original", Slug: "original"}

	svc := newCatalogService(store)
	res := svc.UpdateProduct(context.Background(), productID, &ProductRequest{
		Title:       "Changed",
		Slug:        "changed",
		CategoryIDs: []uuid.UUID{uuid.New()},
	})

	require.False(t, res.Success)
	assert.Equal(t, StatusReferentialViolation, res.Status)
	assert.Equal(t, "Original", store.products[productID].Title)
	assert.Empty(t, store.links[productID])
}

func TestUpdateProductIdentityChecks(t *testing.T) {
	store := newFakeCatalogStore()
	svc := newCatalogService(store)
	req := &ProductRequest{Title: "X", Slug: "x"}

	res := svc.UpdateProduct(context.Background(), uuid.Nil, req)
	assert.Equal(t, StatusInvalidIdentity, res.Status)

	res = svc.UpdateProduct(context.Background(), uuid.New(), req)
	assert.Equal(t, StatusNotFound, res.Status)
}

func TestDeleteProductThenGet(t *testing.T) {
	store := newFakeCatalogStore()
	productID := uuid.New()
	store.products[productID] = models.Product{ID: productID, Title: "Runner", CreatedAt: time.Now()}

	svc := newCatalogService(store)
	res := svc.DeleteProduct(context.Background(), productID)
	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, productID, res.Data.ID)

	_, err := svc.GetProduct(context.Background(), productID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteProductZeroIdentity(t *testing.T) {
	store := newFakeCatalogStore()
	svc := newCatalogService(store)

	res := svc.DeleteProduct(context.Background(), uuid.Nil)
	assert.False(t, res.Success)
	assert.Equal(t, StatusInvalidIdentity, res.Status)
}
