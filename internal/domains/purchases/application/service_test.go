package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

type fakePurchaseRepo struct {
	stock     map[int64]*ports.ItemRef
	buyers    map[int64]*ports.BuyerRef
	purchases []*domain.Purchase
	nextID    int64
}

func newFixture() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		stock:  map[int64]*ports.ItemRef{},
		buyers: map[int64]*ports.BuyerRef{},
	}
}

func (f *fakePurchaseRepo) Record(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	item, ok := f.stock[p.ItemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity < p.Quantity {
		return nil, &domain.InsufficientStockError{Available: item.Quantity}
	}
	item.Quantity -= p.Quantity
	f.nextID++
	clone := *p
	clone.ID = f.nextID
	f.purchases = append(f.purchases, &clone)
	result := clone
	return &result, nil
}

func (f *fakePurchaseRepo) List(_ context.Context, page pagination.Request) ([]*domain.Receipt, int64, error) {
	receipts := make([]*domain.Receipt, 0, len(f.purchases))
	for _, p := range f.purchases {
		r := &domain.Receipt{
			PurchaseID:   p.ID,
			BuyerID:      p.BuyerID,
			ItemID:       p.ItemID,
			Quantity:     p.Quantity,
			PurchaseDate: p.PurchaseDate,
		}
		if buyer, ok := f.buyers[p.BuyerID]; ok {
			r.BuyerName = buyer.Name
		}
		if item, ok := f.stock[p.ItemID]; ok {
			r.ItemName = item.Name
		}
		receipts = append(receipts, r)
	}
	window, total := pagination.Slice(receipts, page)
	return window, total, nil
}

func (f *fakePurchaseRepo) GetByID(_ context.Context, id int64) (*ports.ItemRef, error) {
	if item, ok := f.stock[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, domain.ErrItemNotFound
}

type fakeBuyerDirectory struct {
	buyers map[int64]*ports.BuyerRef
}

func (f fakeBuyerDirectory) GetByID(_ context.Context, id int64) (*ports.BuyerRef, error) {
	if b, ok := f.buyers[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBuyerNotFound
}

func newService(repo *fakePurchaseRepo, opts ...Option) *Service {
	return NewService(repo, fakeBuyerDirectory{buyers: repo.buyers}, repo, opts...)
}

func seed(repo *fakePurchaseRepo) {
	repo.buyers[1] = &ports.BuyerRef{ID: 1, Name: "Ann"}
	repo.stock[2] = &ports.ItemRef{ID: 2, Name: "Widget", Price: 9.99, Quantity: 5}
}

func TestCreate_DecrementsStockAndReturnsReceipt(t *testing.T) {
	repo := newFixture()
	seed(repo)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(repo, WithClock(func() time.Time { return at }))

	receipt, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: 3})
	require.NoError(t, err)

	assert.NotZero(t, receipt.PurchaseID)
	assert.Equal(t, "Ann", receipt.BuyerName)
	assert.Equal(t, "Widget", receipt.ItemName)
	assert.Equal(t, int32(3), receipt.Quantity)
	assert.Equal(t, at, receipt.PurchaseDate)
	assert.Equal(t, int32(2), repo.stock[2].Quantity, "stock must shrink by the purchased amount")
}

func TestCreate_RejectsOverselling(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: 3})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: 5})
	require.ErrorIs(t, err, ErrInvalidInput)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int32(2), stockErr.Available)
	assert.Contains(t, err.Error(), "Available: 2")
	assert.Equal(t, int32(2), repo.stock[2].Quantity, "a rejected purchase must not touch stock")
}

func TestCreate_ExactRemainingStockSucceeds(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int32(0), repo.stock[2].Quantity)
}

func TestCreate_UnknownBuyer(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 99, ItemID: 2, Quantity: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrBuyerNotFound)
	assert.Empty(t, repo.purchases)
}

func TestCreate_UnknownItem(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 99, Quantity: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreate_NonPositiveQuantity(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	for _, qty := range []int32{0, -1} {
		_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: qty})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	}
	assert.Equal(t, int32(5), repo.stock[2].Quantity)
}

func TestList_ResolvesNamesAtReadTime(t *testing.T) {
	repo := newFixture()
	seed(repo)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInput{BuyerID: 1, ItemID: 2, Quantity: 1})
	require.NoError(t, err)

	repo.stock[2].Name = "Widget v2"

	page, err := svc.List(context.Background(), pagination.Request{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Widget v2", page.Content[0].ItemName, "receipts show the current item name")
	assert.Equal(t, "Ann", page.Content[0].BuyerName)
	assert.Equal(t, int64(1), page.TotalElements)
}
