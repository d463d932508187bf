package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Stock applies a conditional decrement against item inventory. It returns
// domain.ErrItemNotFound for unknown items and *domain.InsufficientStockError
// when the remaining stock is below the requested amount.
type Stock interface {
	Decrement(ctx context.Context, itemID int64, quantity int32) (int32, error)
}

// Repository is an in-memory purchase persistence adapter. The stock
// decrement is delegated to the item store, whose lock serializes
// concurrent purchases of the same item; the purchase is only recorded
// after the decrement succeeded, so stock can never go negative.
type Repository struct {
	mu        sync.RWMutex
	purchases map[int64]*domain.Purchase
	nextID    int64

	stock  Stock
	buyers ports.BuyerDirectory
	items  ports.Catalog
}

func NewRepository(stock Stock, buyers ports.BuyerDirectory, items ports.Catalog) *Repository {
	return &Repository{
		purchases: map[int64]*domain.Purchase{},
		stock:     stock,
		buyers:    buyers,
		items:     items,
	}
}

func (r *Repository) Record(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if purchase == nil {
		return nil, errors.New("purchase is nil")
	}
	if _, err := r.stock.Decrement(ctx, purchase.ItemID, purchase.Quantity); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *purchase
	r.nextID++
	clone.ID = r.nextID
	r.purchases[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) List(ctx context.Context, page pagination.Request) ([]*domain.Receipt, int64, error) {
	r.mu.RLock()
	list := make([]*domain.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		clone := *p
		list = append(list, &clone)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	window, total := pagination.Slice(list, page)
	receipts := make([]*domain.Receipt, 0, len(window))
	for _, p := range window {
		receipts = append(receipts, r.toReceipt(ctx, p))
	}
	return receipts, total, nil
}

// toReceipt resolves buyer and item names on demand. A counterpart deleted
// after the purchase leaves its name blank rather than failing the listing.
func (r *Repository) toReceipt(ctx context.Context, p *domain.Purchase) *domain.Receipt {
	receipt := &domain.Receipt{
		PurchaseID:   p.ID,
		BuyerID:      p.BuyerID,
		ItemID:       p.ItemID,
		Quantity:     p.Quantity,
		PurchaseDate: p.PurchaseDate,
	}
	if buyer, err := r.buyers.GetByID(ctx, p.BuyerID); err == nil {
		receipt.BuyerName = buyer.Name
	}
	if item, err := r.items.GetByID(ctx, p.ItemID); err == nil {
		receipt.ItemName = item.Name
	}
	return receipt
}
