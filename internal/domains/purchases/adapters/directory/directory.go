// Package directory bridges the purchases context to its neighbors. Each
// lookup translates the neighbor's sentinel errors into purchase domain
// errors so the application layer never imports another context's ports.
package directory

import (
	"context"
	"errors"

	buyersports "github.com/anycomp/marketplace-api/internal/domains/buyers/ports"
	itemsports "github.com/anycomp/marketplace-api/internal/domains/items/ports"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
)

var (
	_ ports.BuyerDirectory = (*BuyerLookup)(nil)
	_ ports.Catalog        = (*CatalogLookup)(nil)
)

// BuyerLookup resolves buyers through the buyers repository.
type BuyerLookup struct {
	buyers buyersports.Repository
}

func NewBuyerLookup(buyers buyersports.Repository) *BuyerLookup {
	return &BuyerLookup{buyers: buyers}
}

func (l *BuyerLookup) GetByID(ctx context.Context, id int64) (*ports.BuyerRef, error) {
	buyer, err := l.buyers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, buyersports.ErrNotFound) {
			return nil, domain.ErrBuyerNotFound
		}
		return nil, err
	}
	return &ports.BuyerRef{ID: buyer.ID, Name: buyer.Name}, nil
}

// CatalogLookup resolves items through the items repository.
type CatalogLookup struct {
	items itemsports.Repository
}

func NewCatalogLookup(items itemsports.Repository) *CatalogLookup {
	return &CatalogLookup{items: items}
}

func (l *CatalogLookup) GetByID(ctx context.Context, id int64) (*ports.ItemRef, error) {
	item, err := l.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemsports.ErrNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &ports.ItemRef{ID: item.ID, Name: item.Name, Price: item.Price, Quantity: item.Quantity}, nil
}

// stockDecrementer is satisfied by the in-memory items repository.
type stockDecrementer interface {
	Decrement(ctx context.Context, itemID int64, quantity int32) (int32, error)
}

// StockGate adapts the item store's decrement to the purchase contract.
type StockGate struct {
	items stockDecrementer
}

func NewStockGate(items stockDecrementer) *StockGate {
	return &StockGate{items: items}
}

func (g *StockGate) Decrement(ctx context.Context, itemID int64, quantity int32) (int32, error) {
	remaining, err := g.items.Decrement(ctx, itemID, quantity)
	switch {
	case err == nil:
		return remaining, nil
	case errors.Is(err, itemsports.ErrNotFound):
		return 0, domain.ErrItemNotFound
	case errors.Is(err, itemsports.ErrInsufficientStock):
		return remaining, &domain.InsufficientStockError{Available: remaining}
	default:
		return 0, err
	}
}
