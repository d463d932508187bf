package application

import (
	"context"
	"time"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service orchestrates the purchase flow. The guard sequence is fixed:
// buyer exists, item exists, quantity is positive, stock suffices. Only
// then does the repository decrement stock and insert the record, both in
// one atomic unit, so concurrent purchases can never oversell.
type Service struct {
	repo   ports.Repository
	buyers ports.BuyerDirectory
	items  ports.Catalog
	now    func() time.Time
}

// Option customizes the service.
type Option func(*Service)

// WithClock overrides the purchase timestamp source. Tests use it for
// deterministic receipts.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the purchases service with its dependencies.
func NewService(repo ports.Repository, buyers ports.BuyerDirectory, items ports.Catalog, opts ...Option) *Service {
	s := &Service{repo: repo, buyers: buyers, items: items, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and records a purchase, returning a receipt with the
// buyer and item names resolved at purchase time.
func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*domain.Receipt, error) {
	buyer, err := s.buyers.GetByID(ctx, input.BuyerID)
	if err != nil {
		return nil, mapError(err)
	}
	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, mapError(err)
	}
	purchase, err := domain.NewPurchase(buyer.ID, item.ID, input.Quantity, s.now().UTC())
	if err != nil {
		return nil, mapError(err)
	}
	// Pre-check for a friendly rejection; the repository re-checks inside
	// the transaction, which is the authoritative guard under concurrency.
	if item.Quantity < input.Quantity {
		return nil, mapError(&domain.InsufficientStockError{Available: item.Quantity})
	}
	recorded, err := s.repo.Record(ctx, purchase)
	if err != nil {
		return nil, mapError(err)
	}
	return &domain.Receipt{
		PurchaseID:   recorded.ID,
		BuyerID:      buyer.ID,
		BuyerName:    buyer.Name,
		ItemID:       item.ID,
		ItemName:     item.Name,
		Quantity:     recorded.Quantity,
		PurchaseDate: recorded.PurchaseDate,
	}, nil
}

// List returns one page of receipts ordered by purchase id.
func (s *Service) List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Receipt], error) {
	receipts, total, err := s.repo.List(ctx, page)
	if err != nil {
		return pagination.Page[*domain.Receipt]{}, err
	}
	return pagination.NewPage(receipts, page, total), nil
}

var _ ports.Service = (*Service)(nil)
