package application

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/items/domain"
	"github.com/anycomp/marketplace-api/internal/domains/items/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service orchestrates item use cases.
type Service struct {
	repo    ports.Repository
	sellers ports.SellerDirectory
}

// NewService wires the items service with its dependencies.
func NewService(repo ports.Repository, sellers ports.SellerDirectory) *Service {
	return &Service{repo: repo, sellers: sellers}
}

func (s *Service) List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Item], error) {
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return pagination.Page[*domain.Item]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *Service) ListBySeller(ctx context.Context, sellerID int64, page pagination.Request) (pagination.Page[*domain.Item], error) {
	items, total, err := s.repo.ListBySeller(ctx, sellerID, page)
	if err != nil {
		return pagination.Page[*domain.Item]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateForSeller persists a new item owned by the given seller, with stock
// initialized from the request. The seller must already exist.
func (s *Service) CreateForSeller(ctx context.Context, sellerID int64, item *domain.Item) (*domain.Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	exists, err := s.sellers.Exists(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ports.ErrSellerNotFound
	}
	clone := *item
	clone.ID = 0
	clone.SellerID = sellerID
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, &clone)
}

// Update overwrites name and price of an existing item. Stock is untouched;
// only the purchase flow mutates it.
func (s *Service) Update(ctx context.Context, id int64, name string, price float64) (*domain.Item, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := existing.Rename(name); err != nil {
		return nil, err
	}
	if err := existing.Reprice(price); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, existing)
}

// Delete removes an item. A missing item is not an error; the operation is
// idempotent from the caller's point of view.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
