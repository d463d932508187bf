package application

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/buyers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service orchestrates buyer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Buyer], error) {
	buyers, total, err := s.repo.List(ctx, page)
	if err != nil {
		return pagination.Page[*domain.Buyer]{}, err
	}
	return pagination.NewPage(buyers, page, total), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new buyer, always assigning a fresh identity.
func (s *Service) Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	clone := *buyer
	clone.ID = 0
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, &clone)
}

// Update overwrites an existing buyer. The identifier is fixed to the path
// value regardless of what the payload carries.
func (s *Service) Update(ctx context.Context, id int64, buyer *domain.Buyer) (*domain.Buyer, error) {
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	clone := *buyer
	clone.ID = id
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, &clone)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
