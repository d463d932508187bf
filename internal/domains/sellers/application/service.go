package application

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/sellers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service orchestrates seller use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Seller], error) {
	sellers, total, err := s.repo.List(ctx, page)
	if err != nil {
		return pagination.Page[*domain.Seller]{}, err
	}
	return pagination.NewPage(sellers, page, total), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	if seller == nil {
		return nil, errors.New("seller is nil")
	}
	clone := *seller
	clone.ID = 0
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, &clone)
}

func (s *Service) Update(ctx context.Context, id int64, seller *domain.Seller) (*domain.Seller, error) {
	if seller == nil {
		return nil, errors.New("seller is nil")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	clone := *seller
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
