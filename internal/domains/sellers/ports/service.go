package ports

import (
	"context"

	"github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service exposes seller use cases to adapters.
type Service interface {
	List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Seller], error)
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	Update(ctx context.Context, id int64, seller *domain.Seller) (*domain.Seller, error)
	Delete(ctx context.Context, id int64) error
}
