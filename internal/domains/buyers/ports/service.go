package ports

import (
	"context"

	"github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service exposes buyer use cases to adapters.
type Service interface {
	List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Buyer], error)
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
	Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	Update(ctx context.Context, id int64, buyer *domain.Buyer) (*domain.Buyer, error)
	Delete(ctx context.Context, id int64) error
}
