package ports

import (
	"context"

	"github.com/anycomp/marketplace-api/internal/domains/items/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Service exposes item use cases to adapters.
type Service interface {
	List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Item], error)
	ListBySeller(ctx context.Context, sellerID int64, page pagination.Request) (pagination.Page[*domain.Item], error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	CreateForSeller(ctx context.Context, sellerID int64, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id int64, name string, price float64) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
