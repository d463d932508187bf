package ports

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/items/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var (
	ErrNotFound          = errors.New("item not found")
	ErrSellerNotFound    = errors.New("seller not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repository persists items and exposes the seller-scoped listing.
type Repository interface {
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page pagination.Request) ([]*domain.Item, int64, error)
	ListBySeller(ctx context.Context, sellerID int64, page pagination.Request) ([]*domain.Item, int64, error)
}

// SellerDirectory answers whether a seller exists without exposing the
// sellers bounded context.
type SellerDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
