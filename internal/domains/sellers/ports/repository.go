package ports

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var ErrNotFound = errors.New("seller not found")

// Repository persists sellers.
type Repository interface {
	Save(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page pagination.Request) ([]*domain.Seller, int64, error)
}
