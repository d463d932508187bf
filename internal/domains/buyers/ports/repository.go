package ports

import (
	"context"
	"errors"

	"github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var ErrNotFound = errors.New("buyer not found")

// Repository persists buyers.
type Repository interface {
	Save(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page pagination.Request) ([]*domain.Buyer, int64, error)
}
