package ports

import (
	"context"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// CreateInput carries the purchase request parameters.
type CreateInput struct {
	BuyerID  int64
	ItemID   int64
	Quantity int32
}

// Service exposes purchase use cases to adapters.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*domain.Receipt, error)
	List(ctx context.Context, page pagination.Request) (pagination.Page[*domain.Receipt], error)
}
