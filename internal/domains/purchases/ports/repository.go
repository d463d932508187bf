package ports

import (
	"context"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// Repository persists purchases.
type Repository interface {
	// Record atomically decrements the item's stock and inserts the purchase
	// in a single unit. When the conditional decrement finds less stock than
	// requested it returns *domain.InsufficientStockError, and
	// domain.ErrItemNotFound when the item vanished.
	Record(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	// List returns one page of receipts ordered by purchase id plus the
	// total count.
	List(ctx context.Context, page pagination.Request) ([]*domain.Receipt, int64, error)
}
