// Package directory adapts the sellers repository to the lookup port the
// items service depends on.
package directory

import (
	"context"
	"errors"

	itemsports "github.com/anycomp/marketplace-api/internal/domains/items/ports"
	sellersports "github.com/anycomp/marketplace-api/internal/domains/sellers/ports"
)

var _ itemsports.SellerDirectory = (*SellerLookup)(nil)

// SellerLookup answers seller existence checks through the sellers repository.
type SellerLookup struct {
	repo sellersports.Repository
}

func NewSellerLookup(repo sellersports.Repository) *SellerLookup {
	return &SellerLookup{repo: repo}
}

func (l *SellerLookup) Exists(ctx context.Context, id int64) (bool, error) {
	if _, err := l.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sellersports.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
