package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/anycomp/marketplace-api/internal/domains/items/domain"
	"github.com/anycomp/marketplace-api/internal/domains/items/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory item persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	items  map[int64]*domain.Item
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{items: map[int64]*domain.Item{}}
}

func (r *Repository) Save(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.items[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *Repository) List(_ context.Context, page pagination.Request) ([]*domain.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.window(r.collect(func(*domain.Item) bool { return true }), page)
}

func (r *Repository) ListBySeller(_ context.Context, sellerID int64, page pagination.Request) ([]*domain.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.window(r.collect(func(item *domain.Item) bool { return item.SellerID == sellerID }), page)
}

// Decrement applies a conditional stock decrement, mirroring the
// `UPDATE ... WHERE quantity >= ?` statement the Postgres adapters use.
// It returns the remaining stock after (or at the moment of) the attempt.
func (r *Repository) Decrement(_ context.Context, itemID int64, quantity int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return 0, ports.ErrNotFound
	}
	if item.Quantity < quantity {
		return item.Quantity, ports.ErrInsufficientStock
	}
	item.Quantity -= quantity
	return item.Quantity, nil
}

func (r *Repository) collect(keep func(*domain.Item) bool) []*domain.Item {
	list := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			clone := *item
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *Repository) window(list []*domain.Item, page pagination.Request) ([]*domain.Item, int64, error) {
	window, total := pagination.Slice(list, page)
	return window, total, nil
}
