package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/sellers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory seller persistence adapter.
type Repository struct {
	mu      sync.RWMutex
	sellers map[int64]*domain.Seller
	nextID  int64
}

func NewRepository() *Repository {
	return &Repository{sellers: map[int64]*domain.Seller{}}
}

func (r *Repository) Save(_ context.Context, seller *domain.Seller) (*domain.Seller, error) {
	if seller == nil {
		return nil, errors.New("seller is nil")
	}
	clone := *seller
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
	r.sellers[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seller, ok := r.sellers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *seller
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sellers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.sellers, id)
	return nil
}

func (r *Repository) List(_ context.Context, page pagination.Request) ([]*domain.Seller, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Seller, 0, len(r.sellers))
	for _, seller := range r.sellers {
		clone := *seller
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	window, total := pagination.Slice(list, page)
	return window, total, nil
}
