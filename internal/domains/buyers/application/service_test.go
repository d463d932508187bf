package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/buyers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

type fakeBuyerRepo struct {
	buyers map[int64]*domain.Buyer
	nextID int64
}

func newFakeBuyerRepo() *fakeBuyerRepo {
	return &fakeBuyerRepo{buyers: map[int64]*domain.Buyer{}}
}

func (f *fakeBuyerRepo) Save(_ context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	copy := *buyer
	if copy.ID == 0 {
		f.nextID++
		copy.ID = f.nextID
	}
	f.buyers[copy.ID] = &copy
	result := copy
	return &result, nil
}

func (f *fakeBuyerRepo) GetByID(_ context.Context, id int64) (*domain.Buyer, error) {
	if b, ok := f.buyers[id]; ok {
		copy := *b
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeBuyerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.buyers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.buyers, id)
	return nil
}

func (f *fakeBuyerRepo) List(_ context.Context, page pagination.Request) ([]*domain.Buyer, int64, error) {
	var list []*domain.Buyer
	for _, b := range f.buyers {
		copy := *b
		list = append(list, &copy)
	}
	window, total := pagination.Slice(list, page)
	return window, total, nil
}

func TestCreate_AssignsIdentityAndRoundTrips(t *testing.T) {
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	buyer, err := domain.NewBuyer("Ann", "ann@example.com")
	require.NoError(t, err)

	saved, err := svc.Create(context.Background(), buyer)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := svc.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Name, fetched.Name)
	assert.Equal(t, saved.Email, fetched.Email)
}

func TestCreate_IgnoresSuppliedIdentity(t *testing.T) {
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	saved, err := svc.Create(context.Background(), &domain.Buyer{ID: 99, Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestUpdate_RequiresExistingBuyer(t *testing.T) {
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 42, &domain.Buyer{Name: "Ann"})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdate_FixesIdentifierToPathValue(t *testing.T) {
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	saved, err := svc.Create(context.Background(), &domain.Buyer{Name: "Ann"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), saved.ID, &domain.Buyer{ID: 500, Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Anna", updated.Name)

	// Updating again with the same payload leaves the stored state unchanged.
	again, err := svc.Update(context.Background(), saved.ID, &domain.Buyer{ID: 500, Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestDelete_NotFoundTwice(t *testing.T) {
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	saved, err := svc.Create(context.Background(), &domain.Buyer{Name: "Ann"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), saved.ID), ports.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), 1234), ports.ErrNotFound)
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	svc := NewService(newFakeBuyerRepo())

	_, err := svc.Create(context.Background(), &domain.Buyer{Name: "   "})
	require.ErrorIs(t, err, domain.ErrEmptyName)
}
