package ports

import "context"

// BuyerRef is the slice of a buyer the purchase flow needs.
type BuyerRef struct {
	ID   int64
	Name string
}

// ItemRef is the slice of an item the purchase flow needs.
type ItemRef struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int32
}

// BuyerDirectory resolves buyers without exposing the buyers bounded
// context. Implementations return domain.ErrBuyerNotFound for unknown ids.
type BuyerDirectory interface {
	GetByID(ctx context.Context, id int64) (*BuyerRef, error)
}

// Catalog resolves items without exposing the items bounded context.
// Implementations return domain.ErrItemNotFound for unknown ids.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (*ItemRef, error)
}
