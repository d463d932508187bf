package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBuyerNotFound       = errors.New("buyer not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
)

// InsufficientStockError reports a purchase exceeding the item's remaining
// stock, carrying the available amount for the caller-facing message.
type InsufficientStockError struct {
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient item quantity. Available: %d", e.Available)
}

// Purchase records a completed buy. It references buyer and item by id only;
// resolving either is an on-demand repository lookup, never a live object
// graph. Purchases are immutable once recorded.
type Purchase struct {
	ID           int64
	BuyerID      int64
	ItemID       int64
	Quantity     int32
	PurchaseDate time.Time
}

// NewPurchase validates the invariants and builds a new Purchase.
func NewPurchase(buyerID, itemID int64, quantity int32, at time.Time) (*Purchase, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	return &Purchase{
		BuyerID:      buyerID,
		ItemID:       itemID,
		Quantity:     quantity,
		PurchaseDate: at,
	}, nil
}

// Receipt is the outward projection of a purchase, combining the stored
// record with the buyer and item names current at read time.
type Receipt struct {
	PurchaseID   int64
	BuyerID      int64
	BuyerName    string
	ItemID       int64
	ItemName     string
	Quantity     int32
	PurchaseDate time.Time
}
