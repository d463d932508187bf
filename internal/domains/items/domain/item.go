package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("item name is required")
	ErrNegativePrice    = errors.New("item price must not be negative")
	ErrNegativeQuantity = errors.New("item quantity must not be negative")
)

// Item represents a listing owned by a seller. Quantity is the remaining
// purchasable stock and never drops below zero.
type Item struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int32
	SellerID int64
}

// NewItem validates the invariants and builds a new Item owned by the seller.
func NewItem(name string, price float64, quantity int32, sellerID int64) (*Item, error) {
	item := &Item{SellerID: sellerID}
	if err := item.Rename(name); err != nil {
		return nil, err
	}
	if err := item.Reprice(price); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	item.Quantity = quantity
	return item, nil
}

// Rename mutates the item name ensuring the invariant.
func (i *Item) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	i.Name = name
	return nil
}

// Reprice sets a new unit price.
func (i *Item) Reprice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	i.Price = price
	return nil
}

// Validate re-applies core invariants for persistence.
func (i *Item) Validate() error {
	if err := i.Rename(i.Name); err != nil {
		return err
	}
	if err := i.Reprice(i.Price); err != nil {
		return err
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
