package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("seller name is required")

// Seller represents a merchant account listing items for sale.
type Seller struct {
	ID    int64
	Name  string
	Email string
}

// NewSeller validates the invariants and builds a new Seller.
func NewSeller(name, email string) (*Seller, error) {
	seller := &Seller{}
	if err := seller.Rename(name); err != nil {
		return nil, err
	}
	seller.Email = strings.TrimSpace(email)
	return seller, nil
}

// Rename mutates the seller name ensuring the invariant.
func (s *Seller) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	s.Name = name
	return nil
}

// Validate re-applies core invariants for persistence.
func (s *Seller) Validate() error {
	return s.Rename(s.Name)
}
