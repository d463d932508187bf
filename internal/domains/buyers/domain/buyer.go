package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("buyer name is required")

// Buyer represents a purchasing account in the marketplace.
type Buyer struct {
	ID    int64
	Name  string
	Email string
}

// NewBuyer validates the invariants and builds a new Buyer.
func NewBuyer(name, email string) (*Buyer, error) {
	buyer := &Buyer{}
	if err := buyer.Rename(name); err != nil {
		return nil, err
	}
	buyer.UpdateEmail(email)
	return buyer, nil
}

// Rename mutates the buyer name ensuring the invariant.
func (b *Buyer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	b.Name = name
	return nil
}

// UpdateEmail stores the contact address. Format checks are not enforced
// at this layer.
func (b *Buyer) UpdateEmail(email string) {
	b.Email = strings.TrimSpace(email)
}

// Validate re-applies core invariants for persistence.
func (b *Buyer) Validate() error {
	return b.Rename(b.Name)
}
