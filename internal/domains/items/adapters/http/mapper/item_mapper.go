package mapper

import (
	itemsdomain "github.com/anycomp/marketplace-api/internal/domains/items/domain"
)

// Item is the wire-facing item representation. It exposes the owning
// seller's id rather than the full seller object, decoupling the storage
// shape from the transport shape.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	SellerID int64   `json:"sellerId"`
}

// ItemRequest is the inbound payload for item creation and update. Quantity
// only matters on creation; updates never touch stock.
type ItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// FromDomain converts a domain item to the transport representation.
func FromDomain(item *itemsdomain.Item) Item {
	if item == nil {
		return Item{}
	}
	return Item{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		SellerID: item.SellerID,
	}
}
