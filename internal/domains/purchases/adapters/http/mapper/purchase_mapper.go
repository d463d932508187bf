package mapper

import (
	"time"

	purchasesdomain "github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
)

// PurchaseRequest is the inbound purchase payload. Buyer and item are plain
// ids, resolved server-side.
type PurchaseRequest struct {
	BuyerID  int64 `json:"buyerId"`
	ItemID   int64 `json:"itemId"`
	Quantity int32 `json:"quantity"`
}

// Purchase is the wire-facing receipt, flattening buyer and item names next
// to their ids.
type Purchase struct {
	PurchaseID   int64     `json:"purchaseId"`
	BuyerID      int64     `json:"buyerId"`
	BuyerName    string    `json:"buyerName"`
	ItemID       int64     `json:"itemId"`
	ItemName     string    `json:"itemName"`
	Quantity     int32     `json:"quantity"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// FromDomain converts a receipt to the transport representation.
func FromDomain(receipt *purchasesdomain.Receipt) Purchase {
	if receipt == nil {
		return Purchase{}
	}
	return Purchase{
		PurchaseID:   receipt.PurchaseID,
		BuyerID:      receipt.BuyerID,
		BuyerName:    receipt.BuyerName,
		ItemID:       receipt.ItemID,
		ItemName:     receipt.ItemName,
		Quantity:     receipt.Quantity,
		PurchaseDate: receipt.PurchaseDate,
	}
}
