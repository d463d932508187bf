package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the marketplace bounded contexts. Intended to
// replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&buyerRecord{},
		&sellerRecord{},
		&itemRecord{},
		&purchaseRecord{},
	)
}

// Buyer schema mirrors the buyers Postgres adapter.
type buyerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (buyerRecord) TableName() string { return "buyers" }

// Seller schema mirrors the sellers Postgres adapter.
type sellerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sellerRecord) TableName() string { return "sellers" }

// Item schema mirrors the items Postgres adapter. The seller reference is a
// plain indexed column; lookups go through the repositories instead of
// database-enforced object graphs.
type itemRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	Quantity  int32     `gorm:"column:quantity;check:quantity >= 0"`
	SellerID  int64     `gorm:"column:seller_id;index:idx_items_seller"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (itemRecord) TableName() string { return "items" }

// Purchase schema mirrors the purchases Postgres adapter. Buyer and item
// references stay as indexed id columns for the receipt joins.
type purchaseRecord struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"`
	BuyerID      int64     `gorm:"column:buyer_id;index:idx_purchases_buyer"`
	ItemID       int64     `gorm:"column:item_id;index:idx_purchases_item"`
	Quantity     int32     `gorm:"column:quantity"`
	PurchaseDate time.Time `gorm:"column:purchase_date;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (purchaseRecord) TableName() string { return "purchases" }
