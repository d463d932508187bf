package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
	"github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists purchases in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type purchaseRecord struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"`
	BuyerID      int64     `gorm:"column:buyer_id;index:idx_purchases_buyer"`
	ItemID       int64     `gorm:"column:item_id;index:idx_purchases_item"`
	Quantity     int32     `gorm:"column:quantity"`
	PurchaseDate time.Time `gorm:"column:purchase_date;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (purchaseRecord) TableName() string { return "purchases" }

// Record decrements the item's stock and inserts the purchase inside one
// transaction. The decrement is conditional on sufficient stock, so two
// concurrent purchases of the last units serialize on the row lock and the
// loser is rejected instead of driving quantity negative.
func (r *Repository) Record(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, errors.New("purchase is nil")
	}
	record := purchaseRecord{
		BuyerID:      purchase.BuyerID,
		ItemID:       purchase.ItemID,
		Quantity:     purchase.Quantity,
		PurchaseDate: purchase.PurchaseDate,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			"UPDATE items SET quantity = quantity - ?, updated_at = NOW() WHERE id = ? AND quantity >= ?",
			record.Quantity, record.ItemID, record.Quantity,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var available int32
			probe := tx.Raw("SELECT quantity FROM items WHERE id = ?", record.ItemID).Scan(&available)
			if probe.Error != nil {
				return probe.Error
			}
			if probe.RowsAffected == 0 {
				return domain.ErrItemNotFound
			}
			return &domain.InsufficientStockError{Available: available}
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &domain.Purchase{
		ID:           record.ID,
		BuyerID:      record.BuyerID,
		ItemID:       record.ItemID,
		Quantity:     record.Quantity,
		PurchaseDate: record.PurchaseDate,
	}, nil
}

type receiptRow struct {
	ID           int64
	BuyerID      int64
	BuyerName    string
	ItemID       int64
	ItemName     string
	Quantity     int32
	PurchaseDate time.Time
}

// List returns one page of receipts ordered by purchase id. Buyer and item
// names are joined at read time; a deleted counterpart yields a blank name.
func (r *Repository) List(ctx context.Context, page pagination.Request) ([]*domain.Receipt, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&purchaseRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []receiptRow
	err := r.db.WithContext(ctx).
		Table("purchases").
		Select("purchases.id, purchases.buyer_id, COALESCE(buyers.name, '') AS buyer_name, purchases.item_id, COALESCE(items.name, '') AS item_name, purchases.quantity, purchases.purchase_date").
		Joins("LEFT JOIN buyers ON buyers.id = purchases.buyer_id").
		Joins("LEFT JOIN items ON items.id = purchases.item_id").
		Order("purchases.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	receipts := make([]*domain.Receipt, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, &domain.Receipt{
			PurchaseID:   row.ID,
			BuyerID:      row.BuyerID,
			BuyerName:    row.BuyerName,
			ItemID:       row.ItemID,
			ItemName:     row.ItemName,
			Quantity:     row.Quantity,
			PurchaseDate: row.PurchaseDate,
		})
	}
	return receipts, total, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres purchase repository not configured")
	}
	return nil
}
