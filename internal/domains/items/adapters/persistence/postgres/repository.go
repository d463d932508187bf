package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anycomp/marketplace-api/internal/domains/items/domain"
	"github.com/anycomp/marketplace-api/internal/domains/items/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// pgCheckViolation is the PostgreSQL error code for a CHECK constraint
// failure, raised when a write would drive quantity below zero.
const pgCheckViolation = "23514"

// Repository persists items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type itemRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	Quantity  int32     `gorm:"column:quantity"`
	SellerID  int64     `gorm:"column:seller_id;index:idx_items_seller"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (itemRecord) TableName() string { return "items" }

// Save inserts an item when no identity is set, otherwise upserts by id.
// Stock is written as-is; the purchase flow bypasses Save and decrements
// through a conditional update instead.
func (r *Repository) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("item is nil")
	}
	record := toRecord(item)
	tx := r.db.WithContext(ctx)
	if record.ID != 0 {
		tx = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"price":      record.Price,
				"quantity":   record.Quantity,
				"seller_id":  record.SellerID,
				"updated_at": gorm.Expr("NOW()"),
			}),
		})
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, mapPGError(err)
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an item by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record itemRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes an item by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&itemRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns one page of items ordered by identifier plus the total count.
func (r *Repository) List(ctx context.Context, page pagination.Request) ([]*domain.Item, int64, error) {
	return r.list(ctx, page, nil)
}

// ListBySeller returns one page of the seller's items plus the total count.
func (r *Repository) ListBySeller(ctx context.Context, sellerID int64, page pagination.Request) ([]*domain.Item, int64, error) {
	return r.list(ctx, page, map[string]any{"seller_id": sellerID})
}

func (r *Repository) list(ctx context.Context, page pagination.Request, conditions map[string]any) ([]*domain.Item, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(&itemRecord{})
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []itemRecord
	if err := query.
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*domain.Item, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, total, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres item repository not configured")
	}
	return nil
}

func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
		return domain.ErrNegativeQuantity
	}
	return err
}

func toRecord(item *domain.Item) itemRecord {
	return itemRecord{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
		SellerID: item.SellerID,
	}
}

func (r itemRecord) toDomain() *domain.Item {
	return &domain.Item{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
		SellerID: r.SellerID,
	}
}
