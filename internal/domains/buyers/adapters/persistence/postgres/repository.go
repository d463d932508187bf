package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/buyers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists buyers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type buyerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (buyerRecord) TableName() string { return "buyers" }

// Save inserts a buyer when no identity is set, otherwise upserts by id.
func (r *Repository) Save(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	record := toRecord(buyer)
	tx := r.db.WithContext(ctx)
	if record.ID != 0 {
		tx = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"email":      record.Email,
				"updated_at": gorm.Expr("NOW()"),
			}),
		})
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a buyer by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record buyerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a buyer by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&buyerRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns one page of buyers ordered by identifier plus the total count.
func (r *Repository) List(ctx context.Context, page pagination.Request) ([]*domain.Buyer, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&buyerRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []buyerRecord
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	buyers := make([]*domain.Buyer, 0, len(records))
	for i := range records {
		buyers = append(buyers, records[i].toDomain())
	}
	return buyers, total, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres buyer repository not configured")
	}
	return nil
}

func toRecord(buyer *domain.Buyer) buyerRecord {
	return buyerRecord{
		ID:    buyer.ID,
		Name:  buyer.Name,
		Email: buyer.Email,
	}
}

func (r buyerRecord) toDomain() *domain.Buyer {
	return &domain.Buyer{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}
