package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	"github.com/anycomp/marketplace-api/internal/domains/sellers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists sellers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type sellerRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sellerRecord) TableName() string { return "sellers" }

// Save inserts a seller when no identity is set, otherwise upserts by id.
func (r *Repository) Save(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.New("seller is nil")
	}
	record := sellerRecord{ID: seller.ID, Name: seller.Name, Email: seller.Email}
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

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record sellerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&sellerRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, page pagination.Request) ([]*domain.Seller, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&sellerRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []sellerRecord
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	sellers := make([]*domain.Seller, 0, len(records))
	for i := range records {
		sellers = append(sellers, records[i].toDomain())
	}
	return sellers, total, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres seller repository not configured")
	}
	return nil
}

func (r sellerRecord) toDomain() *domain.Seller {
	return &domain.Seller{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}
