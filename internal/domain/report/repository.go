package report

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the Item Store: durable, queryable set of Reports.
// No update or delete — reports are immutable once filed.
type Repository interface {
	Create(ctx context.Context, r *Report) error
	List(ctx context.Context) ([]Report, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Migrate idempotently ensures the items table exists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Report{})
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) List(ctx context.Context) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).Order("id DESC").Find(&reports).Error
	return reports, err
}
