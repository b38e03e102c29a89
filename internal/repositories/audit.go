package repositories

import (
	"context"

	"omnigate/internal/models"

	"gorm.io/gorm"
)

// FeeAuditRepository writes and reads the fee audit trail. Records are
// written on the transaction handle of the fee movements they describe, so
// a rolled-back transfer leaves no audit row behind.
type FeeAuditRepository interface {
	Record(ctx context.Context, tx *gorm.DB, record *models.FeeAudit) error
	List(ctx context.Context, limit, offset int) ([]models.FeeAudit, int64, error)
}

type feeAuditRepository struct {
	db *gorm.DB
}

func NewFeeAuditRepository(db *gorm.DB) FeeAuditRepository {
	return &feeAuditRepository{db: db}
}

func (r *feeAuditRepository) Record(ctx context.Context, tx *gorm.DB, record *models.FeeAudit) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *feeAuditRepository) List(ctx context.Context, limit, offset int) ([]models.FeeAudit, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FeeAudit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.FeeAudit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
