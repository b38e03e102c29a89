package repositories

import (
	"context"
	"errors"

	"omnigate/internal/models"

	"gorm.io/gorm"
)

// FeeRateRepository persists the rate table: one default rate row plus
// per-asset overrides. A missing override row means "no override"; a stored
// zero is an explicit zero-rate override.
type FeeRateRepository interface {
	GetDefaultRate(ctx context.Context) (uint32, error)
	SetDefaultRate(ctx context.Context, rateBps uint32) error
	GetOverride(ctx context.Context, asset string) (*models.AssetFeeRate, error)
	UpsertOverride(ctx context.Context, asset string, rateBps uint32) error
	DeleteOverride(ctx context.Context, asset string) error
	ListOverrides(ctx context.Context) ([]models.AssetFeeRate, error)
}

type feeRateRepository struct {
	db *gorm.DB
}

func NewFeeRateRepository(db *gorm.DB) FeeRateRepository {
	return &feeRateRepository{db: db}
}

func (r *feeRateRepository) GetDefaultRate(ctx context.Context) (uint32, error) {
	var settings models.FeeSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return settings.DefaultRateBps, nil
}

func (r *feeRateRepository) SetDefaultRate(ctx context.Context, rateBps uint32) error {
	var settings models.FeeSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings.DefaultRateBps = rateBps
		return r.db.WithContext(ctx).Create(&settings).Error
	}
	if err != nil {
		return err
	}
	settings.DefaultRateBps = rateBps
	return r.db.WithContext(ctx).Save(&settings).Error
}

// GetOverride returns (nil, nil) when the asset has no override row.
func (r *feeRateRepository) GetOverride(ctx context.Context, asset string) (*models.AssetFeeRate, error) {
	var override models.AssetFeeRate
	err := r.db.WithContext(ctx).Where("asset = ?", asset).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *feeRateRepository) UpsertOverride(ctx context.Context, asset string, rateBps uint32) error {
	var override models.AssetFeeRate
	err := r.db.WithContext(ctx).Where("asset = ?", asset).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		override = models.AssetFeeRate{Asset: asset, RateBps: rateBps}
		return r.db.WithContext(ctx).Create(&override).Error
	}
	if err != nil {
		return err
	}
	override.RateBps = rateBps
	return r.db.WithContext(ctx).Save(&override).Error
}

func (r *feeRateRepository) DeleteOverride(ctx context.Context, asset string) error {
	return r.db.WithContext(ctx).Where("asset = ?", asset).
		Delete(&models.AssetFeeRate{}).Error
}

func (r *feeRateRepository) ListOverrides(ctx context.Context) ([]models.AssetFeeRate, error) {
	var overrides []models.AssetFeeRate
	if err := r.db.WithContext(ctx).Order("asset").Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}
