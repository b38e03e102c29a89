package models

import "time"

// FeeSettings is the single-row table holding the process-wide default
// platform fee rate. Mutable only through the owner capability.
type FeeSettings struct {
	ID             uint   `gorm:"primarykey" json:"-"`
	DefaultRateBps uint32 `gorm:"not null;default:0" json:"default_rate_bps"`
	UpdatedAt      time.Time
}

// AssetFeeRate is a per-asset override of the default platform fee rate.
// The presence of a row is what makes an override explicit: a stored zero
// is a real "charge nothing for this asset" override, distinguishable from
// the absence of a row, which falls back to the default rate.
type AssetFeeRate struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Asset     string `gorm:"uniqueIndex;not null" json:"asset"`
	RateBps   uint32 `gorm:"not null" json:"rate_bps"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
