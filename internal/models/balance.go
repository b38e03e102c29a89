package models

import (
	"fmt"
	"time"
)

// CollectorAccount is the ledger account that accumulates platform fees
// until the owner withdraws them.
const CollectorAccount = "collector:platform"

// LedgerAccount returns the ledger account identifier for a user ID.
func LedgerAccount(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// AssetBalance is one custodial balance: (asset, account) -> amount in the
// asset's base units.
type AssetBalance struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Asset     string `gorm:"uniqueIndex:idx_asset_account;not null" json:"asset"`
	Account   string `gorm:"uniqueIndex:idx_asset_account;not null" json:"account"`
	Balance   uint64 `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
