// Package ledger implements the custodial asset-transfer primitive: balance
// movements between accounts of the internal balance table. Every movement
// runs on the transaction handle supplied by the caller, so a failing step
// rolls back the whole enclosing request.
package ledger

import (
	"context"
	"errors"

	"omnigate/internal/models"

	"gorm.io/gorm"
)

// Service moves asset balances between ledger accounts.
type Service struct {
	account string
}

// NewService creates a ledger bound to its own account, the implicit sender
// of Transfer calls. The gateway binds it to the platform fee collector.
func NewService(account string) *Service {
	return &Service{account: account}
}

// TransferFrom pulls amount of asset from owner into recipient.
func (s *Service) TransferFrom(ctx context.Context, tx *gorm.DB, asset, owner, recipient string, amount uint64) error {
	return move(ctx, tx, asset, owner, recipient, amount)
}

// Transfer moves amount of asset from the ledger's own account to recipient.
func (s *Service) Transfer(ctx context.Context, tx *gorm.DB, asset, recipient string, amount uint64) error {
	return move(ctx, tx, asset, s.account, recipient, amount)
}

func move(ctx context.Context, tx *gorm.DB, asset, from, to string, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}

	res := tx.WithContext(ctx).Model(&models.AssetBalance{}).
		Where("asset = ? AND account = ? AND balance >= ?", asset, from, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}

	return credit(ctx, tx, asset, to, amount)
}

func credit(ctx context.Context, tx *gorm.DB, asset, account string, amount uint64) error {
	res := tx.WithContext(ctx).Model(&models.AssetBalance{}).
		Where("asset = ? AND account = ?", asset, account).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	err := tx.WithContext(ctx).Create(&models.AssetBalance{
		Asset:   asset,
		Account: account,
		Balance: amount,
	}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert race; retry as an update.
		return tx.WithContext(ctx).Model(&models.AssetBalance{}).
			Where("asset = ? AND account = ?", asset, account).
			Update("balance", gorm.Expr("balance + ?", amount)).Error
	}
	return err
}

// Balance reads the current balance of (asset, account). Missing rows read
// as zero.
func Balance(ctx context.Context, db *gorm.DB, asset, account string) (uint64, error) {
	var row models.AssetBalance
	err := db.WithContext(ctx).
		Where("asset = ? AND account = ?", asset, account).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Balance, nil
}
