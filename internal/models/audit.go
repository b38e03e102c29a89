package models

import "time"

// Fee audit kinds.
const (
	FeeAuditCollected = "collected"
	FeeAuditWithdrawn = "withdrawn"
)

// FeeAudit is the append-only audit trail of fee movements. A "collected"
// row records the per-transfer split attributed to a partner; a "withdrawn"
// row records the owner moving accumulated platform fees out.
type FeeAudit struct {
	ID          uint   `gorm:"primarykey" json:"-"`
	Kind        string `gorm:"index;not null" json:"kind"`
	PartnerID   string `gorm:"index" json:"partner_id,omitempty"`
	Asset       string `gorm:"index;not null" json:"asset"`
	PlatformFee uint64 `gorm:"not null;default:0" json:"platform_fee"`
	CallerFee   uint64 `gorm:"not null;default:0" json:"caller_fee"`
	Recipient   string `json:"recipient,omitempty"`
	Amount      uint64 `gorm:"not null;default:0" json:"amount"`
	CreatedAt   time.Time
}
