package models

import "time"

// Destination address formats accepted by the bridge messenger.
const (
	DstFormatAddress = "address"
	DstFormatFixed32 = "fixed32"
)

// Outbound message statuses.
const (
	MessageStatusQueued = "queued"
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"
)

// OutboundMessage is one queued cross-chain transfer. Writing the row is the
// gateway's "emit async message": a relay process drains the queue and
// settles on the destination chain, which is outside this service.
type OutboundMessage struct {
	ID             uint   `gorm:"primarykey" json:"-"`
	MessageID      string `gorm:"uniqueIndex;not null" json:"message_id"`
	Asset          string `gorm:"index;not null" json:"asset"`
	DstChainID     uint32 `gorm:"not null" json:"dst_chain_id"`
	DstAddress     []byte `gorm:"not null" json:"dst_address"`
	DstFormat      string `gorm:"not null;default:'address'" json:"dst_format"`
	Amount         uint64 `gorm:"not null" json:"amount"`
	Sender         string `gorm:"index;not null" json:"sender"`
	RefundAddress  string `json:"refund_address"`
	PaymentAddress string `json:"payment_address"`
	AdapterParams  []byte `json:"adapter_params"`
	NativeValue    uint64 `gorm:"not null;default:0" json:"native_value"`
	Status         string `gorm:"not null;default:'queued'" json:"status"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
