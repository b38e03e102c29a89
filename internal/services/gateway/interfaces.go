package gateway

import (
	"context"
	"database/sql"

	"omnigate/internal/models"
	"omnigate/internal/services/feeengine"
	"omnigate/internal/services/rates"

	"gorm.io/gorm"
)

// DB is the transactional boundary the gateway runs fee collection and
// message emission inside. *gorm.DB satisfies it.
type DB interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// Engine computes fee splits. *feeengine.Engine satisfies it.
type Engine interface {
	ComputeFees(ctx context.Context, asset string, gross uint64, callerRate rates.BasisPoints) (feeengine.Quote, error)
}

// Ledger is the asset-transfer primitive: owner-authorized pull semantics
// plus pushes out of the ledger's own (collector) account. Every movement
// runs on the supplied transaction handle.
type Ledger interface {
	TransferFrom(ctx context.Context, tx *gorm.DB, asset, owner, recipient string, amount uint64) error
	Transfer(ctx context.Context, tx *gorm.DB, asset, recipient string, amount uint64) error
}

// AuditRecorder persists fee audit rows on the supplied transaction handle.
type AuditRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, record *models.FeeAudit) error
}

// SendParams are the bridge parameters the gateway passes through unchanged,
// except for Amount, which carries the fee-adjusted net amount.
type SendParams struct {
	Asset          string
	DstChainID     uint32
	DstAddress     []byte
	Amount         uint64
	Sender         string
	RefundAddress  string
	PaymentAddress string
	AdapterParams  []byte
	NativeValue    uint64
}

// EstimateParams parameterize the messenger's own fee estimation.
type EstimateParams struct {
	DstChainID    uint32
	DstAddress    []byte
	Amount        uint64
	UseAltPayment bool
	AdapterParams []byte
}

// FeeEstimate is the messenger's messaging fee quote.
type FeeEstimate struct {
	NativeFee uint64 `json:"native_fee"`
	AltFee    uint64 `json:"alt_fee"`
}

// Messenger is the cross-chain transfer primitive in both destination
// flavors: free-form addresses and fixed 32-byte destinations.
type Messenger interface {
	Send(ctx context.Context, tx *gorm.DB, p SendParams) (*models.OutboundMessage, error)
	SendFixed(ctx context.Context, tx *gorm.DB, p SendParams) (*models.OutboundMessage, error)
	EstimateFee(ctx context.Context, p EstimateParams) (FeeEstimate, error)
	EstimateFeeFixed(ctx context.Context, p EstimateParams) (FeeEstimate, error)
}
