package gateway

import (
	"omnigate/internal/services/feeengine"
	"omnigate/internal/services/rates"
)

// FeeRequest is the caller-supplied fee leg of a transfer or quote: a
// referrer rate, the ledger account that receives the referrer fee, and an
// opaque partner identifier for auditing.
type FeeRequest struct {
	CallerRate   rates.BasisPoints `json:"caller_rate_bps"`
	FeeRecipient string            `json:"fee_recipient"`
	PartnerID    string            `json:"partner_id"`
}

// SendRequest is one cross-chain transfer request. Amount is the gross
// amount; everything after MinNetAmount is passed through to the bridge
// messenger unchanged.
type SendRequest struct {
	Asset          string     `json:"asset"`
	DstChainID     uint32     `json:"dst_chain_id"`
	DstAddress     []byte     `json:"-"`
	Amount         uint64     `json:"amount"`
	MinNetAmount   uint64     `json:"min_net_amount"`
	RefundAddress  string     `json:"refund_address"`
	PaymentAddress string     `json:"payment_address"`
	AdapterParams  []byte     `json:"-"`
	NativeValue    uint64     `json:"native_value"`
	Fee            FeeRequest `json:"fee"`
}

// QuoteRequest asks for the fee breakdown of a hypothetical transfer plus
// the messenger's messaging fee for the resulting net amount.
type QuoteRequest struct {
	Asset         string     `json:"asset"`
	DstChainID    uint32     `json:"dst_chain_id"`
	DstAddress    []byte     `json:"-"`
	Amount        uint64     `json:"amount"`
	UseAltPayment bool       `json:"use_alt_payment"`
	AdapterParams []byte     `json:"-"`
	Fee           FeeRequest `json:"fee"`
}

// Receipt is the result of an accepted transfer.
type Receipt struct {
	MessageID string          `json:"message_id"`
	Asset     string          `json:"asset"`
	Quote     feeengine.Quote `json:"quote"`
	PartnerID string          `json:"partner_id,omitempty"`
}

// QuoteResult is the fee breakdown plus the messenger's estimate, returned
// verbatim.
type QuoteResult struct {
	Quote    feeengine.Quote `json:"quote"`
	Estimate FeeEstimate     `json:"estimate"`
}
