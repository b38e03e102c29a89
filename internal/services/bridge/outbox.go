// Package bridge implements the cross-chain messenger as an outbox: a send
// appends a queued OutboundMessage row inside the caller's transaction, and
// a relay process outside this service drains the queue toward the
// destination chain.
package bridge

import (
	"context"

	"omnigate/internal/models"
	"omnigate/internal/services/gateway"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outbox queues outbound bridge messages and answers messaging-fee
// estimates. The estimate is a flat base fee plus a per-byte charge on the
// adapter parameters, configured from the environment.
type Outbox struct {
	baseFee    uint64
	feePerByte uint64
}

func NewOutbox(baseFee, feePerByte uint64) *Outbox {
	return &Outbox{
		baseFee:    baseFee,
		feePerByte: feePerByte,
	}
}

func (o *Outbox) Send(ctx context.Context, tx *gorm.DB, p gateway.SendParams) (*models.OutboundMessage, error) {
	return o.enqueue(ctx, tx, p, models.DstFormatAddress)
}

func (o *Outbox) SendFixed(ctx context.Context, tx *gorm.DB, p gateway.SendParams) (*models.OutboundMessage, error) {
	if len(p.DstAddress) != 32 {
		return nil, gateway.ErrInvalidDestination
	}
	return o.enqueue(ctx, tx, p, models.DstFormatFixed32)
}

func (o *Outbox) enqueue(ctx context.Context, tx *gorm.DB, p gateway.SendParams, dstFormat string) (*models.OutboundMessage, error) {
	msg := &models.OutboundMessage{
		MessageID:      uuid.NewString(),
		Asset:          p.Asset,
		DstChainID:     p.DstChainID,
		DstAddress:     p.DstAddress,
		DstFormat:      dstFormat,
		Amount:         p.Amount,
		Sender:         p.Sender,
		RefundAddress:  p.RefundAddress,
		PaymentAddress: p.PaymentAddress,
		AdapterParams:  p.AdapterParams,
		NativeValue:    p.NativeValue,
		Status:         models.MessageStatusQueued,
	}
	if err := tx.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (o *Outbox) EstimateFee(ctx context.Context, p gateway.EstimateParams) (gateway.FeeEstimate, error) {
	return o.estimate(p), nil
}

func (o *Outbox) EstimateFeeFixed(ctx context.Context, p gateway.EstimateParams) (gateway.FeeEstimate, error) {
	if len(p.DstAddress) != 32 {
		return gateway.FeeEstimate{}, gateway.ErrInvalidDestination
	}
	return o.estimate(p), nil
}

func (o *Outbox) estimate(p gateway.EstimateParams) gateway.FeeEstimate {
	native := o.baseFee + o.feePerByte*uint64(len(p.AdapterParams))
	if p.UseAltPayment {
		return gateway.FeeEstimate{AltFee: native}
	}
	return gateway.FeeEstimate{NativeFee: native}
}

var _ gateway.Messenger = (*Outbox)(nil)
