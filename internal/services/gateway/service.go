// Package gateway orchestrates fee-charged cross-chain transfers: it splits
// the gross amount into platform fee, caller fee and net, pulls both fees
// from the requester and forwards the net amount through the bridge
// messenger, all inside one database transaction.
package gateway

import (
	"context"
	"fmt"
	"time"

	"omnigate/internal/models"

	"gorm.io/gorm"
)

// Service is the transfer orchestration surface.
type Service interface {
	Send(ctx context.Context, claims *models.UserClaims, req SendRequest) (*Receipt, error)
	SendFixed(ctx context.Context, claims *models.UserClaims, req SendRequest) (*Receipt, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	QuoteFixed(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	WithdrawFees(ctx context.Context, claims *models.UserClaims, asset, to string, amount uint64) error
}

type service struct {
	db        DB
	engine    Engine
	ledger    Ledger
	messenger Messenger
	audits    AuditRecorder
	collector string
	metrics   MetricsCollector

	sendGuard      entryGuard
	sendFixedGuard entryGuard
	withdrawGuard  entryGuard
}

// NewService creates the gateway. Platform fees accumulate in the
// models.CollectorAccount ledger account.
func NewService(db DB, engine Engine, ledger Ledger, messenger Messenger, audits AuditRecorder, metrics MetricsCollector) Service {
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		db:        db,
		engine:    engine,
		ledger:    ledger,
		messenger: messenger,
		audits:    audits,
		collector: models.CollectorAccount,
		metrics:   metrics,
	}
}

func (s *service) Send(ctx context.Context, claims *models.UserClaims, req SendRequest) (*Receipt, error) {
	if !s.sendGuard.acquire() {
		return nil, ErrReentrantCall
	}
	defer s.sendGuard.release()

	return s.send(ctx, claims, req, models.DstFormatAddress)
}

func (s *service) SendFixed(ctx context.Context, claims *models.UserClaims, req SendRequest) (*Receipt, error) {
	if !s.sendFixedGuard.acquire() {
		return nil, ErrReentrantCall
	}
	defer s.sendFixedGuard.release()

	if len(req.DstAddress) != 32 {
		return nil, ErrInvalidDestination
	}
	return s.send(ctx, claims, req, models.DstFormatFixed32)
}

func (s *service) send(ctx context.Context, claims *models.UserClaims, req SendRequest, dstFormat string) (*Receipt, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("send", time.Since(start)) }()

	if claims == nil || !claims.HasPermission(models.PermissionBridgeSend) {
		return nil, ErrUnauthorized
	}

	quote, err := s.engine.ComputeFees(ctx, req.Asset, req.Amount, req.Fee.CallerRate)
	if err != nil {
		s.metrics.RecordSend(req.Asset, "rejected")
		return nil, err
	}
	if quote.Net < req.MinNetAmount {
		s.metrics.RecordSend(req.Asset, "rejected")
		return nil, ErrSlippageExceeded
	}
	if quote.CallerFee > 0 && req.Fee.FeeRecipient == "" {
		s.metrics.RecordSend(req.Asset, "rejected")
		return nil, ErrMissingFeeRecipient
	}

	requester := models.LedgerAccount(claims.UserID)
	var msg *models.OutboundMessage

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Zero fees are skipped entirely: no ledger movement, no
		// misleading transfer row.
		if quote.PlatformFee > 0 {
			if err := s.ledger.TransferFrom(ctx, tx, req.Asset, requester, s.collector, quote.PlatformFee); err != nil {
				return fmt.Errorf("%w: platform fee: %v", ErrTransferFailed, err)
			}
		}
		if quote.CallerFee > 0 {
			if err := s.ledger.TransferFrom(ctx, tx, req.Asset, requester, req.Fee.FeeRecipient, quote.CallerFee); err != nil {
				return fmt.Errorf("%w: caller fee: %v", ErrTransferFailed, err)
			}
		}

		params := SendParams{
			Asset:          req.Asset,
			DstChainID:     req.DstChainID,
			DstAddress:     req.DstAddress,
			Amount:         quote.Net,
			Sender:         requester,
			RefundAddress:  req.RefundAddress,
			PaymentAddress: req.PaymentAddress,
			AdapterParams:  req.AdapterParams,
			NativeValue:    req.NativeValue,
		}
		var sendErr error
		if dstFormat == models.DstFormatFixed32 {
			msg, sendErr = s.messenger.SendFixed(ctx, tx, params)
		} else {
			msg, sendErr = s.messenger.Send(ctx, tx, params)
		}
		if sendErr != nil {
			return fmt.Errorf("%w: bridge send: %v", ErrTransferFailed, sendErr)
		}

		return s.audits.Record(ctx, tx, &models.FeeAudit{
			Kind:        models.FeeAuditCollected,
			PartnerID:   req.Fee.PartnerID,
			Asset:       req.Asset,
			PlatformFee: quote.PlatformFee,
			CallerFee:   quote.CallerFee,
		})
	})
	if err != nil {
		s.metrics.RecordSend(req.Asset, "failed")
		return nil, err
	}

	s.metrics.RecordSend(req.Asset, "ok")
	s.metrics.RecordFeeCollected(req.Asset, quote.PlatformFee, quote.CallerFee)

	return &Receipt{
		MessageID: msg.MessageID,
		Asset:     req.Asset,
		Quote:     quote,
		PartnerID: req.Fee.PartnerID,
	}, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	return s.quote(ctx, req, models.DstFormatAddress)
}

func (s *service) QuoteFixed(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if len(req.DstAddress) != 32 {
		return nil, ErrInvalidDestination
	}
	return s.quote(ctx, req, models.DstFormatFixed32)
}

// quote is pure: it computes the fee split and delegates to the messenger's
// estimator with the net amount substituted for the gross amount. Nothing is
// transferred and no state changes.
func (s *service) quote(ctx context.Context, req QuoteRequest, dstFormat string) (*QuoteResult, error) {
	quote, err := s.engine.ComputeFees(ctx, req.Asset, req.Amount, req.Fee.CallerRate)
	if err != nil {
		return nil, err
	}

	params := EstimateParams{
		DstChainID:    req.DstChainID,
		DstAddress:    req.DstAddress,
		Amount:        quote.Net,
		UseAltPayment: req.UseAltPayment,
		AdapterParams: req.AdapterParams,
	}
	var est FeeEstimate
	if dstFormat == models.DstFormatFixed32 {
		est, err = s.messenger.EstimateFeeFixed(ctx, params)
	} else {
		est, err = s.messenger.EstimateFee(ctx, params)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.RecordQuote(req.Asset)
	return &QuoteResult{Quote: quote, Estimate: est}, nil
}

// WithdrawFees moves accumulated platform fees out of the collector account.
// Owner capability only.
func (s *service) WithdrawFees(ctx context.Context, claims *models.UserClaims, asset, to string, amount uint64) error {
	if !s.withdrawGuard.acquire() {
		return ErrReentrantCall
	}
	defer s.withdrawGuard.release()

	if claims == nil || !claims.HasPermission(models.PermissionFeeAdmin) {
		return ErrUnauthorized
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ledger.Transfer(ctx, tx, asset, to, amount); err != nil {
			return fmt.Errorf("%w: withdraw: %v", ErrTransferFailed, err)
		}
		return s.audits.Record(ctx, tx, &models.FeeAudit{
			Kind:      models.FeeAuditWithdrawn,
			Asset:     asset,
			Recipient: to,
			Amount:    amount,
		})
	})
	if err != nil {
		return err
	}

	s.metrics.RecordWithdrawal(asset, amount)
	return nil
}
