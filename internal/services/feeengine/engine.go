// Package feeengine computes the platform/caller fee split for a transfer
// amount. All arithmetic is integer and truncating; the fee for any uint64
// amount is derived through an exact 128-bit intermediate product, so the
// result is bit-exact and reproducible by any party re-deriving it.
package feeengine

import (
	"context"
	"math/bits"

	"omnigate/internal/services/rates"
)

// Resolver yields the effective platform rate for an asset.
type Resolver interface {
	ResolveRate(ctx context.Context, asset string) (rates.BasisPoints, error)
}

// Quote is one fee computation result. Net + PlatformFee + CallerFee always
// equals the gross amount it was computed from.
type Quote struct {
	Net         uint64 `json:"net"`
	PlatformFee uint64 `json:"platform_fee"`
	CallerFee   uint64 `json:"caller_fee"`
}

// Engine computes fee splits against the current rate configuration. It is
// read-only with respect to configuration state.
type Engine struct {
	resolver Resolver
}

func New(resolver Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// ComputeFees resolves the platform rate for the asset, validates the
// combined rate and returns the (net, platformFee, callerFee) split of the
// gross amount.
func (e *Engine) ComputeFees(ctx context.Context, asset string, gross uint64, callerRate rates.BasisPoints) (Quote, error) {
	platformRate, err := e.resolver.ResolveRate(ctx, asset)
	if err != nil {
		return Quote{}, err
	}
	return Split(gross, platformRate, callerRate)
}

// Split computes the fee split for fixed rates. Fails with ErrFeeRateExceeded
// when platformRate + callerRate >= 10000, which keeps the net amount
// strictly positive for any positive gross amount.
func Split(gross uint64, platformRate, callerRate rates.BasisPoints) (Quote, error) {
	if uint64(platformRate)+uint64(callerRate) >= uint64(rates.Denominator) {
		return Quote{}, ErrFeeRateExceeded
	}

	var platformFee, callerFee uint64
	if platformRate > 0 {
		platformFee = FeeFor(gross, platformRate)
	}
	if callerRate > 0 {
		callerFee = FeeFor(gross, callerRate)
	}

	// Identity path: with both fees zero the gross amount passes through
	// untouched, with no division anywhere near it.
	if platformFee == 0 && callerFee == 0 {
		return Quote{Net: gross}, nil
	}

	return Quote{
		Net:         gross - platformFee - callerFee,
		PlatformFee: platformFee,
		CallerFee:   callerFee,
	}, nil
}

// FeeFor returns floor(amount * rate / 10000). The product is computed in
// full 128 bits, so no amount/rate pair can overflow; with rate < 10000 the
// quotient always fits back into 64 bits.
func FeeFor(amount uint64, rate rates.BasisPoints) uint64 {
	hi, lo := bits.Mul64(amount, uint64(rate))
	fee, _ := bits.Div64(hi, lo, uint64(rates.Denominator))
	return fee
}
