package bridge

import (
	"context"
	"testing"

	"omnigate/internal/services/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateFee(t *testing.T) {
	outbox := NewOutbox(10_000, 25)

	est, err := outbox.EstimateFee(context.Background(), gateway.EstimateParams{
		AdapterParams: make([]byte, 40),
	})
	require.NoError(t, err)
	assert.Equal(t, gateway.FeeEstimate{NativeFee: 11_000}, est)

	est, err = outbox.EstimateFee(context.Background(), gateway.EstimateParams{})
	require.NoError(t, err)
	assert.Equal(t, gateway.FeeEstimate{NativeFee: 10_000}, est)
}

func TestEstimateFeeAltPayment(t *testing.T) {
	outbox := NewOutbox(10_000, 25)

	est, err := outbox.EstimateFee(context.Background(), gateway.EstimateParams{
		UseAltPayment: true,
		AdapterParams: make([]byte, 4),
	})
	require.NoError(t, err)

	// The whole messaging fee shifts to the alternative token.
	assert.Equal(t, gateway.FeeEstimate{AltFee: 10_100}, est)
	assert.Zero(t, est.NativeFee)
}

func TestEstimateFeeFixedValidatesDestination(t *testing.T) {
	outbox := NewOutbox(1, 1)

	_, err := outbox.EstimateFeeFixed(context.Background(), gateway.EstimateParams{
		DstAddress: []byte{0x01, 0x02},
	})
	assert.ErrorIs(t, err, gateway.ErrInvalidDestination)

	est, err := outbox.EstimateFeeFixed(context.Background(), gateway.EstimateParams{
		DstAddress: make([]byte, 32),
	})
	require.NoError(t, err)
	assert.Equal(t, gateway.FeeEstimate{NativeFee: 1}, est)
}
