package feeengine

import (
	"context"
	"math"
	"math/big"
	"testing"

	"omnigate/internal/services/rates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	rate rates.BasisPoints
	err  error
}

func (s *stubResolver) ResolveRate(ctx context.Context, asset string) (rates.BasisPoints, error) {
	return s.rate, s.err
}

func TestSplitInvariant(t *testing.T) {
	tests := []struct {
		name         string
		gross        uint64
		platformRate rates.BasisPoints
		callerRate   rates.BasisPoints
	}{
		{"typical", 1_000_000, 10, 5},
		{"small amount", 7, 1, 1},
		{"one unit", 1, 9998, 1},
		{"large amount", math.MaxUint64, 9999, 0},
		{"max combined", 123_456_789, 5000, 4999},
		{"zero gross", 0, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Split(tt.gross, tt.platformRate, tt.callerRate)
			require.NoError(t, err)

			assert.Equal(t, tt.gross, quote.Net+quote.PlatformFee+quote.CallerFee)
			assert.Equal(t, expectedFee(tt.gross, tt.platformRate), quote.PlatformFee)
			assert.Equal(t, expectedFee(tt.gross, tt.callerRate), quote.CallerFee)
		})
	}
}

func TestSplitTruncatesDown(t *testing.T) {
	// 9999 * 1bp / 10000 = 0.9999, which truncates to zero.
	quote, err := Split(9999, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), quote.PlatformFee)
	assert.Equal(t, uint64(9999), quote.Net)
}

func TestSplitIdentityPath(t *testing.T) {
	quote, err := Split(1_000_000, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Quote{Net: 1_000_000}, quote)
}

func TestSplitCombinedRateBoundary(t *testing.T) {
	_, err := Split(1_000_000, 5000, 5000)
	assert.ErrorIs(t, err, ErrFeeRateExceeded)

	quote, err := Split(1_000_000, 5000, 4999)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), quote.Net+quote.PlatformFee+quote.CallerFee)
	assert.Greater(t, quote.Net, uint64(0))
}

func TestSplitMonotonicInPlatformRate(t *testing.T) {
	const gross = 987_654_321
	var prev uint64
	for rate := rates.BasisPoints(0); rate < 100; rate++ {
		quote, err := Split(gross, rate, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.PlatformFee, prev)
		prev = quote.PlatformFee
	}
}

func TestComputeFeesConcrete(t *testing.T) {
	// Default rate 10 bp (0.10%), caller rate 5 bp (0.05%).
	engine := New(&stubResolver{rate: 10})

	quote, err := engine.ComputeFees(context.Background(), "USDC", 1_000_000, 5)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), quote.PlatformFee)
	assert.Equal(t, uint64(500), quote.CallerFee)
	assert.Equal(t, uint64(998_500), quote.Net)
}

func TestComputeFeesExplicitZeroOverride(t *testing.T) {
	// An explicit zero override resolves to 0 regardless of the default.
	engine := New(&stubResolver{rate: 0})

	quote, err := engine.ComputeFees(context.Background(), "WETH", 1_000_000, 0)
	require.NoError(t, err)

	assert.Equal(t, uint64(1_000_000), quote.Net)
	assert.Equal(t, uint64(0), quote.PlatformFee)
	assert.Equal(t, uint64(0), quote.CallerFee)
}

func TestComputeFeesResolverError(t *testing.T) {
	engine := New(&stubResolver{err: assert.AnError})

	_, err := engine.ComputeFees(context.Background(), "USDC", 1000, 0)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestComputeFeesIdempotent(t *testing.T) {
	engine := New(&stubResolver{rate: 37})

	first, err := engine.ComputeFees(context.Background(), "USDC", 555_555_555, 42)
	require.NoError(t, err)
	second, err := engine.ComputeFees(context.Background(), "USDC", 555_555_555, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFeeForNoOverflow(t *testing.T) {
	// The product MaxUint64 * 9999 exceeds 64 bits; the 128-bit
	// intermediate keeps the quotient exact.
	got := FeeFor(math.MaxUint64, 9999)
	assert.Equal(t, expectedFee(math.MaxUint64, 9999), got)
	assert.Less(t, got, uint64(math.MaxUint64))
}

// expectedFee re-derives floor(amount * rate / 10000) with big integers.
func expectedFee(amount uint64, rate rates.BasisPoints) uint64 {
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(amount),
		new(big.Int).SetUint64(uint64(rate)),
	)
	return product.Div(product, big.NewInt(10_000)).Uint64()
}
