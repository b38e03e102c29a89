package rates

import (
	"context"

	"omnigate/internal/models"
)

// Cache is the subset of the cache service the resolver needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	GenerateKey(entityType, keyType string, value interface{}) string
}

// Service resolves effective platform fee rates and carries the owner-gated
// administrative surface of the rate table.
type Service interface {
	// ResolveRate returns the effective platform rate for an asset:
	// an explicit override (zero included) wins over the default rate.
	ResolveRate(ctx context.Context, asset string) (BasisPoints, error)

	// DefaultRate returns the current process-wide default rate.
	DefaultRate(ctx context.Context) (BasisPoints, error)

	// Administrative operations; all require the fee admin capability.
	SetDefaultRate(ctx context.Context, claims *models.UserClaims, rate BasisPoints) error
	SetAssetRate(ctx context.Context, claims *models.UserClaims, asset string, rate BasisPoints) error
	RemoveAssetRate(ctx context.Context, claims *models.UserClaims, asset string) error
	ListAssetRates(ctx context.Context, claims *models.UserClaims) ([]models.AssetFeeRate, error)
}
