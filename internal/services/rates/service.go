// Package rates holds the platform fee rate table: a process-wide default
// rate plus per-asset overrides, resolved in override-first order.
package rates

import (
	"context"
	"log"

	"omnigate/internal/models"
	"omnigate/internal/repositories"
)

const defaultRateKey = "default"

type service struct {
	repo  repositories.FeeRateRepository
	cache Cache
}

// NewService creates a new rate resolver backed by the given repository and
// cache. Pass a nil cache to resolve straight from the database.
func NewService(repo repositories.FeeRateRepository, cache Cache) Service {
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func (s *service) ResolveRate(ctx context.Context, asset string) (BasisPoints, error) {
	override, err := s.getOverride(ctx, asset)
	if err != nil {
		return 0, err
	}
	if override.Explicit {
		return override.Rate, nil
	}
	return s.DefaultRate(ctx)
}

func (s *service) DefaultRate(ctx context.Context) (BasisPoints, error) {
	if s.cache != nil {
		var cached BasisPoints
		found, err := s.cache.Get(ctx, s.cacheKeyDefault(), &cached)
		if err == nil && found {
			return cached, nil
		}
	}

	rate, err := s.repo.GetDefaultRate(ctx)
	if err != nil {
		return 0, err
	}

	s.cacheSet(ctx, s.cacheKeyDefault(), BasisPoints(rate))
	return BasisPoints(rate), nil
}

func (s *service) SetDefaultRate(ctx context.Context, claims *models.UserClaims, rate BasisPoints) error {
	if err := requireFeeAdmin(claims); err != nil {
		return err
	}
	if !rate.Valid() {
		return ErrInvalidRate
	}

	if err := s.repo.SetDefaultRate(ctx, uint32(rate)); err != nil {
		return err
	}
	s.invalidate(ctx, s.cacheKeyDefault())
	return nil
}

func (s *service) SetAssetRate(ctx context.Context, claims *models.UserClaims, asset string, rate BasisPoints) error {
	if err := requireFeeAdmin(claims); err != nil {
		return err
	}
	// rate == 0 is a valid explicit zero override.
	if !rate.Valid() {
		return ErrInvalidRate
	}

	if err := s.repo.UpsertOverride(ctx, asset, uint32(rate)); err != nil {
		return err
	}
	s.invalidate(ctx, s.cacheKeyAsset(asset))
	return nil
}

func (s *service) RemoveAssetRate(ctx context.Context, claims *models.UserClaims, asset string) error {
	if err := requireFeeAdmin(claims); err != nil {
		return err
	}

	if err := s.repo.DeleteOverride(ctx, asset); err != nil {
		return err
	}
	s.invalidate(ctx, s.cacheKeyAsset(asset))
	return nil
}

func (s *service) ListAssetRates(ctx context.Context, claims *models.UserClaims) ([]models.AssetFeeRate, error) {
	if err := requireFeeAdmin(claims); err != nil {
		return nil, err
	}
	return s.repo.ListOverrides(ctx)
}

func (s *service) getOverride(ctx context.Context, asset string) (Override, error) {
	if s.cache != nil {
		var cached Override
		found, err := s.cache.Get(ctx, s.cacheKeyAsset(asset), &cached)
		if err == nil && found {
			return cached, nil
		}
	}

	row, err := s.repo.GetOverride(ctx, asset)
	if err != nil {
		return Override{}, err
	}

	override := Override{}
	if row != nil {
		override = Override{Rate: BasisPoints(row.RateBps), Explicit: true}
	}
	s.cacheSet(ctx, s.cacheKeyAsset(asset), override)
	return override, nil
}

func (s *service) cacheKeyAsset(asset string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.GenerateKey("rate", "asset", asset)
}

func (s *service) cacheKeyDefault() string {
	if s.cache == nil {
		return ""
	}
	return s.cache.GenerateKey("rate", "default", defaultRateKey)
}

func (s *service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Printf("rate cache set failed for %s: %v", key, err)
	}
}

func (s *service) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Printf("rate cache invalidation failed for %s: %v", key, err)
	}
}

// requireFeeAdmin is the single owner-capability check for rate
// administration, kept apart from the rate logic so it can be exercised by
// substituting authorized and unauthorized identities.
func requireFeeAdmin(claims *models.UserClaims) error {
	if claims == nil || !claims.HasPermission(models.PermissionFeeAdmin) {
		return ErrUnauthorized
	}
	return nil
}
