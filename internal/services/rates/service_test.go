package rates

import (
	"context"
	"testing"

	"omnigate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRateRepo struct {
	mock.Mock
}

func (m *mockRateRepo) GetDefaultRate(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *mockRateRepo) SetDefaultRate(ctx context.Context, rateBps uint32) error {
	args := m.Called(ctx, rateBps)
	return args.Error(0)
}

func (m *mockRateRepo) GetOverride(ctx context.Context, asset string) (*models.AssetFeeRate, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetFeeRate), args.Error(1)
}

func (m *mockRateRepo) UpsertOverride(ctx context.Context, asset string, rateBps uint32) error {
	args := m.Called(ctx, asset, rateBps)
	return args.Error(0)
}

func (m *mockRateRepo) DeleteOverride(ctx context.Context, asset string) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *mockRateRepo) ListOverrides(ctx context.Context) ([]models.AssetFeeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssetFeeRate), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockCache) GenerateKey(entityType, keyType string, value interface{}) string {
	m.Called(entityType, keyType, value)
	return entityType + ":" + keyType
}

func ownerClaims() *models.UserClaims {
	return &models.UserClaims{
		UserID:      1,
		Role:        "owner",
		Permissions: models.GetDefaultPermissions("owner"),
	}
}

func integratorClaims() *models.UserClaims {
	return &models.UserClaims{
		UserID:      2,
		Role:        "integrator",
		Permissions: models.GetDefaultPermissions("integrator"),
	}
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name        string
		override    *models.AssetFeeRate
		defaultRate uint32
		want        BasisPoints
	}{
		{
			name:        "no override falls back to default",
			override:    nil,
			defaultRate: 10,
			want:        10,
		},
		{
			name:        "explicit zero override beats non-zero default",
			override:    &models.AssetFeeRate{Asset: "WETH", RateBps: 0},
			defaultRate: 10,
			want:        0,
		},
		{
			name:        "non-zero override wins",
			override:    &models.AssetFeeRate{Asset: "WETH", RateBps: 25},
			defaultRate: 10,
			want:        25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRateRepo)
			repo.On("GetOverride", mock.Anything, "WETH").Return(tt.override, nil)
			if tt.override == nil {
				repo.On("GetDefaultRate", mock.Anything).Return(tt.defaultRate, nil)
			}

			svc := NewService(repo, nil)
			got, err := svc.ResolveRate(context.Background(), "WETH")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			repo.AssertExpectations(t)
		})
	}
}

func TestSetDefaultRate(t *testing.T) {
	tests := []struct {
		name    string
		claims  *models.UserClaims
		rate    BasisPoints
		wantErr error
	}{
		{"valid rate", ownerClaims(), 9999, nil},
		{"zero rate", ownerClaims(), 0, nil},
		{"rate at denominator", ownerClaims(), 10_000, ErrInvalidRate},
		{"rate above denominator", ownerClaims(), 12_345, ErrInvalidRate},
		{"non-owner", integratorClaims(), 10, ErrUnauthorized},
		{"nil claims", nil, 10, ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRateRepo)
			if tt.wantErr == nil {
				repo.On("SetDefaultRate", mock.Anything, uint32(tt.rate)).Return(nil)
			}

			svc := NewService(repo, nil)
			err := svc.SetDefaultRate(context.Background(), tt.claims, tt.rate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "SetDefaultRate", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				repo.AssertExpectations(t)
			}
		})
	}
}

func TestSetAssetRate(t *testing.T) {
	t.Run("explicit zero is a valid override", func(t *testing.T) {
		repo := new(mockRateRepo)
		repo.On("UpsertOverride", mock.Anything, "WETH", uint32(0)).Return(nil)

		svc := NewService(repo, nil)
		require.NoError(t, svc.SetAssetRate(context.Background(), ownerClaims(), "WETH", 0))
		repo.AssertExpectations(t)
	})

	t.Run("rate at denominator rejected", func(t *testing.T) {
		repo := new(mockRateRepo)

		svc := NewService(repo, nil)
		err := svc.SetAssetRate(context.Background(), ownerClaims(), "WETH", Denominator)
		assert.ErrorIs(t, err, ErrInvalidRate)
		repo.AssertNotCalled(t, "UpsertOverride", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		repo := new(mockRateRepo)

		svc := NewService(repo, nil)
		err := svc.SetAssetRate(context.Background(), integratorClaims(), "WETH", 10)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestRemoveAssetRate(t *testing.T) {
	repo := new(mockRateRepo)
	repo.On("DeleteOverride", mock.Anything, "WETH").Return(nil)

	svc := NewService(repo, nil)
	require.NoError(t, svc.RemoveAssetRate(context.Background(), ownerClaims(), "WETH"))
	repo.AssertExpectations(t)

	err := svc.RemoveAssetRate(context.Background(), integratorClaims(), "WETH")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSetAssetRateInvalidatesCache(t *testing.T) {
	repo := new(mockRateRepo)
	repo.On("UpsertOverride", mock.Anything, "WETH", uint32(50)).Return(nil)

	cache := new(mockCache)
	cache.On("GenerateKey", "rate", "asset", "WETH").Return()
	cache.On("Delete", mock.Anything, []string{"rate:asset"}).Return(nil)

	svc := NewService(repo, cache)
	require.NoError(t, svc.SetAssetRate(context.Background(), ownerClaims(), "WETH", 50))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestListAssetRatesRequiresOwner(t *testing.T) {
	repo := new(mockRateRepo)
	repo.On("ListOverrides", mock.Anything).Return([]models.AssetFeeRate{
		{Asset: "USDC", RateBps: 10},
	}, nil)

	svc := NewService(repo, nil)

	_, err := svc.ListAssetRates(context.Background(), integratorClaims())
	assert.ErrorIs(t, err, ErrUnauthorized)

	overrides, err := svc.ListAssetRates(context.Background(), ownerClaims())
	require.NoError(t, err)
	assert.Len(t, overrides, 1)
}
