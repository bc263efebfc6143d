package ratelimiter

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return m.Called(ctx, key, exp).Error(0)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

// fixedNow sits 30 seconds into its one-minute window.
var fixedNow = time.Unix(1_700_000_010, 0).UTC()

func TestApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	windowID := fixedNow.Unix() / 60
	expectedKey := "limiter:BOOKING_ATTEMPT:patient@example.com:" + itoa(windowID)

	newInput := func(quota int) *contracts.ApplyResourceLimiterInput {
		return &contracts.ApplyResourceLimiterInput{
			ResourceName:     " Patient@Example.com ",
			LimiterGroupName: "booking_attempt",
			Window:           time.Minute,
			MaxQuota:         quota,
			NowUTC:           fixedNow,
		}
	}

	t.Run("within quota is allowed", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(3, nil)
		limiter := NewResourceLimiter(repo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, newInput(3))

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		repo.AssertExpectations(t)
	})

	t.Run("over quota reports retry after", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(4, nil)
		limiter := NewResourceLimiter(repo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, newInput(3))

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		nextWindow := (windowID + 1) * 60
		assert.Equal(t, int(nextWindow-fixedNow.Unix())+1, out.RetryAfterSecs)
	})

	t.Run("zero quota disables the limiter", func(t *testing.T) {
		repo := new(MockRedisRepository)
		limiter := NewResourceLimiter(repo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, newInput(0))

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(0, errors.New("redis down"))
		limiter := NewResourceLimiter(repo, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, newInput(3))

		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})

	t.Run("blank resource is refused", func(t *testing.T) {
		repo := new(MockRedisRepository)
		limiter := NewResourceLimiter(repo, zap.NewNop())

		in := newInput(3)
		in.ResourceName = "  "
		out, err := limiter.ApplyResourceLimiter(ctx, in)

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 60, out.RetryAfterSecs)
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
