package cachecounterrepo

import (
	"context"
	"errors"
	cacherepo "schoolsite/internal/repositories/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

type mockResponse[T any] struct {
	mock.Mock
	val T
	err error
}

func (m *mockCache) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Del(ctx context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	args := m.Called(ctx, keys)
	return args.Get(0).(cacherepo.CacheResponse[int64])
}

func (m *mockCache) Incr(ctx context.Context, key string) cacherepo.CacheResponse[int64] {
	args := m.Called(ctx, key)
	return args.Get(0).(cacherepo.CacheResponse[int64])
}

func (m *mockCache) Expire(ctx context.Context, key string, expiration time.Duration) cacherepo.CacheResponse[bool] {
	args := m.Called(ctx, key, expiration)
	return args.Get(0).(cacherepo.CacheResponse[bool])
}

func (m *mockCache) TTL(ctx context.Context, key string) cacherepo.CacheResponse[time.Duration] {
	args := m.Called(ctx, key)
	return args.Get(0).(cacherepo.CacheResponse[time.Duration])
}

func (r *mockResponse[T]) Err() error {
	return r.err
}

func (r *mockResponse[T]) Result() (T, error) {
	return r.val, r.err
}

func TestIncr_FirstHitOpensWindow(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockCache.On("Incr", mock.Anything, "ratelimit:anon:1.2.3.4").
		Return(&mockResponse[int64]{val: 1})
	mockCache.On("Expire", mock.Anything, "ratelimit:anon:1.2.3.4", time.Hour).
		Return(&mockResponse[bool]{val: true})

	repo := New(mockCache)

	count, ttl, err := repo.Incr(context.Background(), "ratelimit:anon:1.2.3.4", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Hour, ttl)
	mockCache.AssertExpectations(t)
}

func TestIncr_LaterHitKeepsWindow(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockCache.On("Incr", mock.Anything, "ratelimit:reviews:1.2.3.4").
		Return(&mockResponse[int64]{val: 7})
	mockCache.On("TTL", mock.Anything, "ratelimit:reviews:1.2.3.4").
		Return(&mockResponse[time.Duration]{val: 42 * time.Minute})

	repo := New(mockCache)

	count, ttl, err := repo.Incr(context.Background(), "ratelimit:reviews:1.2.3.4", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, 42*time.Minute, ttl)
	mockCache.AssertExpectations(t)
}

func TestIncr_HealsMissingExpiry(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockCache.On("Incr", mock.Anything, "ratelimit:anon:1.2.3.4").
		Return(&mockResponse[int64]{val: 3})
	mockCache.On("TTL", mock.Anything, "ratelimit:anon:1.2.3.4").
		Return(&mockResponse[time.Duration]{val: 0})
	mockCache.On("Expire", mock.Anything, "ratelimit:anon:1.2.3.4", time.Hour).
		Return(&mockResponse[bool]{val: true})

	repo := New(mockCache)

	count, ttl, err := repo.Incr(context.Background(), "ratelimit:anon:1.2.3.4", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, time.Hour, ttl)
	mockCache.AssertExpectations(t)
}

func TestIncr_CacheError(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockCache.On("Incr", mock.Anything, "ratelimit:anon:1.2.3.4").
		Return(&mockResponse[int64]{err: errors.New("cache down")})

	repo := New(mockCache)

	_, _, err := repo.Incr(context.Background(), "ratelimit:anon:1.2.3.4", time.Hour)
	assert.Error(t, err)
}
