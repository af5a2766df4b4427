package cachecounterrepo

import (
	"context"
	cacherepo "schoolsite/internal/repositories/cache"
	"time"
)

type repository struct {
	cache cacherepo.Cache
}

func New(cache cacherepo.Cache) *repository {
	return &repository{cache: cache}
}

func (r *repository) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.cache.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		if err := r.cache.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}

		return count, window, nil
	}

	ttl, err := r.cache.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	// a key that lost its expiry starts a fresh window
	if ttl <= 0 {
		if err := r.cache.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}

		ttl = window
	}

	return count, ttl, nil
}
