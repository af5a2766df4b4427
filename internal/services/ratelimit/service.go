package ratelimitservice

import (
	"context"
	"fmt"
	"log/slog"
	"schoolsite/internal/models"
)

const pkg = "rateLimitService/"

type RateLimitService struct {
	log     *slog.Logger
	counter Counter
	buckets map[string]models.RateBucket
}

func New(log *slog.Logger, counter Counter, buckets map[string]models.RateBucket) *RateLimitService {
	return &RateLimitService{
		log:     log,
		counter: counter,
		buckets: buckets,
	}
}

// Allow counts a hit for the identity in the bucket's fixed window and
// reports whether the request may proceed.
func (s *RateLimitService) Allow(ctx context.Context, identity string, bucket string) (*models.RateDecision, error) {
	op := pkg + "Allow"

	log := s.log.With(slog.String("op", op), slog.String("bucket", bucket))

	limits, ok := s.buckets[bucket]
	if !ok {
		log.Error("unknown rate bucket")
		return nil, models.ErrInternal
	}

	key := fmt.Sprintf("ratelimit:%s:%s", bucket, identity)

	count, ttl, err := s.counter.Incr(ctx, key, limits.Window)
	if err != nil {
		log.Error("failed to increment counter", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if count > limits.Limit {
		log.Warn("rate limit exceeded",
			slog.String("identity", identity),
			slog.Int64("count", count),
		)

		return &models.RateDecision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ttl,
		}, nil
	}

	return &models.RateDecision{
		Allowed:    true,
		Remaining:  limits.Limit - count,
		RetryAfter: ttl,
	}, nil
}
