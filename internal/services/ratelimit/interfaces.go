package ratelimitservice

import (
	"context"
	"time"
)

type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}
