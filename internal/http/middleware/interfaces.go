package middleware

import (
	"context"
	"schoolsite/internal/models"
)

const pkg = "middleware/"

type SessionStorer interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, identity string, bucket string) (*models.RateDecision, error)
}
