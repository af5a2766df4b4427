package models

import "time"

const (
	RateBucketAnon    = "anon"
	RateBucketReviews = "reviews"
	RateBucketOrders  = "orders"
)

type RateBucket struct {
	Limit  int64
	Window time.Duration
}

type RateDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}
