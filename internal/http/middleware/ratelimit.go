package middleware

import (
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	clientip "schoolsite/internal/utils/client_ip"
	utils "schoolsite/internal/utils/http_errors"
	"strconv"
)

// RateLimit counts requests against the named bucket, keyed by client IP.
// Authenticated callers bypass the budget.
func RateLimit(log *slog.Logger, limiter RateLimiter, bucket string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "RateLimit"

			log := log.With(slog.String("op", op))

			if _, ok := r.Context().Value(models.UserContextKey).(*models.User); ok {
				next.ServeHTTP(w, r)
				return
			}

			identity := clientip.FromRequest(r)

			decision, err := limiter.Allow(r.Context(), identity, bucket)
			if err != nil {
				log.Error("rate limiter unavailable", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
				return
			}

			if !decision.Allowed {
				log.Warn("rate limit exceeded",
					slog.String("identity", identity),
					slog.String("bucket", bucket),
				)

				retryAfter := int(decision.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				utils.WriteJSONError(w, http.StatusTooManyRequests, models.ErrRateLimited.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
