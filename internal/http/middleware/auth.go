package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	utils "schoolsite/internal/utils/http_errors"
)

func Auth(log *slog.Logger, storer SessionStorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			log := log.With(slog.String("op", op))

			token := r.URL.Query().Get("token")

			requester, err := storer.UserByToken(r.Context(), token)
			if err != nil {
				log.Error("failed get user by token", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusForbidden, "token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identify resolves the session token when one is present and stores the
// user in the request context. Requests without a valid token proceed
// anonymously.
func Identify(log *slog.Logger, storer SessionStorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Identify"

			log := log.With(slog.String("op", op))

			token := r.URL.Query().Get("token")
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			requester, err := storer.UserByToken(r.Context(), token)
			if err != nil {
				log.Warn("ignoring invalid session token", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
