package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	errutils "schoolsite/internal/utils/http_errors"
)

// Get reports liveness. The database must answer a ping for the
// service to count as healthy.
func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, db Pinger) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	if err := db.PingContext(ctx); err != nil {
		log.Error("database ping failed", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	response := map[string]any{
		"data": map[string]string{
			"status": "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
