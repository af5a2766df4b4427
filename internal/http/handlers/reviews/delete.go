package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, reviewID string, rd ReviewDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	if err := rd.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			log.Warn("review not found", slog.String("review_id", reviewID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrReviewNotFound.Error())
			return
		}
		log.Error("failed to delete review", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]string{
			"deleted": reviewID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
