package reviews

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	parseutil "schoolsite/internal/utils/parseQuery"
)

// Get lists published reviews, newest first. Submitter network
// details stay out of the response.
func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rp ReviewProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	limit := parseutil.ParseLimit(r.URL.Query().Get("limit"))

	reviews, err := rp.Reviews(ctx, limit)
	if err != nil {
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, reviewResponse(review))
	}

	response := map[string]any{
		"data": map[string]any{
			"reviews": items,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func reviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		Author:    review.Author,
		Text:      review.Text,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
