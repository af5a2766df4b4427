package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	clientip "schoolsite/internal/utils/client_ip"
	errutils "schoolsite/internal/utils/http_errors"
)

// Add accepts a visitor review. The caller address and user agent are
// recorded for moderation but never exposed back.
func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rs ReviewSubmitter) {
	op := pkg + "Add"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var payload dto.ReviewRequest

	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	rating := 0
	if payload.Rating != nil {
		rating = *payload.Rating
	}

	review := &models.Review{
		Author:    payload.Author,
		Text:      payload.Text,
		Rating:    rating,
		IPAddress: clientip.FromRequest(r),
		UserAgent: r.UserAgent(),
	}

	created, err := rs.SubmitReview(ctx, review)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid review payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to submit review", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": reviewResponse(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
