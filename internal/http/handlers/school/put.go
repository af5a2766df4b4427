package school

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

// Update merges the supplied fields into the stored contact card.
func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, sp SchoolInfoProvider, su SchoolInfoUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var patch dto.SchoolInfoUpdateRequest

	if err := json.Unmarshal(body, &patch); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	current, err := sp.SchoolInfo(ctx)
	if err != nil {
		log.Error("failed to get school info", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	applyPatch(current, &patch)

	updated, err := su.UpdateSchoolInfo(ctx, current)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid school info payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to update school info", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": schoolInfoResponse(updated),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func applyPatch(info *models.SchoolInfo, patch *dto.SchoolInfoUpdateRequest) {
	if patch.Address != nil {
		info.Address = *patch.Address
	}
	if patch.Email != nil {
		info.Email = *patch.Email
	}
	if patch.Phone != nil {
		info.Phone = *patch.Phone
	}
	if patch.About != nil {
		info.About = *patch.About
	}
	if patch.MapIframe != nil {
		info.MapIframe = *patch.MapIframe
	}
}
