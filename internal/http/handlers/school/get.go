package school

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, sp SchoolInfoProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	info, err := sp.SchoolInfo(ctx)
	if err != nil {
		log.Error("failed to get school info", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": schoolInfoResponse(info),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func schoolInfoResponse(info *models.SchoolInfo) dto.SchoolInfoResponse {
	return dto.SchoolInfoResponse{
		Address:   info.Address,
		Email:     info.Email,
		Phone:     info.Phone,
		About:     info.About,
		MapIframe: info.MapIframe,
	}
}
