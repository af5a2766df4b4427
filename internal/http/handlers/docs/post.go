package docs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

const maxUploadBytes = 10 << 20

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, du DocumentUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	var meta dto.UploadMeta

	if err := json.Unmarshal([]byte(r.FormValue("meta")), &meta); err != nil {
		log.Error("failed to unmarshal meta", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid meta json")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("file part missing", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	if meta.Audience == "" {
		meta.Audience = models.AudienceAll
	}

	if meta.Category == "" {
		meta.Category = models.CategoryGeneral
	}

	isPublic := true
	if meta.IsPublic != nil {
		isPublic = *meta.IsPublic
	}

	doc := models.Document{
		Title:       meta.Title,
		Description: meta.Description,
		Audience:    meta.Audience,
		Category:    meta.Category,
		IsPublic:    isPublic,
	}

	created, err := du.UploadDocument(ctx, &doc, header.Filename, file)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid document meta", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to upload document", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": docResponse(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
