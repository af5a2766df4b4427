package teachers

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

const maxUploadBytes = 10 << 20

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, tc TeacherCreator) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	var meta dto.TeacherMeta

	if err := json.Unmarshal([]byte(r.FormValue("meta")), &meta); err != nil {
		log.Error("failed to unmarshal meta", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid meta json")
		return
	}

	isActive := true
	if meta.IsActive != nil {
		isActive = *meta.IsActive
	}

	teacher := models.Teacher{
		Name:         meta.Name,
		Subject:      meta.Subject,
		Bio:          meta.Bio,
		Email:        meta.Email,
		Phone:        meta.Phone,
		IsActive:     isActive,
		DisplayOrder: meta.DisplayOrder,
	}

	var photo io.Reader

	var photoName string

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()

		photo = file
		photoName = header.Filename
	}

	created, err := tc.CreateTeacher(ctx, &teacher, photoName, photo)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid teacher payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to create teacher", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": teacherResponse(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
