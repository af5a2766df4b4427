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

// Update applies a partial JSON update over the stored teacher.
func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, teacherID string, tp TeacherProvider, tu TeacherUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		errutils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var patch dto.TeacherUpdateRequest

	if err := json.Unmarshal(body, &patch); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	current, err := tp.TeacherByID(ctx, teacherID, requester)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", teacherID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrTeacherNotFound.Error())
			return
		}
		log.Error("failed to get teacher by id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	applyPatch(current, &patch)

	updated, err := tu.UpdateTeacher(ctx, current)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid teacher payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", teacherID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrTeacherNotFound.Error())
			return
		}
		log.Error("failed to update teacher", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": teacherResponse(updated),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

// UpdatePhoto replaces the stored photo with the uploaded one.
func UpdatePhoto(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, teacherID string, tu TeacherUpdater) {
	op := pkg + "UpdatePhoto"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		log.Warn("photo part missing", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "photo part is required")
		return
	}
	defer file.Close()

	updated, err := tu.ReplacePhoto(ctx, teacherID, header.Filename, file)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", teacherID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrTeacherNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("unusable photo", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to replace photo", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": teacherResponse(updated),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func applyPatch(teacher *models.Teacher, patch *dto.TeacherUpdateRequest) {
	if patch.Name != nil {
		teacher.Name = *patch.Name
	}
	if patch.Subject != nil {
		teacher.Subject = *patch.Subject
	}
	if patch.Bio != nil {
		teacher.Bio = *patch.Bio
	}
	if patch.Email != nil {
		teacher.Email = *patch.Email
	}
	if patch.Phone != nil {
		teacher.Phone = *patch.Phone
	}
	if patch.PhotoPath != nil {
		teacher.PhotoPath = *patch.PhotoPath
	}
	if patch.IsActive != nil {
		teacher.IsActive = *patch.IsActive
	}
	if patch.DisplayOrder != nil {
		teacher.DisplayOrder = *patch.DisplayOrder
	}
}
