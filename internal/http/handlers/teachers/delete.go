package teachers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	utils "schoolsite/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, teacherID string, td TeacherDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	err := td.DeleteTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", teacherID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrTeacherNotFound.Error())
			return
		}
		log.Error("failed to delete teacher", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]any{
			"deleted": teacherID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
