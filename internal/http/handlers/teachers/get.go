package teachers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	parseutil "schoolsite/internal/utils/parseQuery"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, tp TeacherProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	limit := parseutil.ParseLimit(r.URL.Query().Get("limit"))

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	rawTeachers, err := tp.Teachers(ctx, requester, limit)
	if err != nil {
		log.Error("failed to list teachers", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoTeachers := make([]dto.TeacherResponse, 0, len(rawTeachers))

	for _, teacher := range rawTeachers {
		dtoTeachers = append(dtoTeachers, teacherResponse(teacher))
	}

	response := map[string]any{
		"data": map[string]any{
			"teachers": dtoTeachers,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, teacherID string, tp TeacherProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	teacher, err := tp.TeacherByID(ctx, teacherID, requester)
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

	response := map[string]any{
		"data": teacherResponse(teacher),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func teacherResponse(teacher *models.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:           teacher.ID,
		Name:         teacher.Name,
		Subject:      teacher.Subject,
		Bio:          teacher.Bio,
		Email:        teacher.Email,
		Phone:        teacher.Phone,
		PhotoPath:    teacher.PhotoPath,
		IsActive:     teacher.IsActive,
		DisplayOrder: teacher.DisplayOrder,
	}
}
