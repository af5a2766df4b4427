package teacherservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"schoolsite/internal/models"
	"strings"

	uuid "github.com/satori/go.uuid"
)

const pkg = "teacherService/"

const photoDir = "teachers"

type TeacherService struct {
	log         *slog.Logger
	teacherRepo TeacherRepository
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	teacherRepo TeacherRepository,
	fileStorage FileStorage,
) *TeacherService {
	return &TeacherService{
		log:         log,
		teacherRepo: teacherRepo,
		fileStorage: fileStorage,
	}
}

func (ts *TeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher, photoFilename string, photo io.Reader) (*models.Teacher, error) {
	op := pkg + "CreateTeacher"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to create teacher", slog.String("name", teacher.Name))

	if err := validateTeacher(teacher); err != nil {
		log.Warn("invalid teacher payload", slog.String("name", teacher.Name))
		return nil, err
	}

	teacher.ID = uuid.NewV4().String()

	if photoFilename != "" {
		path, err := ts.fileStorage.SaveFile(ctx, photoDir, photoFilename, photo)
		if err != nil {
			if errors.Is(err, models.ErrInvalidParams) {
				log.Warn("unusable photo filename", slog.String("filename", photoFilename))
				return nil, models.ErrInvalidParams
			}
			log.Error("failed to save photo", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		teacher.PhotoPath = path
	}

	err := ts.teacherRepo.CreateTeacher(ctx, teacher)
	if err != nil {
		log.Error("failed to save teacher", slog.String("error", err.Error()))
		if teacher.PhotoPath != "" {
			_ = ts.fileStorage.DeleteFile(ctx, teacher.PhotoPath)
		}

		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("teacher created successfully", slog.String("teacher_id", teacher.ID))

	return teacher, nil
}

func (ts *TeacherService) Teachers(ctx context.Context, requester *models.User, limit int) ([]*models.Teacher, error) {
	op := pkg + "Teachers"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to list teachers", slog.Int("limit", limit))

	includeInactive := requester != nil

	teachers, err := ts.teacherRepo.Teachers(ctx, includeInactive, limit)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			return []*models.Teacher{}, nil
		}
		log.Error("failed to list teachers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("teachers listed successfully", slog.Int("count", len(teachers)))

	return teachers, nil
}

func (ts *TeacherService) TeacherByID(ctx context.Context, id string, requester *models.User) (*models.Teacher, error) {
	op := pkg + "TeacherByID"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to get teacher by id", slog.String("teacher_id", id))

	teacher, err := ts.teacherMetaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// retired profiles do not exist for anonymous callers
	if !teacher.IsActive && requester == nil {
		log.Warn("anonymous request for inactive teacher", slog.String("teacher_id", id))
		return nil, models.ErrTeacherNotFound
	}

	return teacher, nil
}

func (ts *TeacherService) UpdateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	op := pkg + "UpdateTeacher"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to update teacher", slog.String("teacher_id", teacher.ID))

	if err := validateTeacher(teacher); err != nil {
		log.Warn("invalid teacher payload", slog.String("teacher_id", teacher.ID))
		return nil, err
	}

	if teacher.PhotoPath != "" {
		exists, err := ts.fileStorage.FileExists(ctx, teacher.PhotoPath)
		if err != nil {
			log.Error("failed to check photo path", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		if !exists {
			log.Warn("photo path points to a missing file", slog.String("path", teacher.PhotoPath))
			return nil, models.ErrInvalidParams
		}
	}

	err := ts.teacherRepo.UpdateTeacher(ctx, teacher)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", teacher.ID))
			return nil, models.ErrTeacherNotFound
		}
		log.Error("failed to update teacher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("teacher updated successfully", slog.String("teacher_id", teacher.ID))

	return teacher, nil
}

func (ts *TeacherService) ReplacePhoto(ctx context.Context, id string, filename string, photo io.Reader) (*models.Teacher, error) {
	op := pkg + "ReplacePhoto"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to replace teacher photo", slog.String("teacher_id", id))

	teacher, err := ts.teacherMetaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if filename == "" {
		log.Warn("missing photo filename")
		return nil, models.ErrInvalidParams
	}

	path, err := ts.fileStorage.SaveFile(ctx, photoDir, filename, photo)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("unusable photo filename", slog.String("filename", filename))
			return nil, models.ErrInvalidParams
		}
		log.Error("failed to save photo", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	oldPath := teacher.PhotoPath
	teacher.PhotoPath = path

	err = ts.teacherRepo.UpdateTeacher(ctx, teacher)
	if err != nil {
		_ = ts.fileStorage.DeleteFile(ctx, path)

		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", id))
			return nil, models.ErrTeacherNotFound
		}
		log.Error("failed to update teacher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if oldPath != "" && oldPath != path {
		if err := ts.fileStorage.DeleteFile(ctx, oldPath); err != nil && !errors.Is(err, models.ErrFileNotFound) {
			log.Error("failed to delete previous photo", slog.String("path", oldPath), slog.String("error", err.Error()))
		}
	}

	log.Debug("teacher photo replaced successfully", slog.String("teacher_id", id), slog.String("path", path))

	return teacher, nil
}

func (ts *TeacherService) DeleteTeacher(ctx context.Context, id string) error {
	op := pkg + "DeleteTeacher"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to delete teacher", slog.String("teacher_id", id))

	teacher, err := ts.teacherMetaByID(ctx, id)
	if err != nil {
		log.Warn("failed to get teacher by id", slog.String("error", err.Error()))
		return err
	}

	if err := ts.teacherRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete teacher", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if teacher.PhotoPath != "" {
		if err := ts.fileStorage.DeleteFile(ctx, teacher.PhotoPath); err != nil && !errors.Is(err, models.ErrFileNotFound) {
			log.Error("failed to delete teacher photo", slog.String("path", teacher.PhotoPath), slog.String("error", err.Error()))
		}
	}

	log.Debug("teacher deleted successfully", slog.String("teacher_id", id))

	return nil
}

func (ts *TeacherService) teacherMetaByID(ctx context.Context, id string) (*models.Teacher, error) {
	op := pkg + "teacherMetaByID"

	log := ts.log.With(slog.String("op", op))

	if _, err := uuid.FromString(id); err != nil {
		log.Warn("malformed teacher id", slog.String("teacher_id", id))
		return nil, fmt.Errorf("%s: %w", op, models.ErrTeacherNotFound)
	}

	teacher, err := ts.teacherRepo.TeacherByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrTeacherNotFound) {
			log.Warn("teacher not found", slog.String("teacher_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrTeacherNotFound)
		}
		log.Error("failed to get teacher by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return teacher, nil
}

func validateTeacher(teacher *models.Teacher) error {
	teacher.Name = strings.TrimSpace(teacher.Name)
	teacher.Subject = strings.TrimSpace(teacher.Subject)

	if teacher.Name == "" || teacher.Subject == "" {
		return models.ErrInvalidParams
	}

	if teacher.Email != "" && !strings.Contains(teacher.Email, "@") {
		return models.ErrInvalidParams
	}

	return nil
}
