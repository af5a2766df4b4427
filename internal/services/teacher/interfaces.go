package teacherservice

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

type TeacherRepository interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) error
	TeacherByID(ctx context.Context, id string) (*models.Teacher, error)
	Teachers(ctx context.Context, includeInactive bool, limit int) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

type FileStorage interface {
	SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error)
	DeleteFile(ctx context.Context, path string) error
	FileExists(ctx context.Context, path string) (bool, error)
}
