package teachers

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

const pkg = "teachersHandler/"

type TeacherProvider interface {
	Teachers(ctx context.Context, requester *models.User, limit int) ([]*models.Teacher, error)
	TeacherByID(ctx context.Context, id string, requester *models.User) (*models.Teacher, error)
}

type TeacherCreator interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher, photoFilename string, photo io.Reader) (*models.Teacher, error)
}

type TeacherUpdater interface {
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	ReplacePhoto(ctx context.Context, id string, filename string, photo io.Reader) (*models.Teacher, error)
}

type TeacherDeleter interface {
	DeleteTeacher(ctx context.Context, id string) error
}
