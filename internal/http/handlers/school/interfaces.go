package school

import (
	"context"
	"schoolsite/internal/models"
)

const pkg = "schoolHandler/"

type SchoolInfoProvider interface {
	SchoolInfo(ctx context.Context) (*models.SchoolInfo, error)
}

type SchoolInfoUpdater interface {
	UpdateSchoolInfo(ctx context.Context, info *models.SchoolInfo) (*models.SchoolInfo, error)
}
