package schoolservice

import (
	"context"
	"schoolsite/internal/models"
)

type SchoolRepository interface {
	SchoolInfo(ctx context.Context) (*models.SchoolInfo, error)
	CreateSchoolInfo(ctx context.Context, info *models.SchoolInfo) error
	UpdateSchoolInfo(ctx context.Context, info *models.SchoolInfo) error
}
