package reviewservice

import (
	"context"
	"schoolsite/internal/models"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	ReviewByID(ctx context.Context, id string) (*models.Review, error)
	Reviews(ctx context.Context, limit int) ([]*models.Review, error)
	Delete(ctx context.Context, id string) error
}
