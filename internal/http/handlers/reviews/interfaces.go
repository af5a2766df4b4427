package reviews

import (
	"context"
	"schoolsite/internal/models"
)

const pkg = "reviewsHandler/"

type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error)
}

type ReviewProvider interface {
	Reviews(ctx context.Context, limit int) ([]*models.Review, error)
}

type ReviewDeleter interface {
	DeleteReview(ctx context.Context, id string) error
}
