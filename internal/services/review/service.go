package reviewservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"schoolsite/internal/models"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "reviewService/"

type ReviewService struct {
	log        *slog.Logger
	reviewRepo ReviewRepository
}

func New(log *slog.Logger, reviewRepo ReviewRepository) *ReviewService {
	return &ReviewService{
		log:        log,
		reviewRepo: reviewRepo,
	}
}

func (rs *ReviewService) SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	op := pkg + "SubmitReview"

	log := rs.log.With(slog.String("op", op))

	log.Debug("attempting to submit review", slog.String("author", review.Author))

	review.Author = strings.TrimSpace(review.Author)
	review.Text = strings.TrimSpace(review.Text)

	if review.Author == "" || review.Text == "" {
		log.Warn("missing author or text")
		return nil, models.ErrInvalidParams
	}

	if review.Rating == 0 {
		review.Rating = 5
	}

	if review.Rating < 1 || review.Rating > 5 {
		log.Warn("rating out of range", slog.Int("rating", review.Rating))
		return nil, models.ErrInvalidParams
	}

	review.ID = uuid.NewV4().String()
	review.CreatedAt = time.Now().UTC()

	err := rs.reviewRepo.CreateReview(ctx, review)
	if err != nil {
		log.Error("failed to save review", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("review submitted successfully", slog.String("review_id", review.ID))

	return review, nil
}

func (rs *ReviewService) Reviews(ctx context.Context, limit int) ([]*models.Review, error) {
	op := pkg + "Reviews"

	log := rs.log.With(slog.String("op", op))

	log.Debug("attempting to list reviews", slog.Int("limit", limit))

	reviews, err := rs.reviewRepo.Reviews(ctx, limit)
	if err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			return []*models.Review{}, nil
		}
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("reviews listed successfully", slog.Int("count", len(reviews)))

	return reviews, nil
}

func (rs *ReviewService) DeleteReview(ctx context.Context, id string) error {
	op := pkg + "DeleteReview"

	log := rs.log.With(slog.String("op", op))

	log.Debug("attempting to delete review", slog.String("review_id", id))

	if _, err := uuid.FromString(id); err != nil {
		log.Warn("malformed review id", slog.String("review_id", id))
		return models.ErrReviewNotFound
	}

	if _, err := rs.reviewRepo.ReviewByID(ctx, id); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			log.Warn("review not found", slog.String("review_id", id))
			return models.ErrReviewNotFound
		}
		log.Error("failed to get review by id", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := rs.reviewRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete review", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("review deleted successfully", slog.String("review_id", id))

	return nil
}
