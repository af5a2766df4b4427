package reviewrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolsite/internal/entities"
	"schoolsite/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "reviewRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateReview(ctx context.Context, review *models.Review) error {
	op := pkg + "CreateReview"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, author, text, rating, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		review.ID, review.Author, review.Text, review.Rating, review.IPAddress, review.UserAgent, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) ReviewByID(ctx context.Context, id string) (*models.Review, error) {
	op := pkg + "ReviewByID"

	rawReview := entities.Review{}

	err := r.db.GetContext(ctx, &rawReview,
		`SELECT
			r.id AS id,
			r.author AS author,
			r.text AS text,
			r.rating AS rating,
			r.ip_address AS ip_address,
			r.user_agent AS user_agent,
			r.created_at AS created_at
		FROM reviews r
		WHERE r.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrReviewNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviewFromEntity(rawReview), nil
}

func (r *repository) Reviews(ctx context.Context, limit int) ([]*models.Review, error) {
	op := pkg + "Reviews"

	rawReviews := make([]entities.Review, 0)

	baseQuery := `SELECT
			r.id AS id,
			r.author AS author,
			r.text AS text,
			r.rating AS rating,
			r.ip_address AS ip_address,
			r.user_agent AS user_agent,
			r.created_at AS created_at
		FROM reviews r
		ORDER BY r.created_at DESC`

	args := make([]any, 0)

	if limit > 0 {
		args = append(args, limit)

		baseQuery += ` LIMIT $1`
	}

	err := r.db.SelectContext(ctx, &rawReviews, baseQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrReviewNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews := make([]*models.Review, 0)

	for _, rawReview := range rawReviews {
		reviews = append(reviews, reviewFromEntity(rawReview))
	}

	return reviews, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func reviewFromEntity(rawReview entities.Review) *models.Review {
	return &models.Review{
		ID:        rawReview.ID,
		Author:    rawReview.Author,
		Text:      rawReview.Text,
		Rating:    rawReview.Rating,
		IPAddress: rawReview.IPAddress,
		UserAgent: rawReview.UserAgent,
		CreatedAt: rawReview.CreatedAt,
	}
}
