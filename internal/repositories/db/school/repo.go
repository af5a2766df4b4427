package schoolrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolsite/internal/entities"
	"schoolsite/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "schoolRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) SchoolInfo(ctx context.Context) (*models.SchoolInfo, error) {
	op := pkg + "SchoolInfo"

	rawInfo := entities.SchoolInfo{}

	err := r.db.GetContext(ctx, &rawInfo,
		`SELECT
			s.id AS id,
			s.address AS address,
			s.email AS email,
			s.phone AS phone,
			s.about AS about,
			s.map_iframe AS map_iframe
		FROM school_info s
		WHERE s.id = $1`,
		models.SchoolInfoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrSchoolInfoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return infoFromEntity(rawInfo), nil
}

func (r *repository) CreateSchoolInfo(ctx context.Context, info *models.SchoolInfo) error {
	op := pkg + "CreateSchoolInfo"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO school_info (id, address, email, phone, about, map_iframe)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		info.ID, info.Address, info.Email, info.Phone, info.About, info.MapIframe)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) UpdateSchoolInfo(ctx context.Context, info *models.SchoolInfo) error {
	op := pkg + "UpdateSchoolInfo"

	res, err := r.db.ExecContext(ctx,
		`UPDATE school_info
		SET address = $2,
			email = $3,
			phone = $4,
			about = $5,
			map_iframe = $6
		WHERE id = $1`,
		info.ID, info.Address, info.Email, info.Phone, info.About, info.MapIframe)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrSchoolInfoNotFound)
	}

	return nil
}

func infoFromEntity(rawInfo entities.SchoolInfo) *models.SchoolInfo {
	return &models.SchoolInfo{
		ID:        rawInfo.ID,
		Address:   rawInfo.Address,
		Email:     rawInfo.Email,
		Phone:     rawInfo.Phone,
		About:     rawInfo.About,
		MapIframe: rawInfo.MapIframe,
	}
}
