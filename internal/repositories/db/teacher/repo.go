package teacherrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolsite/internal/entities"
	"schoolsite/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "teacherRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	op := pkg + "CreateTeacher"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teachers (id, name, subject, bio, email, phone, photo_path, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		teacher.ID, teacher.Name, teacher.Subject, teacher.Bio, teacher.Email, teacher.Phone, teacher.PhotoPath, teacher.IsActive, teacher.DisplayOrder)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) TeacherByID(ctx context.Context, id string) (*models.Teacher, error) {
	op := pkg + "TeacherByID"

	rawTeacher := entities.Teacher{}

	err := r.db.GetContext(ctx, &rawTeacher,
		`SELECT
			t.id AS id,
			t.name AS name,
			t.subject AS subject,
			t.bio AS bio,
			t.email AS email,
			t.phone AS phone,
			t.photo_path AS photo_path,
			t.is_active AS is_active,
			t.display_order AS display_order
		FROM teachers t
		WHERE t.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrTeacherNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacherFromEntity(rawTeacher), nil
}

func (r *repository) Teachers(ctx context.Context, includeInactive bool, limit int) ([]*models.Teacher, error) {
	op := pkg + "Teachers"

	rawTeachers := make([]entities.Teacher, 0)

	baseQuery := `SELECT
			t.id AS id,
			t.name AS name,
			t.subject AS subject,
			t.bio AS bio,
			t.email AS email,
			t.phone AS phone,
			t.photo_path AS photo_path,
			t.is_active AS is_active,
			t.display_order AS display_order
		FROM teachers t
		WHERE ($1 OR t.is_active = TRUE)
		ORDER BY t.display_order, t.name`

	args := []any{includeInactive}

	if limit > 0 {
		args = append(args, limit)

		baseQuery += ` LIMIT $2`
	}

	err := r.db.SelectContext(ctx, &rawTeachers, baseQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrTeacherNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teachers := make([]*models.Teacher, 0)

	for _, rawTeacher := range rawTeachers {
		teachers = append(teachers, teacherFromEntity(rawTeacher))
	}

	return teachers, nil
}

func (r *repository) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	op := pkg + "UpdateTeacher"

	res, err := r.db.ExecContext(ctx,
		`UPDATE teachers
		SET name = $2,
			subject = $3,
			bio = $4,
			email = $5,
			phone = $6,
			photo_path = $7,
			is_active = $8,
			display_order = $9
		WHERE id = $1`,
		teacher.ID, teacher.Name, teacher.Subject, teacher.Bio, teacher.Email, teacher.Phone, teacher.PhotoPath, teacher.IsActive, teacher.DisplayOrder)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrTeacherNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM teachers WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func teacherFromEntity(rawTeacher entities.Teacher) *models.Teacher {
	return &models.Teacher{
		ID:           rawTeacher.ID,
		Name:         rawTeacher.Name,
		Subject:      rawTeacher.Subject,
		Bio:          rawTeacher.Bio,
		Email:        rawTeacher.Email,
		Phone:        rawTeacher.Phone,
		PhotoPath:    rawTeacher.PhotoPath,
		IsActive:     rawTeacher.IsActive,
		DisplayOrder: rawTeacher.DisplayOrder,
	}
}
