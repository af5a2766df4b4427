package teacherrepo

import (
	"context"
	"database/sql"
	"regexp"
	"schoolsite/internal/models"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func teacherRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "subject", "bio", "email", "phone", "photo_path", "is_active", "display_order"})
}

func TestCreateTeacher_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	teacher := &models.Teacher{
		ID:           "t1",
		Name:         "Anna Petrova",
		Subject:      "Mathematics",
		Email:        "petrova@school.example",
		IsActive:     true,
		DisplayOrder: 1,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO teachers`)).
		WithArgs(teacher.ID, teacher.Name, teacher.Subject, teacher.Bio, teacher.Email, teacher.Phone, teacher.PhotoPath, teacher.IsActive, teacher.DisplayOrder).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTeacher(context.Background(), teacher)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherByID_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	rows := teacherRows().
		AddRow("t1", "Anna Petrova", "Mathematics", "", "petrova@school.example", "", "", true, 1)

	mock.ExpectQuery("SELECT(.|\n)*FROM teachers t(.|\n)*WHERE t.id").
		WithArgs("t1").
		WillReturnRows(rows)

	teacher, err := repo.TeacherByID(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Equal(t, "Anna Petrova", teacher.Name)
	assert.Equal(t, "Mathematics", teacher.Subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT(.|\n)*FROM teachers t(.|\n)*WHERE t.id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.TeacherByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrTeacherNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeachers_ActiveOnly(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	rows := teacherRows().
		AddRow("t1", "Anna Petrova", "Mathematics", "", "", "", "", true, 1).
		AddRow("t2", "Boris Ivanov", "Physics", "", "", "", "", true, 2)

	mock.ExpectQuery("SELECT(.|\n)*FROM teachers t(.|\n)*ORDER BY t.display_order, t.name").
		WithArgs(false).
		WillReturnRows(rows)

	teachers, err := repo.Teachers(context.Background(), false, 0)
	assert.NoError(t, err)
	assert.Len(t, teachers, 2)
	assert.Equal(t, "Anna Petrova", teachers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeachers_AppendsLimit(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT(.|\n)*ORDER BY t.display_order, t.name LIMIT \\$2").
		WithArgs(true, 10).
		WillReturnRows(teacherRows())

	teachers, err := repo.Teachers(context.Background(), true, 10)
	assert.NoError(t, err)
	assert.Empty(t, teachers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeacher_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	teacher := &models.Teacher{
		ID:      "t1",
		Name:    "Anna Petrova",
		Subject: "Algebra",
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teachers`)).
		WithArgs(teacher.ID, teacher.Name, teacher.Subject, teacher.Bio, teacher.Email, teacher.Phone, teacher.PhotoPath, teacher.IsActive, teacher.DisplayOrder).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTeacher(context.Background(), teacher)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeacher_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	teacher := &models.Teacher{ID: "missing"}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teachers`)).
		WithArgs(teacher.ID, teacher.Name, teacher.Subject, teacher.Bio, teacher.Email, teacher.Phone, teacher.PhotoPath, teacher.IsActive, teacher.DisplayOrder).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTeacher(context.Background(), teacher)
	assert.ErrorIs(t, err, models.ErrTeacherNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM teachers WHERE id = $1`)).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "t1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
