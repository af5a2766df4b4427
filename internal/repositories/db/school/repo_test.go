package schoolrepo

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

func TestSchoolInfo_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "address", "email", "phone", "about", "map_iframe"}).
		AddRow(1, "1 School Lane", "office@school.example", "+70000000000", "Founded in 1991", "")

	mock.ExpectQuery("SELECT(.|\n)*FROM school_info s(.|\n)*WHERE s.id").
		WithArgs(models.SchoolInfoID).
		WillReturnRows(rows)

	info, err := repo.SchoolInfo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, info.ID)
	assert.Equal(t, "1 School Lane", info.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolInfo_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT(.|\n)*FROM school_info s(.|\n)*WHERE s.id").
		WithArgs(models.SchoolInfoID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SchoolInfo(context.Background())
	assert.ErrorIs(t, err, models.ErrSchoolInfoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchoolInfo_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	info := &models.SchoolInfo{ID: models.SchoolInfoID}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO school_info`)).
		WithArgs(info.ID, info.Address, info.Email, info.Phone, info.About, info.MapIframe).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateSchoolInfo(context.Background(), info)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSchoolInfo_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	info := &models.SchoolInfo{
		ID:      models.SchoolInfoID,
		Address: "2 School Lane",
		Email:   "office@school.example",
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE school_info`)).
		WithArgs(info.ID, info.Address, info.Email, info.Phone, info.About, info.MapIframe).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSchoolInfo(context.Background(), info)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSchoolInfo_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	info := &models.SchoolInfo{ID: models.SchoolInfoID}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE school_info`)).
		WithArgs(info.ID, info.Address, info.Email, info.Phone, info.About, info.MapIframe).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSchoolInfo(context.Background(), info)
	assert.ErrorIs(t, err, models.ErrSchoolInfoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
