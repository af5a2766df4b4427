package documentrepo

import (
	"context"
	"database/sql"
	"regexp"
	"schoolsite/internal/models"
	"testing"
	"time"

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

func TestCreateDocument_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	doc := &models.Document{
		ID:           "doc1",
		Title:        "Syllabus",
		Description:  "fall term",
		Audience:     models.AudienceParents,
		Category:     models.CategoryGeneral,
		Path:         "docs/2025/09/syllabus.pdf",
		OriginalName: "syllabus.pdf",
		IsPublic:     true,
		UploadedAt:   time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO documents`)).
		WithArgs(doc.ID, doc.Title, doc.Description, doc.Audience, doc.Category, doc.Path, doc.OriginalName, doc.IsPublic, doc.UploadedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateDocument(context.Background(), doc)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentByID_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	uploaded := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "audience", "category", "path", "original_name", "is_public", "uploaded_at"}).
		AddRow("doc1", "Syllabus", "", "parents", "general", "docs/2025/09/syllabus.pdf", "syllabus.pdf", true, uploaded)

	mock.ExpectQuery("SELECT(.|\n)*FROM documents d(.|\n)*WHERE d.id").
		WithArgs("doc1").
		WillReturnRows(rows)

	doc, err := repo.DocumentByID(context.Background(), "doc1")
	assert.NoError(t, err)
	assert.Equal(t, "Syllabus", doc.Title)
	assert.Equal(t, "syllabus.pdf", doc.OriginalName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT(.|\n)*FROM documents d(.|\n)*WHERE d.id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DocumentByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilteredDocuments_PassesFilters(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "audience", "category", "path", "original_name", "is_public", "uploaded_at"}).
		AddRow("doc1", "Syllabus", "", "parents", "general", "docs/2025/09/syllabus.pdf", "syllabus.pdf", true, time.Now())

	mock.ExpectQuery("SELECT(.|\n)*FROM documents d(.|\n)*ORDER BY d.uploaded_at DESC").
		WithArgs("parents", "general", false).
		WillReturnRows(rows)

	docs, err := repo.FilteredDocuments(context.Background(), models.DocumentFilter{
		Audience: "parents",
		Category: "general",
	}, false)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilteredDocuments_AppendsLimit(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "audience", "category", "path", "original_name", "is_public", "uploaded_at"})

	mock.ExpectQuery("SELECT(.|\n)*ORDER BY d.uploaded_at DESC LIMIT \\$4").
		WithArgs("", "", true, 5).
		WillReturnRows(rows)

	docs, err := repo.FilteredDocuments(context.Background(), models.DocumentFilter{Limit: 5}, true)
	assert.NoError(t, err)
	assert.Empty(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	db, mock := setup(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1`)).
		WithArgs("doc1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "doc1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
