package documentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolsite/internal/entities"
	"schoolsite/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "documentRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateDocument(ctx context.Context, doc *models.Document) error {
	op := pkg + "CreateDocument"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, title, description, audience, category, path, original_name, is_public, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.Title, doc.Description, doc.Audience, doc.Category, doc.Path, doc.OriginalName, doc.IsPublic, doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT
			d.id AS id,
			d.title AS title,
			d.description AS description,
			d.audience AS audience,
			d.category AS category,
			d.path AS path,
			d.original_name AS original_name,
			d.is_public AS is_public,
			d.uploaded_at AS uploaded_at
		FROM documents d
		WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return docFromEntity(rawDoc), nil
}

func (r *repository) FilteredDocuments(ctx context.Context, filter models.DocumentFilter, includeHidden bool) ([]*models.Document, error) {
	op := pkg + "FilteredDocuments"

	rawDocs := make([]entities.Document, 0)

	baseQuery := `SELECT
			d.id AS id,
			d.title AS title,
			d.description AS description,
			d.audience AS audience,
			d.category AS category,
			d.path AS path,
			d.original_name AS original_name,
			d.is_public AS is_public,
			d.uploaded_at AS uploaded_at
		FROM documents d
		WHERE ($1 = '' OR d.audience = $1)
		AND ($2 = '' OR d.category = $2)
		AND ($3 OR d.is_public = TRUE)
		ORDER BY d.uploaded_at DESC`

	args := []any{
		filter.Audience,
		filter.Category,
		includeHidden,
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)

		baseQuery += ` LIMIT $4`
	}

	err := r.db.SelectContext(ctx, &rawDocs, baseQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0)

	for _, rawDoc := range rawDocs {
		docs = append(docs, docFromEntity(rawDoc))
	}

	return docs, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func docFromEntity(rawDoc entities.Document) *models.Document {
	return &models.Document{
		ID:           rawDoc.ID,
		Title:        rawDoc.Title,
		Description:  rawDoc.Description,
		Audience:     rawDoc.Audience,
		Category:     rawDoc.Category,
		Path:         rawDoc.Path,
		OriginalName: rawDoc.OriginalName,
		IsPublic:     rawDoc.IsPublic,
		UploadedAt:   rawDoc.UploadedAt,
	}
}
