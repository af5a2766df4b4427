package documentservice

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	DocumentByID(ctx context.Context, id string) (*models.Document, error)
	FilteredDocuments(ctx context.Context, filter models.DocumentFilter, includeHidden bool) ([]*models.Document, error)
	Delete(ctx context.Context, id string) error
}

type FileStorage interface {
	SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error)
	LoadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
