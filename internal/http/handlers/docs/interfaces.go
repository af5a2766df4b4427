package docs

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

const pkg = "docsHandler/"

type DocumentUploader interface {
	UploadDocument(ctx context.Context, doc *models.Document, filename string, content io.Reader) (*models.Document, error)
}

type DocumentProvider interface {
	ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
	DocumentMeta(ctx context.Context, docID string, requester *models.User) (*models.Document, error)
}

type DocumentDownloader interface {
	DownloadDocument(ctx context.Context, docID string, requester *models.User) (*models.Document, io.ReadCloser, error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, docID string) error
}
