package documentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"schoolsite/internal/models"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

type DocumentService struct {
	log         *slog.Logger
	docRepo     DocumentRepository
	cache       Cache
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	cache Cache,
	fileStorage FileStorage,
) *DocumentService {
	return &DocumentService{
		log:         log,
		docRepo:     docRepo,
		cache:       cache,
		fileStorage: fileStorage,
	}
}

func (ds *DocumentService) UploadDocument(ctx context.Context, doc *models.Document, filename string, content io.Reader) (*models.Document, error) {
	op := pkg + "UploadDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to upload document", slog.String("title", doc.Title), slog.String("filename", filename))

	doc.Title = strings.TrimSpace(doc.Title)

	if doc.Title == "" || filename == "" {
		log.Warn("missing title or filename")
		return nil, models.ErrInvalidParams
	}

	if !models.IsValidAudience(doc.Audience) || !models.IsValidCategory(doc.Category) {
		log.Warn("invalid audience or category",
			slog.String("audience", doc.Audience),
			slog.String("category", doc.Category),
		)
		return nil, models.ErrInvalidParams
	}

	doc.ID = uuid.NewV4().String()
	doc.OriginalName = filename
	doc.UploadedAt = time.Now().UTC()

	dir := fmt.Sprintf("docs/%04d/%02d", doc.UploadedAt.Year(), doc.UploadedAt.Month())

	path, err := ds.fileStorage.SaveFile(ctx, dir, filename, content)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("unusable filename", slog.String("filename", filename))
			return nil, models.ErrInvalidParams
		}
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	doc.Path = path

	err = ds.docRepo.CreateDocument(ctx, doc)
	if err != nil {
		log.Error("failed to save document metadata, orphaned file left in storage",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("document uploaded successfully", slog.String("doc_id", doc.ID), slog.String("path", doc.Path))

	return doc, nil
}

func (ds *DocumentService) ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to list documents",
		slog.String("audience", filter.Audience),
		slog.String("category", filter.Category),
		slog.Int("limit", filter.Limit))

	if !filter.IsValid() {
		log.Warn("invalid filter format")
		return nil, models.ErrInvalidParams
	}

	includeHidden := requester != nil

	docs, err := ds.docRepo.FilteredDocuments(ctx, filter, includeHidden)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return []*models.Document{}, nil
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("documents listed successfully", slog.Int("count", len(docs)))

	return docs, nil
}

func (ds *DocumentService) DocumentMeta(ctx context.Context, docID string, requester *models.User) (*models.Document, error) {
	op := pkg + "DocumentMeta"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.String("doc_id", docID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	// hidden documents do not exist for anonymous callers
	if !doc.IsPublic && requester == nil {
		log.Warn("anonymous request for hidden document", slog.String("doc_id", docID))
		return nil, models.ErrDocumentNotFound
	}

	return doc, nil
}

func (ds *DocumentService) DownloadDocument(ctx context.Context, docID string, requester *models.User) (*models.Document, io.ReadCloser, error) {
	op := pkg + "DownloadDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to download document", slog.String("doc_id", docID))

	doc, err := ds.DocumentMeta(ctx, docID, requester)
	if err != nil {
		return nil, nil, err
	}

	file, err := ds.fileStorage.LoadFile(ctx, doc.Path)
	if err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Error("document record exists but file is missing",
				slog.String("doc_id", docID),
				slog.String("path", doc.Path),
			)
			return nil, nil, models.ErrStorageInconsistent
		}
		log.Error("failed to load file from storage", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("document content found successfully", slog.String("doc_id", docID))

	return doc, file, nil
}

func (ds *DocumentService) DeleteDocument(ctx context.Context, docID string) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to delete document", slog.String("doc_id", docID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		log.Warn("failed to get document by id", slog.String("error", err.Error()))
		return err
	}

	if err := ds.docRepo.Delete(ctx, docID); err != nil {
		log.Error("failed to delete document meta", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if err := ds.cache.Del(ctx, cacheKey(docID)); err != nil {
		log.Error("failed to delete doc from cache", slog.String("error", err.Error()))
	}

	// the record is gone, a leftover file only costs disk space
	if err := ds.fileStorage.DeleteFile(ctx, doc.Path); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			log.Warn("document file already missing", slog.String("path", doc.Path))
		} else {
			log.Error("failed to delete document content", slog.String("error", err.Error()))
		}
	}

	log.Debug("document deleted successfully", slog.String("doc_id", docID))

	return nil
}

func (ds *DocumentService) documentMetaByID(ctx context.Context, docID string) (*models.Document, error) {
	op := pkg + "documentMetaByID"

	log := ds.log.With(slog.String("op", op))

	if _, err := uuid.FromString(docID); err != nil {
		log.Warn("malformed document id", slog.String("doc_id", docID))
		return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
	}

	var doc *models.Document

	docJSON, err := ds.cache.Get(ctx, cacheKey(docID))
	if err != nil || docJSON == "" {
		log.Debug("failed to get doc in cache by id", slog.String("doc_id", docID))

		doc, err = ds.docRepo.DocumentByID(ctx, docID)
		if err != nil {
			if errors.Is(err, models.ErrDocumentNotFound) {
				log.Warn("document not found", slog.String("doc_id", docID))
				return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
			}
			log.Error("failed to get document by id", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		docJSON, err := docToJSON(doc)
		if err != nil {
			log.Error("failed to parse doc to json", slog.String("error", err.Error()))
		} else {
			err = ds.cache.Set(ctx, cacheKey(docID), docJSON)
			if err != nil {
				log.Warn("failed to set doc to cache", slog.String("error", err.Error()))
			}
		}

		return doc, nil
	}

	doc, err = jsonToDoc(docJSON)
	if err != nil {
		log.Error("failed to parse json to doc", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return doc, nil
}

func cacheKey(docID string) string {
	return fmt.Sprintf("docmeta:%s", docID)
}

func docToJSON(doc *models.Document) (string, error) {
	jsonSlice, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(jsonSlice), nil
}

func jsonToDoc(s string) (*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
