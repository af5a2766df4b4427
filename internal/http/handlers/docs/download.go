package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

func Download(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dd DocumentDownloader) {
	op := pkg + "Download"

	log = log.With(slog.String("op", op))

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	doc, file, err := dd.DownloadDocument(ctx, docID, requester)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrStorageInconsistent) {
			log.Error("document file missing from storage", slog.String("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrStorageInconsistent.Error())
			return
		}
		log.Error("failed to download document", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer file.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.OriginalName))
	w.Header().Set("Content-Type", contentType(doc.OriginalName))

	if _, err := io.Copy(w, file); err != nil {
		log.Error("failed to write file response", slog.String("error", err.Error()))
	}
}

// contentType derives the media type from the original filename's extension.
func contentType(name string) string {
	if mt := mime.TypeByExtension(filepath.Ext(name)); mt != "" {
		return mt
	}
	return "application/octet-stream"
}
