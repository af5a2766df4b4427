package docs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	errutil "schoolsite/internal/utils/http_errors"
	parseutil "schoolsite/internal/utils/parseQuery"
)

func Head(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, dp DocumentProvider) {
	op := pkg + "Head"

	log = log.With(slog.String("op", op))

	filter := models.DocumentFilter{
		Audience: r.URL.Query().Get("audience"),
		Category: r.URL.Query().Get("category"),
		Limit:    parseutil.ParseLimit(r.URL.Query().Get("limit")),
	}

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	rawDocs, err := dp.ListDocuments(ctx, requester, filter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid document filter")
			errutil.WriteStatusError(w, http.StatusBadRequest)
			return
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		errutil.WriteStatusError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Documents-Count", fmt.Sprint(len(rawDocs)))
	w.WriteHeader(http.StatusOK)
}

func HeadByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dp DocumentProvider) {
	op := pkg + "HeadByID"

	log = log.With(slog.String("op", op))

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	doc, err := dp.DocumentMeta(ctx, docID, requester)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			errutil.WriteStatusError(w, http.StatusNotFound)
			return
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		errutil.WriteStatusError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.OriginalName))
	w.Header().Set("Content-Type", contentType(doc.OriginalName))
	w.WriteHeader(http.StatusOK)
}
