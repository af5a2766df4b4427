package docs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	parseutil "schoolsite/internal/utils/parseQuery"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, dp DocumentProvider) {
	op := pkg + "Get"

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
			log.Warn("invalid document filter",
				slog.String("audience", filter.Audience),
				slog.String("category", filter.Category),
			)
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoDocs := make([]dto.DocumentResponse, 0, len(rawDocs))

	for _, doc := range rawDocs {
		dtoDocs = append(dtoDocs, docResponse(doc))
	}

	response := map[string]any{
		"data": map[string]any{
			"docs": dtoDocs,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dp DocumentProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	requester, _ := r.Context().Value(models.UserContextKey).(*models.User)

	doc, err := dp.DocumentMeta(ctx, docID, requester)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": docResponse(doc),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func docResponse(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:           doc.ID,
		Title:        doc.Title,
		Description:  doc.Description,
		Audience:     doc.Audience,
		Category:     doc.Category,
		OriginalName: doc.OriginalName,
		IsPublic:     doc.IsPublic,
		UploadedAt:   doc.UploadedAt,
		DownloadURL:  fmt.Sprintf("/api/documents/%s/download", doc.ID),
	}
}
