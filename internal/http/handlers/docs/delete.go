package docs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	utils "schoolsite/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dd DocumentDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	err := dd.DeleteDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			utils.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			return
		}
		log.Error("failed to delete document", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]any{
			"deleted": docID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
