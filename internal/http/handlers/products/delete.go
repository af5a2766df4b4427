package products

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, productID string, pd ProductDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	if err := pd.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", productID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrProductNotFound.Error())
			return
		}
		log.Error("failed to delete product", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]string{
			"deleted": productID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func DeleteImage(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, imageID string, imd ImageDeleter) {
	op := pkg + "DeleteImage"

	log = log.With(slog.String("op", op))

	if err := imd.DeleteProductImage(ctx, imageID); err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			log.Warn("image not found", slog.String("image_id", imageID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrImageNotFound.Error())
			return
		}
		log.Error("failed to delete product image", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": map[string]string{
			"deleted": imageID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
