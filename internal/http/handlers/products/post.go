package products

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	moneyutil "schoolsite/internal/utils/money"
	"strconv"
)

const maxUploadBytes = 10 << 20

// Create adds a catalog item. Images are attached separately through
// AddImage.
func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pc ProductCreator) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var payload dto.ProductRequest

	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	priceCents, err := moneyutil.ParsePrice(payload.Price)
	if err != nil {
		log.Warn("invalid price", slog.String("price", payload.Price))
		errutils.WriteJSONError(w, http.StatusBadRequest, moneyutil.ErrBadAmount.Error())
		return
	}

	inStock := true
	if payload.InStock != nil {
		inStock = *payload.InStock
	}

	product := &models.Product{
		Name:        payload.Name,
		Description: payload.Description,
		PriceCents:  priceCents,
		Category:    payload.Category,
		InStock:     inStock,
		Sizes:       payload.Sizes,
		Colors:      payload.Colors,
	}

	created, err := pc.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid product payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to create product", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": productResponse(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

// AddImage stores an uploaded picture under the product. The optional
// sort_order field orders the gallery.
func AddImage(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, productID string, ia ImageAdder) {
	op := pkg + "AddImage"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Error("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Warn("image part missing", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "image part is required")
		return
	}
	defer file.Close()

	sortOrder := 0
	if raw := r.FormValue("sort_order"); raw != "" {
		sortOrder, err = strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid sort_order", slog.String("sort_order", raw))
			errutils.WriteJSONError(w, http.StatusBadRequest, "invalid sort_order")
			return
		}
	}

	image, err := ia.AddProductImage(ctx, productID, header.Filename, file, sortOrder)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", productID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrProductNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("unusable image", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to add product image", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": dto.ProductImageResponse{
			ID:        image.ID,
			Path:      image.Path,
			SortOrder: image.SortOrder,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
