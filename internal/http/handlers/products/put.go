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
)

// Update applies a partial JSON update over the stored product.
func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, productID string, pp ProductProvider, pu ProductUpdater) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var patch dto.ProductUpdateRequest

	if err := json.Unmarshal(body, &patch); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	current, err := pp.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", productID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrProductNotFound.Error())
			return
		}
		log.Error("failed to get product by id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	if err := applyPatch(current, &patch); err != nil {
		log.Warn("invalid price", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, moneyutil.ErrBadAmount.Error())
		return
	}

	updated, err := pu.UpdateProduct(ctx, current)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid product payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", productID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrProductNotFound.Error())
			return
		}
		log.Error("failed to update product", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": productResponse(updated),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func applyPatch(product *models.Product, patch *dto.ProductUpdateRequest) error {
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		priceCents, err := moneyutil.ParsePrice(*patch.Price)
		if err != nil {
			return err
		}
		product.PriceCents = priceCents
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}
	if patch.Sizes != nil {
		product.Sizes = *patch.Sizes
	}
	if patch.Colors != nil {
		product.Colors = *patch.Colors
	}

	return nil
}

func productResponse(product *models.Product) dto.ProductResponse {
	images := make([]dto.ProductImageResponse, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, dto.ProductImageResponse{
			ID:        image.ID,
			Path:      image.Path,
			SortOrder: image.SortOrder,
		})
	}

	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       moneyutil.FormatPrice(product.PriceCents),
		Category:    product.Category,
		InStock:     product.InStock,
		Sizes:       product.Sizes,
		Colors:      product.Colors,
		Images:      images,
		CreatedAt:   product.CreatedAt,
	}
}
