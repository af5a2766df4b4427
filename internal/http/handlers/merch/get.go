package merch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	moneyutil "schoolsite/internal/utils/money"
	parseutil "schoolsite/internal/utils/parseQuery"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Get lists the catalog page matching the query filters.
func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pp ProductProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	query := r.URL.Query()

	limit := parseutil.ParseLimit(query.Get("limit"))
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := models.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Page:     parseutil.ParsePage(query.Get("page")),
		Limit:    limit,
	}

	switch query.Get("in_stock") {
	case "true":
		inStock := true
		filter.InStock = &inStock
	case "false":
		inStock := false
		filter.InStock = &inStock
	}

	products, total, err := pp.ListProducts(ctx, filter)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, productResponse(product))
	}

	totalPages := total / filter.Limit
	if total%filter.Limit != 0 {
		totalPages++
	}

	response := map[string]any{
		"data": map[string]any{
			"products": items,
			"pagination": dto.Pagination{
				Page:       filter.Page,
				Limit:      filter.Limit,
				Total:      total,
				TotalPages: totalPages,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, productID string, pp ProductProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	product, err := pp.ProductByID(ctx, productID)
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

	response := map[string]any{
		"data": productResponse(product),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Categories(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cp CategoryProvider) {
	op := pkg + "Categories"

	log = log.With(slog.String("op", op))

	categories, err := cp.Categories(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.CategoryResponse{
			ID:           category.ID,
			Name:         category.Name,
			Slug:         category.Slug,
			ProductCount: category.ProductCount,
		})
	}

	response := map[string]any{
		"data": map[string]any{
			"categories": items,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
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
