package productservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"schoolsite/internal/models"
	slugutil "schoolsite/internal/utils/slug"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "productService/"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductService struct {
	log         *slog.Logger
	productRepo ProductRepository
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	productRepo ProductRepository,
	fileStorage FileStorage,
) *ProductService {
	return &ProductService{
		log:         log,
		productRepo: productRepo,
		fileStorage: fileStorage,
	}
}

func (ps *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	op := pkg + "CreateProduct"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to create product", slog.String("name", product.Name))

	if err := ps.prepareProduct(ctx, log, product); err != nil {
		return nil, err
	}

	product.ID = uuid.NewV4().String()
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	product.Images = make([]models.ProductImage, 0)

	if err := ps.productRepo.CreateProduct(ctx, product); err != nil {
		log.Error("failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("product created successfully", slog.String("product_id", product.ID))

	return product, nil
}

func (ps *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	op := pkg + "ListProducts"

	log := ps.log.With(slog.String("op", op))

	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}

	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	log.Debug("attempting to list products",
		slog.String("category", filter.Category),
		slog.String("search", filter.Search),
		slog.Int("page", filter.Page),
		slog.Int("limit", filter.Limit))

	total, err := ps.productRepo.CountProducts(ctx, filter)
	if err != nil {
		log.Error("failed to count products", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	products, err := ps.productRepo.FilteredProducts(ctx, filter)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return []*models.Product{}, total, nil
		}
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("products listed successfully", slog.Int("count", len(products)), slog.Int("total", total))

	return products, total, nil
}

func (ps *ProductService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	op := pkg + "ProductByID"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to get product by id", slog.String("product_id", id))

	if _, err := uuid.FromString(id); err != nil {
		log.Warn("malformed product id", slog.String("product_id", id))
		return nil, models.ErrProductNotFound
	}

	product, err := ps.productRepo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", id))
			return nil, models.ErrProductNotFound
		}
		log.Error("failed to get product by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return product, nil
}

func (ps *ProductService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	op := pkg + "UpdateProduct"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to update product", slog.String("product_id", product.ID))

	if err := ps.prepareProduct(ctx, log, product); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now().UTC()

	err := ps.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("product not found", slog.String("product_id", product.ID))
			return nil, models.ErrProductNotFound
		}
		log.Error("failed to update product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("product updated successfully", slog.String("product_id", product.ID))

	return product, nil
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id string) error {
	op := pkg + "DeleteProduct"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to delete product", slog.String("product_id", id))

	product, err := ps.ProductByID(ctx, id)
	if err != nil {
		return err
	}

	if err := ps.productRepo.DeleteProduct(ctx, id); err != nil {
		log.Error("failed to delete product", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	for _, image := range product.Images {
		if err := ps.fileStorage.DeleteFile(ctx, image.Path); err != nil && !errors.Is(err, models.ErrFileNotFound) {
			log.Error("failed to delete product image file", slog.String("path", image.Path), slog.String("error", err.Error()))
		}
	}

	log.Debug("product deleted successfully", slog.String("product_id", id))

	return nil
}

func (ps *ProductService) Categories(ctx context.Context) ([]*models.MerchCategory, error) {
	op := pkg + "Categories"

	log := ps.log.With(slog.String("op", op))

	categories, err := ps.productRepo.Categories(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return categories, nil
}

func (ps *ProductService) AddProductImage(ctx context.Context, productID string, filename string, content io.Reader, sortOrder int) (*models.ProductImage, error) {
	op := pkg + "AddProductImage"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to add product image", slog.String("product_id", productID))

	if _, err := ps.ProductByID(ctx, productID); err != nil {
		return nil, err
	}

	if filename == "" {
		log.Warn("missing image filename")
		return nil, models.ErrInvalidParams
	}

	now := time.Now().UTC()

	dir := fmt.Sprintf("products/%04d/%02d", now.Year(), now.Month())

	path, err := ps.fileStorage.SaveFile(ctx, dir, filename, content)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("unusable image filename", slog.String("filename", filename))
			return nil, models.ErrInvalidParams
		}
		log.Error("failed to save image", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	image := &models.ProductImage{
		ID:         uuid.NewV4().String(),
		ProductID:  productID,
		Path:       path,
		SortOrder:  sortOrder,
		UploadedAt: now,
	}

	if err := ps.productRepo.AddImage(ctx, image); err != nil {
		log.Error("failed to save image record", slog.String("error", err.Error()))
		_ = ps.fileStorage.DeleteFile(ctx, path)

		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("product image added successfully", slog.String("image_id", image.ID))

	return image, nil
}

func (ps *ProductService) DeleteProductImage(ctx context.Context, imageID string) error {
	op := pkg + "DeleteProductImage"

	log := ps.log.With(slog.String("op", op))

	log.Debug("attempting to delete product image", slog.String("image_id", imageID))

	if _, err := uuid.FromString(imageID); err != nil {
		log.Warn("malformed image id", slog.String("image_id", imageID))
		return models.ErrImageNotFound
	}

	image, err := ps.productRepo.ImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			log.Warn("image not found", slog.String("image_id", imageID))
			return models.ErrImageNotFound
		}
		log.Error("failed to get image by id", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ps.productRepo.DeleteImage(ctx, imageID); err != nil {
		log.Error("failed to delete image record", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ps.fileStorage.DeleteFile(ctx, image.Path); err != nil && !errors.Is(err, models.ErrFileNotFound) {
		log.Error("failed to delete image file", slog.String("path", image.Path), slog.String("error", err.Error()))
	}

	log.Debug("product image deleted successfully", slog.String("image_id", imageID))

	return nil
}

// prepareProduct validates payload fields and resolves the category by name.
func (ps *ProductService) prepareProduct(ctx context.Context, log *slog.Logger, product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)

	if product.Name == "" {
		log.Warn("missing product name")
		return models.ErrInvalidParams
	}

	if product.PriceCents < 0 {
		log.Warn("negative price", slog.Int64("price_cents", product.PriceCents))
		return models.ErrInvalidParams
	}

	product.Sizes = cleanList(product.Sizes)
	product.Colors = cleanList(product.Colors)

	if product.Category == "" {
		product.CategoryID = ""
		return nil
	}

	ensured, err := ps.productRepo.EnsureCategory(ctx, &models.MerchCategory{
		ID:   uuid.NewV4().String(),
		Name: strings.TrimSpace(product.Category),
		Slug: slugutil.Make(product.Category),
	})
	if err != nil {
		log.Error("failed to ensure category", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	product.CategoryID = ensured.ID
	product.Category = ensured.Name

	return nil
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}

	return cleaned
}
