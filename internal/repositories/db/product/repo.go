package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"schoolsite/internal/entities"
	"schoolsite/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "productRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateProduct(ctx context.Context, product *models.Product) error {
	op := pkg + "CreateProduct"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price_cents, category_id, in_stock, sizes, colors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Description, product.PriceCents, nullableID(product.CategoryID),
		product.InStock, pq.Array(product.Sizes), pq.Array(product.Colors), product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	op := pkg + "ProductByID"

	rawProduct := entities.Product{}

	err := r.db.GetContext(ctx, &rawProduct,
		`SELECT
			p.id AS id,
			p.name AS name,
			p.description AS description,
			p.price_cents AS price_cents,
			p.category_id AS category_id,
			c.name AS category,
			p.in_stock AS in_stock,
			p.sizes AS sizes,
			p.colors AS colors,
			p.created_at AS created_at,
			p.updated_at AS updated_at
		FROM products p
		LEFT JOIN merch_categories c ON c.id = p.category_id
		WHERE p.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	product := productFromEntity(rawProduct)

	images, err := r.ImagesByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	product.Images = images

	return product, nil
}

func (r *repository) FilteredProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	op := pkg + "FilteredProducts"

	rawProducts := make([]entities.Product, 0)

	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * filter.Limit
	}

	err := r.db.SelectContext(ctx, &rawProducts,
		`SELECT
			p.id AS id,
			p.name AS name,
			p.description AS description,
			p.price_cents AS price_cents,
			p.category_id AS category_id,
			c.name AS category,
			p.in_stock AS in_stock,
			p.sizes AS sizes,
			p.colors AS colors,
			p.created_at AS created_at,
			p.updated_at AS updated_at
		FROM products p
		LEFT JOIN merch_categories c ON c.id = p.category_id
		WHERE ($1 = '' OR c.slug = $1)
		AND ($2 = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
		AND ($3::BOOLEAN IS NULL OR p.in_stock = $3)
		ORDER BY p.created_at DESC
		LIMIT $4 OFFSET $5`,
		filter.Category, filter.Search, filter.InStock, filter.Limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := make([]*models.Product, 0)

	for _, rawProduct := range rawProducts {
		products = append(products, productFromEntity(rawProduct))
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return products, nil
}

func (r *repository) CountProducts(ctx context.Context, filter models.ProductFilter) (int, error) {
	op := pkg + "CountProducts"

	var total int

	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*)
		FROM products p
		LEFT JOIN merch_categories c ON c.id = p.category_id
		WHERE ($1 = '' OR c.slug = $1)
		AND ($2 = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
		AND ($3::BOOLEAN IS NULL OR p.in_stock = $3)`,
		filter.Category, filter.Search, filter.InStock)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (r *repository) UpdateProduct(ctx context.Context, product *models.Product) error {
	op := pkg + "UpdateProduct"

	res, err := r.db.ExecContext(ctx,
		`UPDATE products
		SET name = $2,
			description = $3,
			price_cents = $4,
			category_id = $5,
			in_stock = $6,
			sizes = $7,
			colors = $8,
			updated_at = $9
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.PriceCents, nullableID(product.CategoryID),
		product.InStock, pq.Array(product.Sizes), pq.Array(product.Colors), product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrProductNotFound)
	}

	return nil
}

func (r *repository) DeleteProduct(ctx context.Context, id string) error {
	op := pkg + "DeleteProduct"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) EnsureCategory(ctx context.Context, category *models.MerchCategory) (*models.MerchCategory, error) {
	op := pkg + "EnsureCategory"

	rawCategory := entities.MerchCategory{}

	// DO UPDATE makes RETURNING yield the row on conflict as well.
	err := r.db.GetContext(ctx, &rawCategory,
		`INSERT INTO merch_categories (id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, slug`,
		category.ID, category.Name, category.Slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.MerchCategory{
		ID:   rawCategory.ID,
		Name: rawCategory.Name,
		Slug: rawCategory.Slug,
	}, nil
}

func (r *repository) Categories(ctx context.Context) ([]*models.MerchCategory, error) {
	op := pkg + "Categories"

	rawCategories := make([]entities.MerchCategory, 0)

	err := r.db.SelectContext(ctx, &rawCategories,
		`SELECT
			c.id AS id,
			c.name AS name,
			c.slug AS slug,
			COUNT(p.id) AS product_count
		FROM merch_categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name, c.slug
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categories := make([]*models.MerchCategory, 0)

	for _, rawCategory := range rawCategories {
		categories = append(categories, &models.MerchCategory{
			ID:           rawCategory.ID,
			Name:         rawCategory.Name,
			Slug:         rawCategory.Slug,
			ProductCount: rawCategory.ProductCount,
		})
	}

	return categories, nil
}

func (r *repository) AddImage(ctx context.Context, image *models.ProductImage) error {
	op := pkg + "AddImage"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO product_images (id, product_id, path, sort_order, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		image.ID, image.ProductID, image.Path, image.SortOrder, image.UploadedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) ImageByID(ctx context.Context, id string) (*models.ProductImage, error) {
	op := pkg + "ImageByID"

	rawImage := entities.ProductImage{}

	err := r.db.GetContext(ctx, &rawImage,
		`SELECT
			i.id AS id,
			i.product_id AS product_id,
			i.path AS path,
			i.sort_order AS sort_order,
			i.uploaded_at AS uploaded_at
		FROM product_images i
		WHERE i.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrImageNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return imageFromEntity(rawImage), nil
}

func (r *repository) ImagesByProduct(ctx context.Context, productID string) ([]models.ProductImage, error) {
	op := pkg + "ImagesByProduct"

	rawImages := make([]entities.ProductImage, 0)

	err := r.db.SelectContext(ctx, &rawImages,
		`SELECT
			i.id AS id,
			i.product_id AS product_id,
			i.path AS path,
			i.sort_order AS sort_order,
			i.uploaded_at AS uploaded_at
		FROM product_images i
		WHERE i.product_id = $1
		ORDER BY i.sort_order, i.uploaded_at`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	images := make([]models.ProductImage, 0)

	for _, rawImage := range rawImages {
		images = append(images, *imageFromEntity(rawImage))
	}

	return images, nil
}

func (r *repository) DeleteImage(ctx context.Context, id string) error {
	op := pkg + "DeleteImage"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM product_images WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) attachImages(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	rawImages := make([]entities.ProductImage, 0)

	err := r.db.SelectContext(ctx, &rawImages,
		`SELECT
			i.id AS id,
			i.product_id AS product_id,
			i.path AS path,
			i.sort_order AS sort_order,
			i.uploaded_at AS uploaded_at
		FROM product_images i
		WHERE i.product_id = ANY($1)
		ORDER BY i.sort_order, i.uploaded_at`,
		pq.Array(ids))
	if err != nil {
		return err
	}

	byProduct := make(map[string][]models.ProductImage)
	for _, rawImage := range rawImages {
		byProduct[rawImage.ProductID] = append(byProduct[rawImage.ProductID], *imageFromEntity(rawImage))
	}

	for _, product := range products {
		if images, ok := byProduct[product.ID]; ok {
			product.Images = images
		} else {
			product.Images = make([]models.ProductImage, 0)
		}
	}

	return nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func productFromEntity(rawProduct entities.Product) *models.Product {
	return &models.Product{
		ID:          rawProduct.ID,
		Name:        rawProduct.Name,
		Description: rawProduct.Description,
		PriceCents:  rawProduct.PriceCents,
		CategoryID:  rawProduct.CategoryID.String,
		Category:    rawProduct.Category.String,
		InStock:     rawProduct.InStock,
		Sizes:       rawProduct.Sizes,
		Colors:      rawProduct.Colors,
		Images:      make([]models.ProductImage, 0),
		CreatedAt:   rawProduct.CreatedAt,
		UpdatedAt:   rawProduct.UpdatedAt,
	}
}

func imageFromEntity(rawImage entities.ProductImage) *models.ProductImage {
	return &models.ProductImage{
		ID:         rawImage.ID,
		ProductID:  rawImage.ProductID,
		Path:       rawImage.Path,
		SortOrder:  rawImage.SortOrder,
		UploadedAt: rawImage.UploadedAt,
	}
}
