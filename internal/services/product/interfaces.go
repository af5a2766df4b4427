package productservice

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	FilteredProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	CountProducts(ctx context.Context, filter models.ProductFilter) (int, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	EnsureCategory(ctx context.Context, category *models.MerchCategory) (*models.MerchCategory, error)
	Categories(ctx context.Context) ([]*models.MerchCategory, error)
	AddImage(ctx context.Context, image *models.ProductImage) error
	ImageByID(ctx context.Context, id string) (*models.ProductImage, error)
	DeleteImage(ctx context.Context, id string) error
}

type FileStorage interface {
	SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error)
	DeleteFile(ctx context.Context, path string) error
}
