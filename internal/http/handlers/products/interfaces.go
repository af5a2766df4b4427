package products

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

const pkg = "productsHandler/"

type ProductCreator interface {
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
}

type ProductProvider interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

type ProductUpdater interface {
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
}

type ProductDeleter interface {
	DeleteProduct(ctx context.Context, id string) error
}

type ImageAdder interface {
	AddProductImage(ctx context.Context, productID string, filename string, content io.Reader, sortOrder int) (*models.ProductImage, error)
}

type ImageDeleter interface {
	DeleteProductImage(ctx context.Context, imageID string) error
}
