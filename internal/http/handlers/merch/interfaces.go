package merch

import (
	"context"
	"schoolsite/internal/models"
)

const pkg = "merchHandler/"

type ProductProvider interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

type CategoryProvider interface {
	Categories(ctx context.Context) ([]*models.MerchCategory, error)
}
