package orderservice

import (
	"context"
	"schoolsite/internal/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	Orders(ctx context.Context, limit int) ([]*models.Order, error)
}

type ProductProvider interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}
