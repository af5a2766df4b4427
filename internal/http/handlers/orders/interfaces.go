package orders

import (
	"context"
	"schoolsite/internal/models"
)

const pkg = "ordersHandler/"

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItemInput) (*models.Order, error)
}

type OrderProvider interface {
	Orders(ctx context.Context, limit int) ([]*models.Order, error)
	OrderByID(ctx context.Context, id string) (*models.Order, error)
}
