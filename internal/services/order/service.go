package orderservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"schoolsite/internal/models"
	"schoolsite/internal/validator"
	"slices"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "orderService/"

const maxItemQuantity = 99

type OrderService struct {
	log             *slog.Logger
	orderRepo       OrderRepository
	productProvider ProductProvider
}

func New(
	log *slog.Logger,
	orderRepo OrderRepository,
	productProvider ProductProvider,
) *OrderService {
	return &OrderService{
		log:             log,
		orderRepo:       orderRepo,
		productProvider: productProvider,
	}
}

// PlaceOrder checks every item against the live catalog, recomputes the
// total from stored prices and rejects the order when the client total
// disagrees.
func (os *OrderService) PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItemInput) (*models.Order, error) {
	op := pkg + "PlaceOrder"

	log := os.log.With(slog.String("op", op))

	log.Debug("attempting to place order", slog.Int("items", len(items)))

	order.ParentName = strings.TrimSpace(order.ParentName)
	order.ChildrenNames = strings.TrimSpace(order.ChildrenNames)
	order.Comment = strings.TrimSpace(order.Comment)

	if order.ParentName == "" || len(items) == 0 {
		log.Warn("missing parent name or items")
		return nil, models.ErrInvalidParams
	}

	phone, ok := validator.NormalizePhone(order.Phone)
	if !ok {
		log.Warn("invalid phone number", slog.String("phone", order.Phone))
		return nil, models.ErrInvalidParams
	}

	order.Phone = phone

	var computedTotal int64

	orderItems := make([]models.OrderItem, 0, len(items))

	for _, item := range items {
		product, err := os.productProvider.ProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				log.Warn("ordered product not found", slog.String("product_id", item.ProductID))
				return nil, models.ErrProductNotFound
			}
			log.Error("failed to get product", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		if !product.InStock {
			log.Warn("ordered product out of stock", slog.String("product_id", product.ID))
			return nil, models.ErrProductOutOfStock
		}

		if item.Quantity < 1 || item.Quantity > maxItemQuantity {
			log.Warn("quantity out of range", slog.Int("quantity", item.Quantity))
			return nil, models.ErrInvalidParams
		}

		if err := checkVariant(product.Sizes, item.Size, models.ErrInvalidSize); err != nil {
			log.Warn("invalid size for product",
				slog.String("product_id", product.ID),
				slog.String("size", item.Size),
			)
			return nil, err
		}

		if err := checkVariant(product.Colors, item.Color, models.ErrInvalidColor); err != nil {
			log.Warn("invalid color for product",
				slog.String("product_id", product.ID),
				slog.String("color", item.Color),
			)
			return nil, err
		}

		computedTotal += product.PriceCents * int64(item.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			ID:          uuid.NewV4().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			PriceCents:  product.PriceCents,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Color:       item.Color,
		})
	}

	if order.TotalCents != computedTotal {
		log.Warn("client total disagrees with catalog prices",
			slog.Int64("client_total", order.TotalCents),
			slog.Int64("computed_total", computedTotal),
		)
		return nil, models.ErrTotalMismatch
	}

	order.ID = uuid.NewV4().String()
	order.TotalCents = computedTotal
	order.CreatedAt = time.Now().UTC()
	order.Items = orderItems

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	if err := os.orderRepo.CreateOrder(ctx, order); err != nil {
		log.Error("failed to save order", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("order placed successfully",
		slog.String("order_id", order.ID),
		slog.String("number", order.Number),
	)

	return order, nil
}

func (os *OrderService) Orders(ctx context.Context, limit int) ([]*models.Order, error) {
	op := pkg + "Orders"

	log := os.log.With(slog.String("op", op))

	log.Debug("attempting to list orders", slog.Int("limit", limit))

	orders, err := os.orderRepo.Orders(ctx, limit)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return []*models.Order{}, nil
		}
		log.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("orders listed successfully", slog.Int("count", len(orders)))

	return orders, nil
}

func (os *OrderService) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	op := pkg + "OrderByID"

	log := os.log.With(slog.String("op", op))

	log.Debug("attempting to get order by id", slog.String("order_id", id))

	if _, err := uuid.FromString(id); err != nil {
		log.Warn("malformed order id", slog.String("order_id", id))
		return nil, models.ErrOrderNotFound
	}

	order, err := os.orderRepo.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			log.Warn("order not found", slog.String("order_id", id))
			return nil, models.ErrOrderNotFound
		}
		log.Error("failed to get order by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return order, nil
}

// checkVariant requires a choice from the product's list, or none when
// the product has no variants.
func checkVariant(available []string, chosen string, mismatch error) error {
	if len(available) == 0 {
		if chosen != "" {
			return mismatch
		}
		return nil
	}

	if !slices.Contains(available, chosen) {
		return mismatch
	}

	return nil
}
