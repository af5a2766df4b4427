package orderrepo

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

const pkg = "orderRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// CreateOrder stores the order and its items in one transaction and
// fills in the allocated order number.
func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	op := pkg + "CreateOrder"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer tx.Rollback()

	var seq int

	err = tx.GetContext(ctx, &seq,
		`SELECT COUNT(*) + 1 FROM orders WHERE number LIKE $1`,
		fmt.Sprintf("ORD-%d-%%", order.CreatedAt.Year()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	order.Number = fmt.Sprintf("ORD-%d-%06d", order.CreatedAt.Year(), seq)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, number, parent_name, children_names, phone, comment, total_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.Number, order.ParentName, order.ChildrenNames, order.Phone, order.Comment, order.TotalCents, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, product_name, price_cents, quantity, size, color)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, order.ID, item.ProductID, item.ProductName, item.PriceCents, item.Quantity, item.Size, item.Color)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	op := pkg + "OrderByID"

	rawOrder := entities.Order{}

	err := r.db.GetContext(ctx, &rawOrder,
		`SELECT
			o.id AS id,
			o.number AS number,
			o.parent_name AS parent_name,
			o.children_names AS children_names,
			o.phone AS phone,
			o.comment AS comment,
			o.total_cents AS total_cents,
			o.created_at AS created_at
		FROM orders o
		WHERE o.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	order := orderFromEntity(rawOrder)

	items, err := r.itemsByOrders(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	order.Items = items[id]
	if order.Items == nil {
		order.Items = make([]models.OrderItem, 0)
	}

	return order, nil
}

func (r *repository) Orders(ctx context.Context, limit int) ([]*models.Order, error) {
	op := pkg + "Orders"

	rawOrders := make([]entities.Order, 0)

	baseQuery := `SELECT
			o.id AS id,
			o.number AS number,
			o.parent_name AS parent_name,
			o.children_names AS children_names,
			o.phone AS phone,
			o.comment AS comment,
			o.total_cents AS total_cents,
			o.created_at AS created_at
		FROM orders o
		ORDER BY o.created_at DESC`

	args := make([]any, 0)

	if limit > 0 {
		args = append(args, limit)

		baseQuery += ` LIMIT $1`
	}

	err := r.db.SelectContext(ctx, &rawOrders, baseQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]*models.Order, 0)
	ids := make([]string, 0, len(rawOrders))

	for _, rawOrder := range rawOrders {
		orders = append(orders, orderFromEntity(rawOrder))
		ids = append(ids, rawOrder.ID)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, order := range orders {
		order.Items = items[order.ID]
		if order.Items == nil {
			order.Items = make([]models.OrderItem, 0)
		}
	}

	return orders, nil
}

func (r *repository) itemsByOrders(ctx context.Context, ids []string) (map[string][]models.OrderItem, error) {
	rawItems := make([]entities.OrderItem, 0)

	err := r.db.SelectContext(ctx, &rawItems,
		`SELECT
			oi.id AS id,
			oi.order_id AS order_id,
			oi.product_id AS product_id,
			oi.product_name AS product_name,
			oi.price_cents AS price_cents,
			oi.quantity AS quantity,
			oi.size AS size,
			oi.color AS color
		FROM order_items oi
		WHERE oi.order_id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string][]models.OrderItem)

	for _, rawItem := range rawItems {
		byOrder[rawItem.OrderID] = append(byOrder[rawItem.OrderID], models.OrderItem{
			ID:          rawItem.ID,
			OrderID:     rawItem.OrderID,
			ProductID:   rawItem.ProductID,
			ProductName: rawItem.ProductName,
			PriceCents:  rawItem.PriceCents,
			Quantity:    rawItem.Quantity,
			Size:        rawItem.Size,
			Color:       rawItem.Color,
		})
	}

	return byOrder, nil
}

func orderFromEntity(rawOrder entities.Order) *models.Order {
	return &models.Order{
		ID:            rawOrder.ID,
		Number:        rawOrder.Number,
		ParentName:    rawOrder.ParentName,
		ChildrenNames: rawOrder.ChildrenNames,
		Phone:         rawOrder.Phone,
		Comment:       rawOrder.Comment,
		TotalCents:    rawOrder.TotalCents,
		CreatedAt:     rawOrder.CreatedAt,
	}
}
