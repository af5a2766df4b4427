package entities

import "time"

type Order struct {
	ID            string    `db:"id"`
	Number        string    `db:"number"`
	ParentName    string    `db:"parent_name"`
	ChildrenNames string    `db:"children_names"`
	Phone         string    `db:"phone"`
	Comment       string    `db:"comment"`
	TotalCents    int64     `db:"total_cents"`
	CreatedAt     time.Time `db:"created_at"`
}

type OrderItem struct {
	ID          string `db:"id"`
	OrderID     string `db:"order_id"`
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	PriceCents  int64  `db:"price_cents"`
	Quantity    int    `db:"quantity"`
	Size        string `db:"size"`
	Color       string `db:"color"`
}
