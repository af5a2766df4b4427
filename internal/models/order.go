package models

import "time"

type Order struct {
	ID            string      `json:"id"`
	Number        string      `json:"number"`
	ParentName    string      `json:"parent_name"`
	ChildrenNames string      `json:"children_names"`
	Phone         string      `json:"phone"`
	Comment       string      `json:"comment"`
	TotalCents    int64       `json:"total_cents"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Color       string `json:"color"`
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}
