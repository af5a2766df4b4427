package dto

import "time"

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type OrderRequest struct {
	ParentName    string             `json:"parent_name"`
	ChildrenNames string             `json:"children_names"`
	Phone         string             `json:"phone"`
	Comment       string             `json:"comment"`
	Total         string             `json:"total"`
	Items         []OrderItemRequest `json:"items"`
}

type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	ParentName    string              `json:"parent_name"`
	ChildrenNames string              `json:"children_names"`
	Phone         string              `json:"phone"`
	Comment       string              `json:"comment"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}
