package models

import "time"

type MerchCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	CategoryID  string         `json:"category_id"`
	Category    string         `json:"category"`
	InStock     bool           `json:"in_stock"`
	Sizes       []string       `json:"sizes"`
	Colors      []string       `json:"colors"`
	Images      []ProductImage `json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Path       string    `json:"path"`
	SortOrder  int       `json:"sort_order"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ProductFilter struct {
	Category string
	Search   string
	InStock  *bool
	Page     int
	Limit    int
}
