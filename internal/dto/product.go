package dto

import "time"

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"in_stock"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
}

type ProductUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Category    *string   `json:"category"`
	InStock     *bool     `json:"in_stock"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
}

type ProductImageResponse struct {
	ID        string `json:"id"`
	Path      string `json:"path"`
	SortOrder int    `json:"sort_order"`
}

type ProductResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       string                 `json:"price"`
	Category    string                 `json:"category"`
	InStock     bool                   `json:"in_stock"`
	Sizes       []string               `json:"sizes"`
	Colors      []string               `json:"colors"`
	Images      []ProductImageResponse `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
