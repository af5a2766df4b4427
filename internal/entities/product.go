package entities

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type MerchCategory struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Slug         string `db:"slug"`
	ProductCount int    `db:"product_count"`
}

type Product struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	PriceCents  int64          `db:"price_cents"`
	CategoryID  sql.NullString `db:"category_id"`
	Category    sql.NullString `db:"category"`
	InStock     bool           `db:"in_stock"`
	Sizes       pq.StringArray `db:"sizes"`
	Colors      pq.StringArray `db:"colors"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type ProductImage struct {
	ID         string    `db:"id"`
	ProductID  string    `db:"product_id"`
	Path       string    `db:"path"`
	SortOrder  int       `db:"sort_order"`
	UploadedAt time.Time `db:"uploaded_at"`
}
