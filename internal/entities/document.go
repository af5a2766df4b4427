package entities

import "time"

type Document struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Audience     string    `db:"audience"`
	Category     string    `db:"category"`
	Path         string    `db:"path"`
	OriginalName string    `db:"original_name"`
	IsPublic     bool      `db:"is_public"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
