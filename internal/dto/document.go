package dto

import "time"

type UploadMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Category    string `json:"category"`
	IsPublic    *bool  `json:"is_public"`
}

type DocumentResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Audience     string    `json:"audience"`
	Category     string    `json:"category"`
	OriginalName string    `json:"original_name"`
	IsPublic     bool      `json:"is_public"`
	UploadedAt   time.Time `json:"uploaded_at"`
	DownloadURL  string    `json:"download_url"`
}
