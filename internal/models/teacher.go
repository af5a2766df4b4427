package models

type Teacher struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PhotoPath    string `json:"photo_path"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}
