package entities

type Teacher struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Subject      string `db:"subject"`
	Bio          string `db:"bio"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PhotoPath    string `db:"photo_path"`
	IsActive     bool   `db:"is_active"`
	DisplayOrder int    `db:"display_order"`
}
