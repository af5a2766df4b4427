package dto

type TeacherMeta struct {
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type TeacherUpdateRequest struct {
	Name         *string `json:"name"`
	Subject      *string `json:"subject"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PhotoPath    *string `json:"photo_path"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

type TeacherResponse struct {
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
