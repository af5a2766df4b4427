package dto

import "time"

type ReviewRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
