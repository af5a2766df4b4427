package models

// SchoolInfoID is the fixed id of the single school info row.
const SchoolInfoID = 1

type SchoolInfo struct {
	ID        int    `json:"id"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	About     string `json:"about"`
	MapIframe string `json:"map_iframe"`
}
