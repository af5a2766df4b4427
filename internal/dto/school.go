package dto

type SchoolInfoUpdateRequest struct {
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	About     *string `json:"about"`
	MapIframe *string `json:"map_iframe"`
}

type SchoolInfoResponse struct {
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	About     string `json:"about"`
	MapIframe string `json:"map_iframe"`
}
