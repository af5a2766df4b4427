package entities

type SchoolInfo struct {
	ID        int    `db:"id"`
	Address   string `db:"address"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	About     string `db:"about"`
	MapIframe string `db:"map_iframe"`
}
