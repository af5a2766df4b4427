package entities

import "time"

type Review struct {
	ID        string    `db:"id"`
	Author    string    `db:"author"`
	Text      string    `db:"text"`
	Rating    int       `db:"rating"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}
