package models

type contextKey string

const UserContextKey contextKey = "user"

type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	PassHash []byte `json:"pass_hash"`
}
