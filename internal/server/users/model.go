package users

import "time"

// User is a stored identity record. Username and Email are unique and
// immutable after creation. PasswordHash and Salt never leave the
// server; handlers expose only Username and Email.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Salt         string
	Email        string
	CreatedAt    time.Time
}
