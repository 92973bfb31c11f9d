package domain

import "time"

// User is an account that owns projects.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
