package entity

import "time"

// User is an account that owns companies and customers.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
