package domain

import "time"

// User represents a registered account of the system.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the resolved caller of an authenticated request. It never
// carries the password hash or the raw token.
type Identity struct {
	ID    string
	Email string
}
