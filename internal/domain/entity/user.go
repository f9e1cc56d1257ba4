package entity

import "time"

// User is the authentication principal. The marketplace identity (name, role,
// location) lives in Profile; User only carries credentials.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
