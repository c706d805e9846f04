package domain

import "time"

// User is the identity record owned by the auth service. Users are immutable
// after registration; there is no password reset or verification flow.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
