package domain

import "time"

// Vendor is a business profile owned by exactly one user.
type Vendor struct {
	ID           string
	UserID       string
	BusinessName string
	BusinessType string
	Description  *string
	ContactPhone *string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
