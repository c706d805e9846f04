package domain

import "time"

// Store is a customer-facing storefront owned by a vendor. The slug is unique
// across the whole platform, not per vendor.
type Store struct {
	ID          string
	VendorID    string
	Name        string
	Slug        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
