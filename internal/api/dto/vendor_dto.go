package dto

import (
	"time"

	"github.com/spec-kit/marketplace/internal/domain"
	apperrors "github.com/spec-kit/marketplace/pkg/util"
)

// CreateVendorRequest payload for vendor profile creation.
type CreateVendorRequest struct {
	BusinessName string  `json:"businessName"`
	BusinessType string  `json:"businessType"`
	Description  *string `json:"description,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	Country      string  `json:"country"`
}

// Validate checks required vendor fields.
func (r CreateVendorRequest) Validate() error {
	missing := make([]string, 0)
	for field, value := range map[string]string{
		"businessName": r.BusinessName,
		"businessType": r.BusinessType,
		"address":      r.Address,
		"city":         r.City,
		"state":        r.State,
		"zipCode":      r.ZipCode,
		"country":      r.Country,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}
	return nil
}

// CreateStoreRequest payload for store creation.
type CreateStoreRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// Validate checks required store fields. Slug format and uniqueness are
// enforced by the service.
func (r CreateStoreRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	return nil
}

// StoreResponse is the public view of a store.
type StoreResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendorId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VendorResponse is the public view of a vendor profile, optionally with its
// stores attached.
type VendorResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	BusinessName string          `json:"businessName"`
	BusinessType string          `json:"businessType"`
	Description  *string         `json:"description,omitempty"`
	ContactPhone *string         `json:"contactPhone,omitempty"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	ZipCode      string          `json:"zipCode"`
	Country      string          `json:"country"`
	CreatedAt    time.Time       `json:"createdAt"`
	Stores       []StoreResponse `json:"stores,omitempty"`
}

// NewStoreResponse maps a domain store.
func NewStoreResponse(store *domain.Store) StoreResponse {
	return StoreResponse{
		ID:          store.ID,
		VendorID:    store.VendorID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		IsActive:    store.IsActive,
		CreatedAt:   store.CreatedAt,
	}
}

// NewVendorResponse maps a domain vendor with its stores.
func NewVendorResponse(vendor *domain.Vendor, stores []domain.Store) VendorResponse {
	resp := VendorResponse{
		ID:           vendor.ID,
		UserID:       vendor.UserID,
		BusinessName: vendor.BusinessName,
		BusinessType: vendor.BusinessType,
		Description:  vendor.Description,
		ContactPhone: vendor.ContactPhone,
		Address:      vendor.Address,
		City:         vendor.City,
		State:        vendor.State,
		ZipCode:      vendor.ZipCode,
		Country:      vendor.Country,
		CreatedAt:    vendor.CreatedAt,
	}
	for i := range stores {
		resp.Stores = append(resp.Stores, NewStoreResponse(&stores[i]))
	}
	return resp
}
