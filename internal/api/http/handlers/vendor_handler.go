package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace/internal/api/dto"
	"github.com/spec-kit/marketplace/internal/auth"
	"github.com/spec-kit/marketplace/internal/service"
	apperrors "github.com/spec-kit/marketplace/pkg/util"
)

// VendorHandler exposes ownership-gated vendor and store endpoints.
type VendorHandler struct {
	service *service.VendorService
}

// NewVendorHandler constructs handler.
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{service: vendorService}
}

// CreateProfile handles POST /vendor/profile.
func (h *VendorHandler) CreateProfile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	vendor, err := h.service.CreateProfile(c.Context(), claims.UserID, service.VendorProfileInput{
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Vendor profile created successfully",
		"vendor":  dto.NewVendorResponse(vendor, nil),
	})
}

// GetProfile handles GET /vendor/profile.
func (h *VendorHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	vendor, stores, err := h.service.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVendorResponse(vendor, stores))
}

// GetProfileByID handles GET /vendor/profile/:vendorId, the admin-view
// consistency check. The profile is resolved from the token first; the path
// ID is only compared afterwards, so a caller without a profile still gets
// NotFound and a mismatched ID gets Unauthorized.
func (h *VendorHandler) GetProfileByID(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	vendor, stores, err := h.service.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	if vendor.ID != c.Params("vendorId") {
		return apperrors.NewUnauthorized("unauthorized")
	}
	return c.JSON(dto.NewVendorResponse(vendor, stores))
}

// CreateStore handles POST /vendor/stores.
func (h *VendorHandler) CreateStore(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	store, err := h.service.CreateStore(c.Context(), claims.UserID, service.StoreCreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Store created successfully",
		"store":   dto.NewStoreResponse(store),
	})
}

// ListStores handles GET /vendor/stores.
func (h *VendorHandler) ListStores(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stores, err := h.service.ListStores(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	items := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		items = append(items, dto.NewStoreResponse(&stores[i]))
	}
	return c.JSON(items)
}
