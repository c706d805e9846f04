package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/marketplace/internal/domain"
	"github.com/spec-kit/marketplace/internal/events"
	"github.com/spec-kit/marketplace/internal/repository"
	apperrors "github.com/spec-kit/marketplace/pkg/util"
)

// VendorService coordinates vendor profile and store workflows. All data
// access is scoped to the userID derived from the caller's token; client
// supplied identifiers are never used for lookups.
type VendorService struct {
	vendors    repository.VendorRepository
	stores     repository.StoreRepository
	dispatcher events.Dispatcher
}

// VendorDependencies bundles repositories for the vendor service.
type VendorDependencies struct {
	VendorRepo repository.VendorRepository
	StoreRepo  repository.StoreRepository
	Dispatcher events.Dispatcher
}

// VendorProfileInput describes vendor profile creation payload.
type VendorProfileInput struct {
	BusinessName string
	BusinessType string
	Description  *string
	ContactPhone *string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
}

// StoreCreateInput describes store creation payload. Slug may be empty, in
// which case it is derived from the name.
type StoreCreateInput struct {
	Name        string
	Slug        string
	Description *string
}

// NewVendorService constructs the service.
func NewVendorService(deps VendorDependencies) *VendorService {
	return &VendorService{
		vendors:    deps.VendorRepo,
		stores:     deps.StoreRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateProfile creates the vendor profile for a user. Each user owns at most
// one profile.
func (s *VendorService) CreateProfile(ctx context.Context, userID string, input VendorProfileInput) (*domain.Vendor, error) {
	if _, err := s.vendors.GetByUserID(ctx, userID); err == nil {
		return nil, apperrors.NewConflict("vendor profile already exists for this user", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	vendor := &domain.Vendor{
		ID:           uuid.NewString(),
		UserID:       userID,
		BusinessName: strings.TrimSpace(input.BusinessName),
		BusinessType: strings.TrimSpace(input.BusinessType),
		Description:  input.Description,
		ContactPhone: input.ContactPhone,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Country:      input.Country,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventVendorCreated,
		SubjectID: vendor.ID,
		Payload: events.VendorCreatedPayload{
			UserID:       vendor.UserID,
			BusinessName: vendor.BusinessName,
			BusinessType: vendor.BusinessType,
		},
	})
	return vendor, nil
}

// GetProfile returns the caller's vendor profile with its stores.
func (s *VendorService) GetProfile(ctx context.Context, userID string) (*domain.Vendor, []domain.Store, error) {
	vendor, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("vendor profile", nil)
		}
		return nil, nil, err
	}

	stores, err := s.stores.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, nil, err
	}
	return vendor, stores, nil
}

// CreateStore creates a store under the caller's vendor profile.
func (s *VendorService) CreateStore(ctx context.Context, userID string, input StoreCreateInput) (*domain.Store, error) {
	vendor, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor profile", nil)
		}
		return nil, err
	}

	storeSlug := strings.TrimSpace(input.Slug)
	if storeSlug == "" {
		// a name with no slugifiable characters yields an empty slug
		storeSlug = slug.Make(input.Name)
	}
	if !slug.IsSlug(storeSlug) {
		return nil, apperrors.NewValidationError("slug must contain only lowercase letters, digits and hyphens", map[string]any{"slug": storeSlug})
	}

	if _, err := s.stores.GetBySlug(ctx, storeSlug); err == nil {
		return nil, apperrors.NewConflict("store slug already exists", map[string]any{"slug": storeSlug})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	store := &domain.Store{
		ID:          uuid.NewString(),
		VendorID:    vendor.ID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        storeSlug,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventStoreCreated,
		SubjectID: store.ID,
		Payload: events.StoreCreatedPayload{
			VendorID: store.VendorID,
			Name:     store.Name,
			Slug:     store.Slug,
		},
	})
	return store, nil
}

// ListStores returns all stores owned by the caller's vendor profile.
func (s *VendorService) ListStores(ctx context.Context, userID string) ([]domain.Store, error) {
	vendor, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor profile", nil)
		}
		return nil, err
	}
	return s.stores.ListByVendor(ctx, vendor.ID)
}

func (s *VendorService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
