package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace/internal/domain"
)

// VendorRepository encapsulates vendor profile persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Vendor, error)
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository returns a Postgres-backed implementation.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (id, user_id, business_name, business_type, description, contact_phone,
                             address, city, state, zip_code, country)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.BusinessName,
		vendor.BusinessType,
		vendor.Description,
		vendor.ContactPhone,
		vendor.Address,
		vendor.City,
		vendor.State,
		vendor.ZipCode,
		vendor.Country,
	).Scan(&vendor.CreatedAt, &vendor.UpdatedAt)
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	const query = `
        SELECT id, user_id, business_name, business_type, description, contact_phone,
               address, city, state, zip_code, country, created_at, updated_at
        FROM vendors WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *vendorRepository) GetByUserID(ctx context.Context, userID string) (*domain.Vendor, error) {
	const query = `
        SELECT id, user_id, business_name, business_type, description, contact_phone,
               address, city, state, zip_code, country, created_at, updated_at
        FROM vendors WHERE user_id=$1`
	return r.fetchSingle(ctx, query, userID)
}

func (r *vendorRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.BusinessName,
		&vendor.BusinessType,
		&vendor.Description,
		&vendor.ContactPhone,
		&vendor.Address,
		&vendor.City,
		&vendor.State,
		&vendor.ZipCode,
		&vendor.Country,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &vendor, nil
}
