package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace/internal/domain"
)

// StoreRepository encapsulates store persistence.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetBySlug(ctx context.Context, slug string) (*domain.Store, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Store, error)
}

type storeRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository returns a Postgres-backed implementation.
func NewStoreRepository(pool *pgxpool.Pool) StoreRepository {
	return &storeRepository{pool: pool}
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (id, vendor_id, name, slug, description, is_active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		store.ID,
		store.VendorID,
		store.Name,
		store.Slug,
		store.Description,
		store.IsActive,
	).Scan(&store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) GetBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	const query = `
        SELECT id, vendor_id, name, slug, description, is_active, created_at, updated_at
        FROM stores WHERE slug=$1`

	var store domain.Store
	if err := r.pool.QueryRow(ctx, query, slug).Scan(
		&store.ID,
		&store.VendorID,
		&store.Name,
		&store.Slug,
		&store.Description,
		&store.IsActive,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Store, error) {
	const query = `
        SELECT id, vendor_id, name, slug, description, is_active, created_at, updated_at
        FROM stores WHERE vendor_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.ID,
			&store.VendorID,
			&store.Name,
			&store.Slug,
			&store.Description,
			&store.IsActive,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}
