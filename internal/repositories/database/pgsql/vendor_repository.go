package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/models"
	"github.com/vendorpay/vpa_backend/internal/utils/mapping"
)

type PgxVendorRepository struct {
	db *pgxpool.Pool
}

func newPgxVendorRepository(db *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{db: db}
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepositoryFacade
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	modelVendor := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendors (vendor_id, name, phone, address, pan, gstin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		modelVendor.VendorID,
		modelVendor.Name,
		modelVendor.Phone,
		modelVendor.Address,
		modelVendor.PAN,
		modelVendor.GSTIN,
		modelVendor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, phone, address, pan, gstin, created_at
		FROM vendors
		WHERE vendor_id = $1;
	`
	var modelVendor models.Vendor
	err := r.db.QueryRow(ctx, query, vendorID).Scan(
		&modelVendor.VendorID,
		&modelVendor.Name,
		&modelVendor.Phone,
		&modelVendor.Address,
		&modelVendor.PAN,
		&modelVendor.GSTIN,
		&modelVendor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}

	domainVendor := mapping.ToDomainVendor(modelVendor)
	return &domainVendor, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, phone, address, pan, gstin, created_at
		FROM vendors
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vendors", err)
	}
	defer rows.Close()

	var modelVendors []models.Vendor
	for rows.Next() {
		var m models.Vendor
		if err := rows.Scan(&m.VendorID, &m.Name, &m.Phone, &m.Address, &m.PAN, &m.GSTIN, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vendor", err)
		}
		modelVendors = append(modelVendors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vendors", err)
	}

	return mapping.ToDomainVendorSlice(modelVendors), nil
}

// DeleteVendor is idempotent: deleting an absent vendor is not an error, so a
// partially failed cascade can be retried.
func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete vendor "+vendorID, err)
	}
	return nil
}
