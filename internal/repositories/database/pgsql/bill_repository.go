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

// PgxBillRepository handles bill reads and the bulk teardown delete. Single
// bill creation/deletion lives in PgxLedgerRepository so it can never skip
// the project ledger update.
type PgxBillRepository struct {
	db *pgxpool.Pool
}

func newPgxBillRepository(db *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{db: db}
}

// Ensure PgxBillRepository implements portsrepo.BillRepositoryFacade
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `
		SELECT bill_id, project_id, description, amount, created_at
		FROM bills
		WHERE bill_id = $1;
	`
	var modelBill models.Bill
	err := r.db.QueryRow(ctx, query, billID).Scan(
		&modelBill.BillID,
		&modelBill.ProjectID,
		&modelBill.Description,
		&modelBill.Amount,
		&modelBill.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	domainBill := mapping.ToDomainBill(modelBill)
	return &domainBill, nil
}

func (r *PgxBillRepository) ListBillsByProject(ctx context.Context, projectID string) ([]domain.Bill, error) {
	query := `
		SELECT bill_id, project_id, description, amount, created_at
		FROM bills
		WHERE project_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills for project "+projectID, err)
	}
	defer rows.Close()

	var modelBills []models.Bill
	for rows.Next() {
		var m models.Bill
		if err := rows.Scan(&m.BillID, &m.ProjectID, &m.Description, &m.Amount, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill", err)
		}
		modelBills = append(modelBills, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bills", err)
	}

	return mapping.ToDomainBillSlice(modelBills), nil
}

// DeleteAllBillsByProject removes every bill for the project WITHOUT touching
// the project ledger. Teardown only: the project row is deleted right after.
func (r *PgxBillRepository) DeleteAllBillsByProject(ctx context.Context, projectID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bills WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete bills for project "+projectID, err)
	}
	return tag.RowsAffected(), nil
}
