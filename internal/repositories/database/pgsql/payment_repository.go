package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/models"
	"github.com/vendorpay/vpa_backend/internal/utils/mapping"
)

// PgxPaymentRepository handles payment reads, vendor-scoped payment writes
// and the bulk teardown deletes. Project-scoped payment creation/deletion
// lives in PgxLedgerRepository.
type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, letting the ledger
// repository reuse insertPayment inside its transactions.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const paymentColumns = `payment_id, project_id, vendor_id, vendor, company, payment_summary, items, items_total, gst, total, created_at`

// insertPayment writes one payment row. The snapshot and item value objects
// are stored as JSONB documents.
func insertPayment(ctx context.Context, db execer, m models.Payment) error {
	vendorJSON, err := json.Marshal(m.Vendor)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal vendor snapshot for payment "+m.PaymentID, err)
	}
	companyJSON, err := json.Marshal(m.Company)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal company snapshot for payment "+m.PaymentID, err)
	}
	summaryJSON, err := json.Marshal(m.Summary)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal payment summary for payment "+m.PaymentID, err)
	}
	itemsJSON, err := json.Marshal(m.Items)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal items for payment "+m.PaymentID, err)
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = db.Exec(ctx, query,
		m.PaymentID,
		m.ProjectID,
		m.VendorID,
		vendorJSON,
		companyJSON,
		summaryJSON,
		itemsJSON,
		m.ItemsTot,
		m.GST,
		m.Total,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	var vendorJSON, companyJSON, summaryJSON, itemsJSON []byte
	err := row.Scan(
		&m.PaymentID,
		&m.ProjectID,
		&m.VendorID,
		&vendorJSON,
		&companyJSON,
		&summaryJSON,
		&itemsJSON,
		&m.ItemsTot,
		&m.GST,
		&m.Total,
		&m.CreatedAt,
	)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(vendorJSON, &m.Vendor); err != nil {
		return m, fmt.Errorf("failed to unmarshal vendor snapshot for payment %s: %w", m.PaymentID, err)
	}
	if err := json.Unmarshal(companyJSON, &m.Company); err != nil {
		return m, fmt.Errorf("failed to unmarshal company snapshot for payment %s: %w", m.PaymentID, err)
	}
	if err := json.Unmarshal(summaryJSON, &m.Summary); err != nil {
		return m, fmt.Errorf("failed to unmarshal payment summary for payment %s: %w", m.PaymentID, err)
	}
	if err := json.Unmarshal(itemsJSON, &m.Items); err != nil {
		return m, fmt.Errorf("failed to unmarshal items for payment %s: %w", m.PaymentID, err)
	}
	return m, nil
}

// SavePayment persists a vendor-scoped payment. No project ledger is touched.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return insertPayment(ctx, r.db, mapping.ToModelPayment(payment))
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	modelPayment, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

func (r *PgxPaymentRepository) ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE project_id = $1 ORDER BY created_at DESC;`
	return r.listPayments(ctx, query, projectID)
}

func (r *PgxPaymentRepository) ListPaymentsByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE vendor_id = $1 ORDER BY created_at DESC;`
	return r.listPayments(ctx, query, vendorID)
}

func (r *PgxPaymentRepository) listPayments(ctx context.Context, query string, arg any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	var modelPayments []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payments", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// DeletePayment removes a vendor-scoped payment outside any ledger
// transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAllPaymentsByProject removes every payment for the project WITHOUT
// touching the project ledger. Teardown only.
func (r *PgxPaymentRepository) DeleteAllPaymentsByProject(ctx context.Context, projectID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE project_id = $1;`, projectID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete payments for project "+projectID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAllPaymentsByVendor removes every vendor-scoped payment for the
// vendor. Teardown only.
func (r *PgxPaymentRepository) DeleteAllPaymentsByVendor(ctx context.Context, vendorID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete payments for vendor "+vendorID, err)
	}
	return tag.RowsAffected(), nil
}
