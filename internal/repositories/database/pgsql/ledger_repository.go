package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/utils/mapping"
)

// PgxLedgerRepository implements the four ledger primitives. Each one is a
// single database transaction pairing the bill/payment row write with the
// owning project's balance update, so a crash between the two writes is
// impossible to observe.
//
// The project UPDATE doubles as the existence precondition: zero rows
// affected means the project is gone, the transaction rolls back, and the
// child write never survives alone. It also takes the project row lock, so
// concurrent mutations on the same project serialize at the storage layer.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for ledger-affecting mutations.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// ledgerErr maps a failed ledger statement to the error taxonomy: a
// serialization failure or deadlock surfaces as ErrConflict so the caller
// knows the transaction lost a race and may retry; everything else is a
// storage failure.
func ledgerErr(msg string, err error) error {
	if isSerializationFailure(err) {
		return apperrors.ErrConflict
	}
	return apperrors.NewAppError(500, msg, err)
}

// commit finishes a ledger transaction, mapping a conflict detected at
// commit time the same way as one detected mid-transaction.
func (r *PgxLedgerRepository) commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return ledgerErr("failed to commit ledger transaction", err)
	}
	return nil
}

const (
	projectBillCreatedQuery = `
		UPDATE projects
		SET billed = billed + $1, balance = balance + $1
		WHERE project_id = $2;
	`
	projectBillDeletedQuery = `
		UPDATE projects
		SET billed = billed - $1, balance = balance - $1
		WHERE project_id = $2;
	`
	// Payment policy: balance is the outstanding amount owed (billed - paid).
	projectPaymentCreatedQuery = `
		UPDATE projects
		SET paid = paid + $1, balance = balance - $1
		WHERE project_id = $2;
	`
	projectPaymentDeletedQuery = `
		UPDATE projects
		SET paid = paid - $1, balance = balance + $1
		WHERE project_id = $2;
	`
)

// ApplyBillCreated inserts the bill and adds its amount to the project's
// billed and balance, atomically.
func (r *PgxLedgerRepository) ApplyBillCreated(ctx context.Context, bill domain.Bill) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	modelBill := mapping.ToModelBill(bill)
	insertQuery := `
		INSERT INTO bills (bill_id, project_id, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelBill.BillID,
		modelBill.ProjectID,
		modelBill.Description,
		modelBill.Amount,
		modelBill.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return ledgerErr("failed to insert bill "+modelBill.BillID, err)
	}

	tag, err := tx.Exec(ctx, projectBillCreatedQuery, modelBill.Amount, modelBill.ProjectID)
	if err != nil {
		return ledgerErr("failed to update project ledger for bill "+modelBill.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		// Project absent: rollback discards the bill insert as well.
		return apperrors.ErrNotFound
	}

	return r.commit(ctx, tx)
}

// ApplyBillDeleted deletes the bill and subtracts its amount from the
// project's billed and balance, atomically.
func (r *PgxLedgerRepository) ApplyBillDeleted(ctx context.Context, billID, projectID string, amount decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return ledgerErr("failed to delete bill "+billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	tag, err = tx.Exec(ctx, projectBillDeletedQuery, amount, projectID)
	if err != nil {
		return ledgerErr("failed to reverse project ledger for bill "+billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.commit(ctx, tx)
}

// ApplyPaymentCreated inserts a project-scoped payment and applies
// paid += total, balance -= total to the project, atomically.
func (r *PgxLedgerRepository) ApplyPaymentCreated(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelPayment := mapping.ToModelPayment(payment)
	if err := insertPayment(ctx, tx, modelPayment); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, projectPaymentCreatedQuery, modelPayment.Total, modelPayment.ProjectID)
	if err != nil {
		return ledgerErr("failed to update project ledger for payment "+modelPayment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.commit(ctx, tx)
}

// ApplyPaymentDeleted deletes a project-scoped payment and applies the exact
// inverse of its creation: paid -= total, balance += total, atomically.
func (r *PgxLedgerRepository) ApplyPaymentDeleted(ctx context.Context, paymentID, projectID string, total decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return ledgerErr("failed to delete payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	tag, err = tx.Exec(ctx, projectPaymentDeletedQuery, total, projectID)
	if err != nil {
		return ledgerErr("failed to reverse project ledger for payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.commit(ctx, tx)
}
