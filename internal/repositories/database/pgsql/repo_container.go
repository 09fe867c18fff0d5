package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	vendorRepo := newPgxVendorRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	billRepo := newPgxBillRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		VendorRepo:    vendorRepo,
		ProjectRepo:   projectRepo,
		LedgerRepo:    ledgerRepo,
		BillRepo:      billRepo,
		PaymentRepo:   paymentRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
	}
}
