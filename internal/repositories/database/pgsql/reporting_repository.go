package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
)

type ReportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{db: db}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetGlobalFinancialStats aggregates over all bills and payments. The two
// aggregates are separate statements and are not isolated from concurrent
// ledger transactions; acceptable for analytics.
func (r *ReportingRepository) GetGlobalFinancialStats(ctx context.Context) (*domain.FinancialStats, error) {
	stats := domain.FinancialStats{}

	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM bills;`).Scan(&stats.TotalBilled)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum bill amounts", err)
	}

	err = r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0), COUNT(*) FROM payments;`).
		Scan(&stats.TotalPayments, &stats.TotalPaymentCount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum payment totals", err)
	}

	return &stats, nil
}

// SumPaymentTotalsByDay groups payment totals by IST calendar day. Timestamps
// are stored as IST-shifted ISO-8601 text, so the date is the first 10 bytes
// and lexicographic comparison orders days correctly.
func (r *ReportingRepository) SumPaymentTotalsByDay(ctx context.Context, sinceDay string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT substr(created_at, 1, 10) AS day, SUM(total)
		FROM payments
		WHERE substr(created_at, 1, 10) >= $1
		GROUP BY day;
	`
	rows, err := r.db.Query(ctx, query, sinceDay)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment totals by day", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var day string
		var sum decimal.Decimal
		if err := rows.Scan(&day, &sum); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily payment total", err)
		}
		totals[day] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating daily payment totals", err)
	}

	return totals, nil
}
