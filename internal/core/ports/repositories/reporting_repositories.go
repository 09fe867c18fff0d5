package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// ReportingRepository provides read-only rollups over bills and payments.
// These reads are not isolated from concurrent ledger transactions; that is
// acceptable for analytics and must not be used for ledger consistency.
type ReportingRepository interface {
	// GetGlobalFinancialStats returns the global totals over all bills and
	// payments.
	GetGlobalFinancialStats(ctx context.Context) (*domain.FinancialStats, error)

	// SumPaymentTotalsByDay returns the sum of payment totals grouped by
	// IST calendar day (YYYY-MM-DD key), for days on or after sinceDay.
	SumPaymentTotalsByDay(ctx context.Context, sinceDay string) (map[string]decimal.Decimal, error)
}
