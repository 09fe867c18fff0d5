package services

import (
	"context"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// ReportingSvcFacade exposes read-only analytics rollups.
type ReportingSvcFacade interface {
	// GetGlobalFinancialStats returns the global billed/paid totals.
	GetGlobalFinancialStats(ctx context.Context) (*domain.FinancialStats, error)

	// GetLast30DaysSeries returns one point per IST calendar day for the last
	// 30 days, oldest first, zero-filled for days without payments.
	GetLast30DaysSeries(ctx context.Context) ([]domain.DailyPaymentPoint, error)
}
