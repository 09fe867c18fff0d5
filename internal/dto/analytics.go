package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// FinancialStatsResponse wraps the global rollup totals.
type FinancialStatsResponse struct {
	TotalBilled       decimal.Decimal `json:"totalBilled"`
	TotalPayments     decimal.Decimal `json:"totalPayments"`
	TotalPaymentCount int             `json:"totalPaymentCount"`
}

// ToFinancialStatsResponse converts domain.FinancialStats to its DTO.
func ToFinancialStatsResponse(s *domain.FinancialStats) FinancialStatsResponse {
	return FinancialStatsResponse{
		TotalBilled:       s.TotalBilled,
		TotalPayments:     s.TotalPayments,
		TotalPaymentCount: s.TotalPaymentCount,
	}
}

// DailyPaymentPointResponse is one day in the 30-day payment series.
type DailyPaymentPointResponse struct {
	Day   int             `json:"day"`
	Month string          `json:"month"`
	Price decimal.Decimal `json:"price"`
}

// AnalyticsSummaryResponse wraps the 30-day payment series.
type AnalyticsSummaryResponse struct {
	Last30DaysPayments []DailyPaymentPointResponse `json:"last30DaysPayments"`
}

// ToAnalyticsSummaryResponse converts the domain series to its DTO.
func ToAnalyticsSummaryResponse(series []domain.DailyPaymentPoint) AnalyticsSummaryResponse {
	points := make([]DailyPaymentPointResponse, len(series))
	for i, p := range series {
		points[i] = DailyPaymentPointResponse{Day: p.Day, Month: p.Month, Price: p.Price}
	}
	return AnalyticsSummaryResponse{Last30DaysPayments: points}
}
