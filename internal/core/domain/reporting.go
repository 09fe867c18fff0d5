package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialStats are the global rollup totals over all bills and payments.
type FinancialStats struct {
	TotalBilled       decimal.Decimal `json:"totalBilled"`
	TotalPayments     decimal.Decimal `json:"totalPayments"`
	TotalPaymentCount int             `json:"totalPaymentCount"`
}

// DailyPaymentPoint is one calendar day in the 30-day payment series.
type DailyPaymentPoint struct {
	Day   int             `json:"day"`
	Month string          `json:"month"` // short month name, e.g. "Sep"
	Price decimal.Decimal `json:"price"`
}
