package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portsrepo "github.com/vendorpay/vpa_backend/internal/core/ports/repositories"
	"github.com/vendorpay/vpa_backend/internal/middleware"
	"github.com/vendorpay/vpa_backend/internal/utils/timeutils"
)

const seriesDays = 30

// ReportingService exposes read-only analytics rollups.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

func (s *ReportingService) GetGlobalFinancialStats(ctx context.Context) (*domain.FinancialStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	stats, err := s.reportingRepo.GetGlobalFinancialStats(ctx)
	if err != nil {
		logger.Error("Failed to compute financial stats", slog.String("error", err.Error()))
		return nil, err
	}
	return stats, nil
}

// GetLast30DaysSeries returns one point per IST calendar day, oldest first.
// Days without any payment appear with a zero price so chart consumers never
// have to fill gaps themselves.
func (s *ReportingService) GetLast30DaysSeries(ctx context.Context) ([]domain.DailyPaymentPoint, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	today := timeutils.NowIST().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(seriesDays - 1))

	totals, err := s.reportingRepo.SumPaymentTotalsByDay(ctx, start.Format("2006-01-02"))
	if err != nil {
		logger.Error("Failed to sum payment totals by day", slog.String("error", err.Error()))
		return nil, err
	}

	series := make([]domain.DailyPaymentPoint, 0, seriesDays)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		price, ok := totals[d.Format("2006-01-02")]
		if !ok {
			price = decimal.Zero
		}
		series = append(series, domain.DailyPaymentPoint{
			Day:   d.Day(),
			Month: d.Format("Jan"),
			Price: price,
		})
	}
	return series, nil
}
