package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portssvc "github.com/vendorpay/vpa_backend/internal/core/ports/services"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
)

// analyticsHandler handles the read-only reporting routes.
type analyticsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newAnalyticsHandler(rs portssvc.ReportingSvcFacade) *analyticsHandler {
	return &analyticsHandler{reportingService: rs}
}

// RegisterAnalyticsRoutes registers the reporting routes. Both are admin only.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newAnalyticsHandler(rs)

	analytics := rg.Group("/analytics", middleware.RequireRoles(domain.RoleAdmin))
	{
		analytics.GET("/stats", h.getFinancialStats)
		analytics.GET("/payments/last30days", h.getLast30DaysPayments)
	}
}

// getFinancialStats godoc
// @Summary Global financial stats
// @Description Returns the total billed amount, total payment amount and payment count across all records.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.FinancialStatsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/stats [get]
func (h *analyticsHandler) getFinancialStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetGlobalFinancialStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute financial stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialStatsResponse(stats))
}

// getLast30DaysPayments godoc
// @Summary 30-day payment series
// @Description Returns one point per IST calendar day for the last 30 days, oldest first, zero-filled.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/payments/last30days [get]
func (h *analyticsHandler) getLast30DaysPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	series, err := h.reportingService.GetLast30DaysSeries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build 30-day payment series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build payment series"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticsSummaryResponse(series))
}
