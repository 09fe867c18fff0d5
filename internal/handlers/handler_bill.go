package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorpay/vpa_backend/internal/apperrors"
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	portssvc "github.com/vendorpay/vpa_backend/internal/core/ports/services"
	"github.com/vendorpay/vpa_backend/internal/dto"
	"github.com/vendorpay/vpa_backend/internal/middleware"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billService: bs}
}

// RegisterBillRoutes registers routes related to bills.
func RegisterBillRoutes(rg *gin.RouterGroup, bs portssvc.BillSvcFacade) {
	h := newBillHandler(bs)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteBill)
	}
}

// createBill godoc
// @Summary Raise a bill against a project
// @Description Creates a bill and atomically adds its amount to the project's billed and balance.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Ledger update conflicted"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Ledger update conflicted, retry the request"})
		} else {
			logger.Error("Failed to create bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create bill"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Removes a bill and atomically reverses its ledger effect on the project. Admin only.
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Ledger update conflicted"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")

	if err := h.billService.DeleteBill(c.Request.Context(), billID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bill not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Ledger update conflicted, retry the request"})
		} else {
			logger.Error("Failed to delete bill", slog.String("error", err.Error()), slog.String("bill_id", billID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete bill"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully", "billID": billID})
}
