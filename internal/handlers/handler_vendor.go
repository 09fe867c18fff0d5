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

// vendorHandler handles HTTP requests related to vendors, including the
// vendor-scoped payment routes and the cascade delete.
type vendorHandler struct {
	vendorService  portssvc.VendorSvcFacade
	projectService portssvc.ProjectSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade, prs portssvc.ProjectSvcFacade, pys portssvc.PaymentSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs, projectService: prs, paymentService: pys}
}

// RegisterVendorRoutes registers routes related to vendors.
func RegisterVendorRoutes(rg *gin.RouterGroup, vs portssvc.VendorSvcFacade, prs portssvc.ProjectSvcFacade, pys portssvc.PaymentSvcFacade) {
	h := newVendorHandler(vs, prs, pys)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteVendor)
		vendors.GET("/:id/projects", h.listVendorProjects)
		vendors.POST("/:id/payments", h.createVendorPayment)
		vendors.GET("/:id/payments", h.listVendorPayments)
		vendors.DELETE("/:id/payments", middleware.RequireRoles(domain.RoleAdmin), h.deleteVendorPayments)
	}
}

// createVendor godoc
// @Summary Register a new vendor
// @Description Creates a vendor identity record. PAN format is validated; GSTIN is optional.
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create vendor"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List all vendors
// @Tags vendors
// @Produce json
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list vendors"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to get vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve vendor"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// deleteVendor godoc
// @Summary Delete a vendor and everything it owns
// @Description Cascade deletes the vendor's projects, their bills and payments, vendor-scoped payments, and the vendor itself. Admin only.
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.DeleteVendorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	deletedProjects, err := h.vendorService.DeleteVendorCascade(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to cascade delete vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteVendorResponse{VendorID: vendorID, DeletedProjects: deletedProjects})
}

// listVendorProjects godoc
// @Summary List a vendor's projects
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/projects [get]
func (h *vendorHandler) listVendorProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	projects, err := h.projectService.ListProjectsByVendor(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to list vendor projects", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list projects"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// createVendorPayment godoc
// @Summary Create a vendor-scoped payment
// @Description Creates a payment voucher attached directly to the vendor, with no project ledger effect.
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param payment body dto.CreatePaymentV2Request true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/payments [post]
func (h *vendorHandler) createVendorPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentV2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	// The path is the authority on which vendor is being paid.
	req.VendorID = c.Param("id")

	payment, err := h.paymentService.CreatePaymentV2(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to create vendor payment", slog.String("error", err.Error()), slog.String("vendor_id", req.VendorID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listVendorPayments godoc
// @Summary List a vendor's vendor-scoped payments
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/payments [get]
func (h *vendorHandler) listVendorPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	payments, err := h.paymentService.ListPaymentsByVendor(c.Request.Context(), vendorID)
	if err != nil {
		logger.Error("Failed to list vendor payments", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// deleteVendorPayments godoc
// @Summary Delete all of a vendor's vendor-scoped payments
// @Description Bulk removes every vendor-scoped payment for the vendor. Admin only.
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id}/payments [delete]
func (h *vendorHandler) deleteVendorPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	count, err := h.paymentService.DeleteAllPaymentsByVendor(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to delete vendor payments", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payments"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendorID": vendorID, "deletedPayments": count})
}
