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

// projectHandler handles HTTP requests related to projects and the child
// listing routes nested under them.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	billService    portssvc.BillSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newProjectHandler(prs portssvc.ProjectSvcFacade, bs portssvc.BillSvcFacade, pys portssvc.PaymentSvcFacade) *projectHandler {
	return &projectHandler{projectService: prs, billService: bs, paymentService: pys}
}

// RegisterProjectRoutes registers routes related to projects.
func RegisterProjectRoutes(rg *gin.RouterGroup, prs portssvc.ProjectSvcFacade, bs portssvc.BillSvcFacade, pys portssvc.PaymentSvcFacade) {
	h := newProjectHandler(prs, bs, pys)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("/:id", h.getProject)
		projects.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteProject)
		projects.GET("/:id/bills", h.listProjectBills)
		projects.GET("/:id/payments", h.listProjectPayments)
	}
}

// createProject godoc
// @Summary Create a new project
// @Description Creates a project under a vendor with a zeroed billed/paid/balance ledger.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create project", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create project"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// getProject godoc
// @Summary Get a project by ID
// @Description Retrieves a project including its current billed/paid/balance ledger.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else {
			logger.Error("Failed to get project", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve project"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project and its children
// @Description Cascade deletes the project's payments, then bills, then the project record. Admin only.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.DeleteProjectCascade(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else {
			logger.Error("Failed to cascade delete project", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete project"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "projectID": projectID})
}

// listProjectBills godoc
// @Summary List a project's bills
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/bills [get]
func (h *projectHandler) listProjectBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	bills, err := h.billService.ListBillsByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project bills", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bills"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

// listProjectPayments godoc
// @Summary List a project's payments
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/payments [get]
func (h *projectHandler) listProjectPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	payments, err := h.paymentService.ListPaymentsByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project payments", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
