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

// userHandler handles the admin-facing user listing.
type userHandler struct {
	authService portssvc.AuthSvcFacade
}

func newUserHandler(as portssvc.AuthSvcFacade) *userHandler {
	return &userHandler{authService: as}
}

// RegisterUserRoutes registers routes related to user accounts.
func RegisterUserRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade) {
	h := newUserHandler(as)

	users := rg.Group("/users", middleware.RequireRoles(domain.RoleAdmin))
	{
		users.GET("", h.listUsers)
	}
}

// listUsers godoc
// @Summary List non-admin users
// @Description Returns every user account except admins, newest first. Admin only.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.authService.ListNonAdminUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}
