package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/adapters/http/middleware"
	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
	"smartbank-api/internal/pkg/response"
)

// DashboardHandler serves the role-specific dashboard
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the dashboard for the session's role: staff see the
// bank-wide overview, customers see their own account
// @Summary Role-specific dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
// @Security SessionCookie
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	if session == nil {
		return response.Unauthorized(c, "Login required")
	}

	if session.Role == domain.RoleStaff {
		data, err := h.dashboardService.GetStaffDashboard(c.Context())
		if err != nil {
			return response.InternalServerError(c, "Failed to build dashboard")
		}
		return response.Success(c, "", data)
	}

	data, err := h.dashboardService.GetCustomerDashboard(c.Context(), session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer profile not found")
		}
		return response.InternalServerError(c, "Failed to build dashboard")
	}
	return response.Success(c, "", data)
}
