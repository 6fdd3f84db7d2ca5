package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
	"smartbank-api/internal/pkg/response"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns all customers
// @Summary List customers
// @Description List all customers (staff only)
// @Tags Customers
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /customers/ [get]
// @Security SessionCookie
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list customers")
	}
	return response.Success(c, "", customers)
}

// GetByID returns one customer profile
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
// @Security SessionCookie
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	customer, err := h.customerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to get customer")
	}

	return response.Success(c, "", customer)
}
