package handlers

import (
	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/config"
)

// HealthHandler handles health and root endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Root handles the root endpoint
// @Summary API information
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Smart Retail Banking Dashboard API",
		"version": "1.0.0",
		"docs":    "/swagger/index.html",
		"endpoints": fiber.Map{
			"auth":            "/auth",
			"customers":       "/customers",
			"transactions":    "/transactions",
			"loan_prediction": "/loan/predict",
			"health":          "/health",
		},
	})
}

// HealthCheck handles the health endpoint
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := "healthy"

	if !h.cfg.IsMock() {
		if err := config.HealthCheck(); err != nil {
			status = "degraded"
		}
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"service": "banking-api",
		"mode":    h.cfg.DataMode,
	})
}
