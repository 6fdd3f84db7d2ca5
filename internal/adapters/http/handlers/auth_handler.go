package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/adapters/http/middleware"
	"smartbank-api/internal/config"
	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/pkg/response"
)

// AuthHandler handles session endpoints. Each request gets a session
// service bound to its own cookie store, so the browser cookie is the
// durable storage the session model writes through.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionPayload is the session plus its role-filtered navigation
type sessionPayload struct {
	User *domain.Session  `json:"user"`
	Nav  []domain.NavItem `json:"nav"`
}

// Login handles user login
// @Summary Login with demo credentials
// @Description Authenticate against the demo credential table and set the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := middleware.SessionService(c, h.cfg)

	session, err := svc.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", sessionPayload{
		User: session,
		Nav:  svc.NavItems(session),
	})
}

// Logout handles user logout
// @Summary Logout
// @Description Clear the session cookie. Idempotent; succeeds even without a session.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.SessionService(c, h.cfg).Logout()
	return response.Success(c, "Logged out", nil)
}

// Me returns the current session
// @Summary Current session
// @Description Return the authenticated principal and its navigation entries
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	svc := middleware.SessionService(c, h.cfg)

	session := svc.Current()
	if session == nil {
		return response.Unauthorized(c, "Not logged in")
	}

	return response.Success(c, "", sessionPayload{
		User: session,
		Nav:  svc.NavItems(session),
	})
}
