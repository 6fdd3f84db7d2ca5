package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/config"
	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
	"smartbank-api/internal/pkg/response"
	"smartbank-api/internal/pkg/storage"
	"smartbank-api/internal/pkg/token"
)

// SessionLocal is the context key for the authenticated session
const SessionLocal = "session"

// sessionCookie is the browser cookie holding the signed session
const sessionCookie = "smartbank_session"

// CookieStore adapts the request's cookie jar to the storage.Store
// interface, so the session service reads and writes the browser's
// durable storage without knowing about HTTP. Values are wrapped in a
// signed token: a tampered or otherwise corrupt cookie verifies to
// nothing and the session service treats it as absent.
type CookieStore struct {
	c   *fiber.Ctx
	cfg *config.Config
}

// NewCookieStore creates a cookie-backed store for one request
func NewCookieStore(c *fiber.Ctx, cfg *config.Config) *CookieStore {
	return &CookieStore{c: c, cfg: cfg}
}

var _ storage.Store = (*CookieStore)(nil)

// Get returns the verified payload of the session cookie
func (s *CookieStore) Get(key string) (string, bool) {
	raw := s.c.Cookies(cookieName(key))
	if raw == "" {
		return "", false
	}

	payload, err := token.Verify(raw, s.cfg.Session.Secret)
	if err != nil {
		return "", false
	}
	return payload, true
}

// Set writes the signed payload as a cookie on the response
func (s *CookieStore) Set(key, value string) {
	signed, err := token.Sign(value, s.cfg.Session.Secret)
	if err != nil {
		return
	}

	s.c.Cookie(&fiber.Cookie{
		Name:     cookieName(key),
		Value:    signed,
		Path:     "/",
		Domain:   s.cfg.Session.Domain,
		SameSite: s.cfg.Session.SameSite,
		Secure:   s.cfg.Session.Secure,
		HTTPOnly: true,
		// Session persists for the browser context; no token expiry
		// exists in the session model, so the cookie is simply
		// long-lived.
		Expires: time.Now().AddDate(1, 0, 0),
	})
}

// Remove expires the cookie
func (s *CookieStore) Remove(key string) {
	s.c.Cookie(&fiber.Cookie{
		Name:     cookieName(key),
		Value:    "",
		Path:     "/",
		Domain:   s.cfg.Session.Domain,
		SameSite: s.cfg.Session.SameSite,
		Secure:   s.cfg.Session.Secure,
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}

func cookieName(key string) string {
	if key == "user" {
		return sessionCookie
	}
	return sessionCookie + "_" + key
}

// SessionService returns a session service bound to this request's cookies
func SessionService(c *fiber.Ctx, cfg *config.Config) *services.SessionService {
	return services.NewSessionService(NewCookieStore(c, cfg))
}

// SessionGuard renders protected routes only when a current session
// exists; otherwise the caller is redirected to login with a 401. The
// session is re-read on every request, so externally cleared storage is
// observed lazily here.
func SessionGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionService(c, cfg).Current()
		if session == nil {
			return response.Unauthorized(c, "Login required")
		}

		c.Locals(SessionLocal, session)
		return c.Next()
	}
}

// RequireRole rejects the request unless the session's role is in the
// allowed set. Must run after SessionGuard.
func RequireRole(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFromCtx(c)
		if !services.Authorize(session, allowedRoles...) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session set by SessionGuard, or nil
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(SessionLocal).(*domain.Session)
	return session
}
