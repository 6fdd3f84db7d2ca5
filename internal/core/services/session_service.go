package services

import (
	"context"
	"encoding/json"
	"strings"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/pkg/storage"
)

// sessionKey is the single key the session occupies in client storage
const sessionKey = "user"

// staffEmail is the designated staff address. Role derivation from the
// email is a demo stand-in for real authorization data; there is no
// credential store behind it.
const staffEmail = "staff@bank.com"

// demoAccount is one entry in the demo credential table
type demoAccount struct {
	ID       int
	Name     string
	Password string
}

// demoAccounts is the demo credential table. Insecure by design: this
// stands in for an identity provider that is out of scope.
var demoAccounts = map[string]demoAccount{
	"john.doe@email.com":   {ID: 1, Name: "John Doe", Password: "demo123"},
	"jane.smith@email.com": {ID: 2, Name: "Jane Smith", Password: "demo123"},
	staffEmail:             {ID: 0, Name: "Bank Staff", Password: "staff123"},
}

// defaultNavItems mirrors the dashboard navigation. Each entry declares
// its own capability set; there is no role hierarchy.
var defaultNavItems = []domain.NavItem{
	{Name: "Dashboard", Path: "/dashboard", Roles: []domain.Role{domain.RoleCustomer, domain.RoleStaff}},
	{Name: "Profile", Path: "/profile", Roles: []domain.Role{domain.RoleCustomer}},
	{Name: "Transactions", Path: "/transactions", Roles: []domain.Role{domain.RoleCustomer, domain.RoleStaff}},
	{Name: "Loan Check", Path: "/loan-check", Roles: []domain.Role{domain.RoleCustomer, domain.RoleStaff}},
}

// SessionService owns the authenticated identity. The store is an
// injected capability (a signed cookie in the HTTP adapter, an
// in-memory map in tests); the service holds no state of its own, so
// clearing the store externally is simply observed on the next read.
type SessionService struct {
	store storage.Store
}

// NewSessionService creates a session service over the given store
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// Login authenticates against the demo credential table and writes the
// session to the store before returning. Empty credentials and unknown
// or mismatched accounts are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, ok := demoAccounts[email]
	if !ok || account.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleCustomer
	if email == staffEmail {
		role = domain.RoleStaff
	}

	session := &domain.Session{
		ID:          account.ID,
		Email:       email,
		Role:        role,
		DisplayName: account.Name,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	s.store.Set(sessionKey, string(payload))

	return session, nil
}

// Logout clears the stored session unconditionally. Idempotent.
func (s *SessionService) Logout() {
	s.store.Remove(sessionKey)
}

// Current returns the stored session, or nil when the store holds
// nothing usable. A corrupt payload is treated as absent, not an error.
func (s *SessionService) Current() *domain.Session {
	raw, ok := s.store.Get(sessionKey)
	if !ok {
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil
	}
	if !session.Role.IsValid() {
		return nil
	}
	return &session
}

// NavItems returns the navigation entries whose capability sets admit
// the session's role, evaluated fresh per call
func (s *SessionService) NavItems(session *domain.Session) []domain.NavItem {
	if session == nil {
		return nil
	}

	var items []domain.NavItem
	for _, item := range defaultNavItems {
		if item.AllowsRole(session.Role) {
			items = append(items, item)
		}
	}
	return items
}

// Authorize reports whether the session exists and its role is in the
// required set. Pure: a nil session is always denied.
func Authorize(session *domain.Session, requiredRoles ...domain.Role) bool {
	if session == nil {
		return false
	}
	for _, role := range requiredRoles {
		if session.Role == role {
			return true
		}
	}
	return false
}
