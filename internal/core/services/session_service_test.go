package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/pkg/storage"
)

func newSessionService() (*SessionService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewSessionService(store), store
}

func TestLoginCustomer(t *testing.T) {
	svc, _ := newSessionService()

	session, err := svc.Login(context.Background(), "john.doe@email.com", "demo123")
	require.NoError(t, err)

	assert.Equal(t, 1, session.ID)
	assert.Equal(t, "john.doe@email.com", session.Email)
	assert.Equal(t, domain.RoleCustomer, session.Role)
	assert.Equal(t, "John Doe", session.DisplayName)
}

func TestLoginStaff(t *testing.T) {
	svc, _ := newSessionService()

	session, err := svc.Login(context.Background(), "staff@bank.com", "staff123")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleStaff, session.Role)
	assert.Equal(t, "Bank Staff", session.DisplayName)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _ := newSessionService()

	session, err := svc.Login(context.Background(), "  John.Doe@Email.com  ", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "john.doe@email.com", session.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newSessionService()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "demo123"},
		{"empty password", "john.doe@email.com", ""},
		{"unknown account", "nobody@email.com", "demo123"},
		{"wrong password", "john.doe@email.com", "wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.email, tc.password)
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLoginPersistsSessionToStore(t *testing.T) {
	svc, store := newSessionService()

	_, err := svc.Login(context.Background(), "jane.smith@email.com", "demo123")
	require.NoError(t, err)

	_, ok := store.Get("user")
	assert.True(t, ok)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, 2, current.ID)
	assert.Equal(t, domain.RoleCustomer, current.Role)
}

func TestCurrentWithoutLogin(t *testing.T) {
	svc, _ := newSessionService()
	assert.Nil(t, svc.Current())
}

func TestCurrentIgnoresCorruptPayload(t *testing.T) {
	svc, store := newSessionService()

	store.Set("user", "not json")
	assert.Nil(t, svc.Current())

	store.Set("user", `{"id":5,"email":"x@y.com","role":"admin","name":"X"}`)
	assert.Nil(t, svc.Current(), "unknown role should be treated as no session")
}

func TestCurrentObservesExternalClear(t *testing.T) {
	svc, store := newSessionService()

	_, err := svc.Login(context.Background(), "john.doe@email.com", "demo123")
	require.NoError(t, err)

	store.Remove("user")
	assert.Nil(t, svc.Current())
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newSessionService()

	_, err := svc.Login(context.Background(), "john.doe@email.com", "demo123")
	require.NoError(t, err)

	svc.Logout()
	assert.Nil(t, svc.Current())

	// Second logout with nothing stored must not panic or fail
	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestNavItemsByRole(t *testing.T) {
	svc, _ := newSessionService()

	customer := &domain.Session{ID: 1, Role: domain.RoleCustomer}
	staff := &domain.Session{ID: 0, Role: domain.RoleStaff}

	customerNav := svc.NavItems(customer)
	staffNav := svc.NavItems(staff)

	names := func(items []domain.NavItem) []string {
		var out []string
		for _, item := range items {
			out = append(out, item.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Dashboard", "Profile", "Transactions", "Loan Check"}, names(customerNav))
	assert.Equal(t, []string{"Dashboard", "Transactions", "Loan Check"}, names(staffNav))
	assert.Nil(t, svc.NavItems(nil))
}

func TestAuthorize(t *testing.T) {
	customer := &domain.Session{Role: domain.RoleCustomer}
	staff := &domain.Session{Role: domain.RoleStaff}

	assert.False(t, Authorize(nil, domain.RoleCustomer, domain.RoleStaff))
	assert.False(t, Authorize(customer))
	assert.True(t, Authorize(customer, domain.RoleCustomer))
	assert.False(t, Authorize(customer, domain.RoleStaff))
	assert.True(t, Authorize(staff, domain.RoleCustomer, domain.RoleStaff))
}
