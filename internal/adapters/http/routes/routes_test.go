package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbank-api/internal/adapters/http/middleware"
	"smartbank-api/internal/config"
)

// envelope mirrors the response wrapper for decoding in tests
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp() *fiber.App {
	cfg := &config.Config{
		AppMode:  "dev",
		DataMode: config.DataModeMock,
		LoanMode: config.LoanModeLocal,
		Port:     "8000",
		Session: config.SessionConfig{
			Secret:   "test-secret",
			SameSite: "lax",
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	Setup(app, nil, cfg)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

// login authenticates and returns the session cookie
func login(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "smartbank_session" {
			return cookie
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"john.doe@email.com","password":"demo123"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	var payload struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Nav []struct {
			Name string `json:"name"`
		} `json:"nav"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, "john.doe@email.com", payload.User.Email)
	assert.Equal(t, "customer", payload.User.Role)
	assert.Len(t, payload.Nav, 4)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "smartbank_session" {
			found = true
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, found, "expected the session cookie on the response")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"john.doe@email.com","password":"wrong"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestMeRequiresSession(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeWithSessionCookie(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "jane.smith@email.com", "demo123")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "jane.smith@email.com")
}

func TestMeRejectsTamperedCookie(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "jane.smith@email.com", "demo123")

	cookie.Value = cookie.Value + "tampered"
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp()

	for _, target := range []string{"/dashboard", "/customers/", "/transactions/1", "/loan/model-info"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestCustomerListIsStaffOnly(t *testing.T) {
	app := newTestApp()

	customerCookie := login(t, app, "john.doe@email.com", "demo123")
	req := httptest.NewRequest(http.MethodGet, "/customers/", nil)
	req.AddCookie(customerCookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	staffCookie := login(t, app, "staff@bank.com", "staff123")
	req = httptest.NewRequest(http.MethodGet, "/customers/", nil)
	req.AddCookie(staffCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDashboardByRole(t *testing.T) {
	app := newTestApp()

	staffCookie := login(t, app, "staff@bank.com", "staff123")
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(staffCookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Contains(t, string(env.Data), "total_customers")

	customerCookie := login(t, app, "john.doe@email.com", "demo123")
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(customerCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env = decodeEnvelope(t, resp)
	assert.Contains(t, string(env.Data), "recent_transactions")
	assert.Contains(t, string(env.Data), "John Doe")
}

func TestTransactionListAndAnalytics(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "john.doe@email.com", "demo123")

	req := httptest.NewRequest(http.MethodGet, "/transactions/1?transaction_type=debit&limit=5", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/transactions/1/analytics", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/transactions/999", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddTransaction(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "john.doe@email.com", "demo123")

	req := jsonRequest(http.MethodPost, "/transactions/add",
		`{"customer_id":1,"amount":20.5,"transaction_type":"debit","category":"food","description":"Coffee"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	req = jsonRequest(http.MethodPost, "/transactions/add",
		`{"customer_id":1,"amount":-5,"transaction_type":"debit","category":"food"}`)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoanPredict(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "john.doe@email.com", "demo123")

	req := jsonRequest(http.MethodPost, "/loan/predict",
		`{"income":65000,"credit_score":720,"employment_type":"employed"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var decision struct {
		Approved    bool     `json:"approved"`
		Probability float64  `json:"probability"`
		Reasoning   []string `json:"reasoning"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &decision))
	assert.True(t, decision.Approved)
	assert.NotEmpty(t, decision.Reasoning)

	// Raw form strings are accepted for numeric fields
	req = jsonRequest(http.MethodPost, "/loan/predict",
		`{"income":"52000","credit_score":"680","employment_type":"self-employed"}`)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Malformed numbers are invalid input, not zero
	req = jsonRequest(http.MethodPost, "/loan/predict",
		`{"income":"abc","credit_score":720,"employment_type":"employed"}`)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoanModelInfo(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "john.doe@email.com", "demo123")

	req := httptest.NewRequest(http.MethodGet, "/loan/model-info", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Contains(t, string(env.Data), "model_type")
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp()
	cookie := login(t, app, "john.doe@email.com", "demo123")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "smartbank_session" && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")
}
