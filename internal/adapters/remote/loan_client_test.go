package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbank-api/internal/core/domain"
)

func testApplication() domain.LoanApplication {
	return domain.LoanApplication{
		AnnualIncome:     65000,
		CreditScore:      720,
		EmploymentStatus: domain.Employed,
		RequestedAmount:  15000,
	}
}

func TestEvaluateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/loan/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 65000, req["income"])
		assert.EqualValues(t, 720, req["credit_score"])
		assert.Equal(t, "employed", req["employment_type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"approved": true,
			"probability": 0.87,
			"reasoning": ["Income meets threshold", "Good credit"],
			"suggestions": ["Ask about rates"]
		}`))
	}))
	defer srv.Close()

	client := NewLoanClient(srv.URL)
	decision, err := client.Evaluate(context.Background(), testApplication())
	require.NoError(t, err)

	assert.True(t, decision.Approved)
	assert.InDelta(t, 0.87, decision.Probability, 1e-9)
	assert.Equal(t, []string{"Income meets threshold", "Good credit"}, decision.Reasoning)
	assert.Equal(t, []string{"Ask about rates"}, decision.Suggestions)
	assert.NotEmpty(t, decision.ID)
}

func TestEvaluateLegacyStringReasoning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"approved": false, "probability": 0.3, "reasoning": "Credit score too low"}`))
	}))
	defer srv.Close()

	client := NewLoanClient(srv.URL)
	decision, err := client.Evaluate(context.Background(), testApplication())
	require.NoError(t, err)

	assert.Equal(t, []string{"Credit score too low"}, decision.Reasoning)
}

func TestEvaluateBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "credit_score out of range"}`))
	}))
	defer srv.Close()

	client := NewLoanClient(srv.URL)
	_, err := client.Evaluate(context.Background(), testApplication())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "credit_score out of range")
}

func TestEvaluateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewLoanClient(srv.URL)
	_, err := client.Evaluate(context.Background(), testApplication())
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestEvaluateUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewLoanClient(srv.URL)
	_, err := client.Evaluate(context.Background(), testApplication())
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestEvaluateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewLoanClient(srv.URL)
	_, err := client.Evaluate(context.Background(), testApplication())
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestDecodeReasoning(t *testing.T) {
	assert.Nil(t, decodeReasoning(nil))
	assert.Nil(t, decodeReasoning(json.RawMessage(`""`)))
	assert.Nil(t, decodeReasoning(json.RawMessage(`42`)))
	assert.Equal(t, []string{"one"}, decodeReasoning(json.RawMessage(`"one"`)))
	assert.Equal(t, []string{"a", "b"}, decodeReasoning(json.RawMessage(`["a","b"]`)))
}
