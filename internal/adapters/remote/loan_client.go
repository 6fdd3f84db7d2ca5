// Package remote proxies loan predictions to an upstream banking API.
// The client satisfies the same evaluator contract as the local scorer;
// which one runs is fixed at process start.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
)

// LoanClient calls the upstream /loan/predict endpoint
type LoanClient struct {
	baseURL string
	client  *http.Client
}

// NewLoanClient creates a client for the given base URL
func NewLoanClient(baseURL string) *LoanClient {
	return &LoanClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ services.LoanEvaluator = (*LoanClient)(nil)

// predictRequest is the upstream wire shape
type predictRequest struct {
	Income          float64 `json:"income"`
	CreditScore     int     `json:"credit_score"`
	EmploymentType  string  `json:"employment_type"`
	RequestedAmount float64 `json:"requested_amount,omitempty"`
}

// predictResponse tolerates the divergent upstream shapes: reasoning
// arrives either as one string (legacy API) or a list of strings
type predictResponse struct {
	Approved    bool            `json:"approved"`
	Probability float64         `json:"probability"`
	Reasoning   json.RawMessage `json:"reasoning"`
	Suggestions []string        `json:"suggestions"`
}

// Evaluate sends the application upstream and maps the response into
// the canonical decision. Transport failures surface as
// ErrRemoteUnavailable and are never retried.
func (c *LoanClient) Evaluate(ctx context.Context, app domain.LoanApplication) (*domain.LoanDecision, error) {
	body, err := json.Marshal(predictRequest{
		Income:          app.AnnualIncome,
		CreditScore:     app.CreditScore,
		EmploymentType:  string(app.EmploymentStatus),
		RequestedAmount: app.RequestedAmount,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/loan/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, readErrorDetail(resp.Body))
	default:
		return nil, fmt.Errorf("%w: upstream returned status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed upstream response: %v", domain.ErrRemoteUnavailable, err)
	}

	return &domain.LoanDecision{
		ID:          uuid.New().String(),
		Approved:    out.Approved,
		Probability: out.Probability,
		Reasoning:   decodeReasoning(out.Reasoning),
		Suggestions: out.Suggestions,
	}, nil
}

// decodeReasoning accepts both a single string and a list of strings
func decodeReasoning(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// readErrorDetail extracts the upstream error message, tolerating both
// {"detail": ...} (legacy API) and the envelope's {"error": ...}
func readErrorDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return "rejected by upstream"
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	if payload.Error != "" {
		return payload.Error
	}
	return "rejected by upstream"
}
