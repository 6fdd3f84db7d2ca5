package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/pkg/finance"
)

// Composite score weights and thresholds
const (
	incomeThreshold = 50000.0
	creditThreshold = 700

	weightIncome     = 0.4
	weightCredit     = 0.4
	weightEmployment = 0.2

	passThreshold = 0.6
)

// Hard disqualifiers: fire independently of the composite score and
// force rejection. Each one knocks a rule-specific amount off the
// reported confidence.
const (
	creditScoreFloor = 650
	maxDebtToIncome  = 0.4

	baseConfidence      = 0.95
	penaltyCreditFloor  = 0.15
	penaltyDebtToIncome = 0.20
	penaltyUnemployed   = 0.25
)

// Probability bounds and jitter applied to the composite-based confidence
const (
	probabilityMin = 0.05
	probabilityMax = 0.95
	jitterRange    = 0.1
)

// Credit score domain per the standard FICO range
const (
	creditScoreMin = 300
	creditScoreMax = 850
)

// LoanEvaluator maps an application to a decision. The local scoring
// service and the remote API client both satisfy it, so the handler is
// indifferent to which one configuration wired in.
type LoanEvaluator interface {
	Evaluate(ctx context.Context, app domain.LoanApplication) (*domain.LoanDecision, error)
}

// LoanService is the in-process eligibility evaluator. It is stateless
// and never mutates its input; every call produces a fresh decision.
type LoanService struct {
	rng func() float64
}

// NewLoanService creates a loan service. rng supplies values in [0,1)
// for the probability jitter; pass nil for the default source. Tests
// inject a fixed source to make probabilities exact.
func NewLoanService(rng func() float64) *LoanService {
	if rng == nil {
		rng = rand.Float64
	}
	return &LoanService{rng: rng}
}

var _ LoanEvaluator = (*LoanService)(nil)

// Evaluate scores an application and returns the decision with
// human-readable reasoning and suggestions
func (s *LoanService) Evaluate(ctx context.Context, app domain.LoanApplication) (*domain.LoanDecision, error) {
	if err := validateApplication(app); err != nil {
		return nil, err
	}

	var (
		score       float64
		reasoning   []string
		suggestions []string
	)

	// Composite score: weighted positive factors. Every factor leaves a
	// reasoning line whether it contributed or not, so the decision
	// enumerates each rule that was considered.
	if app.AnnualIncome >= incomeThreshold {
		score += weightIncome
		reasoning = append(reasoning, fmt.Sprintf("Income $%.0f meets the $%.0f qualifying threshold", app.AnnualIncome, incomeThreshold))
	} else {
		reasoning = append(reasoning, fmt.Sprintf("Income $%.0f is below the $%.0f qualifying threshold", app.AnnualIncome, incomeThreshold))
		suggestions = append(suggestions, "A higher or supplemental income would strengthen the application")
	}

	if app.CreditScore >= creditThreshold {
		score += weightCredit
		reasoning = append(reasoning, fmt.Sprintf("Credit score %d meets the %d qualifying threshold", app.CreditScore, creditThreshold))
	} else {
		reasoning = append(reasoning, fmt.Sprintf("Credit score %d is below the %d qualifying threshold", app.CreditScore, creditThreshold))
		suggestions = append(suggestions, "Paying down existing balances can raise your credit score")
	}

	switch app.EmploymentStatus {
	case domain.Employed:
		score += weightEmployment
		reasoning = append(reasoning, "Stable employment status")
	case domain.SelfEmployed:
		reasoning = append(reasoning, "Self-employed status carries moderate risk")
	case domain.Unemployed:
		reasoning = append(reasoning, "Unemployed status does not contribute to the score")
	}

	// Hard disqualifiers
	var penalties float64

	if app.CreditScore < creditScoreFloor {
		penalties += penaltyCreditFloor
		reasoning = append(reasoning, fmt.Sprintf("Credit score %d is below the minimum floor of %d", app.CreditScore, creditScoreFloor))
		suggestions = append(suggestions, fmt.Sprintf("Improve your credit score above %d before reapplying", creditScoreFloor))
	}

	if app.RequestedAmount > 0 {
		dti := finance.DebtToIncome(app.RequestedAmount, app.AnnualIncome)
		if dti > maxDebtToIncome {
			penalties += penaltyDebtToIncome
			reasoning = append(reasoning, fmt.Sprintf("Estimated debt-to-income ratio %.2f exceeds the %.2f ceiling", dti, maxDebtToIncome))
			suggestions = append(suggestions, "Request a smaller amount or extend the repayment term")
		}
	}

	if app.EmploymentStatus == domain.Unemployed {
		penalties += penaltyUnemployed
		reasoning = append(reasoning, "Applicants without employment are not eligible")
		suggestions = append(suggestions, "Reapply once you have stable employment")
	}

	disqualified := penalties > 0
	approved := !disqualified && score >= passThreshold

	var probability float64
	if disqualified {
		// Deterministic: the confidence reflects the fired rules, not
		// the jittered composite.
		probability = clampProbability(baseConfidence - penalties)
	} else {
		jitter := (s.rng() - 0.5) * 2 * jitterRange
		probability = clampProbability(score + jitter)
	}

	if approved {
		suggestions = []string{"Ask about our preferred rates for qualified applicants"}
	}

	return &domain.LoanDecision{
		ID:          uuid.New().String(),
		Approved:    approved,
		Probability: probability,
		Reasoning:   reasoning,
		Suggestions: suggestions,
	}, nil
}

// validateApplication rejects out-of-domain input before scoring.
// Zero income and zero requested amount are valid; they just score low.
func validateApplication(app domain.LoanApplication) error {
	if app.AnnualIncome < 0 {
		return fmt.Errorf("%w: income must not be negative", domain.ErrInvalidInput)
	}
	if app.CreditScore < creditScoreMin || app.CreditScore > creditScoreMax {
		return fmt.Errorf("%w: credit score must be between %d and %d", domain.ErrInvalidInput, creditScoreMin, creditScoreMax)
	}
	if !app.EmploymentStatus.IsValid() {
		return fmt.Errorf("%w: employment status must be 'employed', 'self-employed' or 'unemployed'", domain.ErrInvalidInput)
	}
	if app.RequestedAmount < 0 {
		return fmt.Errorf("%w: requested amount must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func clampProbability(p float64) float64 {
	if p < probabilityMin {
		return probabilityMin
	}
	if p > probabilityMax {
		return probabilityMax
	}
	return p
}

// ModelInfo describes the scoring model for the model-info endpoint
type ModelInfo struct {
	ModelType   string   `json:"model_type"`
	Features    []string `json:"features"`
	Accuracy    float64  `json:"accuracy"`
	Description string   `json:"description"`
}

// GetModelInfo returns static metadata about the scoring rule
func (s *LoanService) GetModelInfo() ModelInfo {
	return ModelInfo{
		ModelType:   "Weighted Rule Scorer",
		Features:    []string{"income", "credit_score", "employment_type"},
		Accuracy:    0.85,
		Description: "Predicts loan approval from income, credit score and employment status with hard disqualifier rules",
	}
}
