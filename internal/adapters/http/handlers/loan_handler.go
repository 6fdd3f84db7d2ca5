package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
	"smartbank-api/internal/pkg/response"
)

// LoanHandler handles loan prediction endpoints. The evaluator behind
// it is either the local scorer or the remote API client; the handler
// does not know which.
type LoanHandler struct {
	evaluator services.LoanEvaluator
	loan      *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(evaluator services.LoanEvaluator, loan *services.LoanService) *LoanHandler {
	return &LoanHandler{evaluator: evaluator, loan: loan}
}

// PredictRequest represents a loan prediction request. Numeric fields
// arrive as raw form values; they are parsed explicitly so a malformed
// number surfaces as invalid input instead of being coerced to zero.
type PredictRequest struct {
	Income          string `json:"income"`
	CreditScore     string `json:"credit_score"`
	EmploymentType  string `json:"employment_type"`
	RequestedAmount string `json:"requested_amount"`
}

// Predict evaluates a loan application
// @Summary Predict loan approval
// @Description Score an application and return the decision with reasoning
// @Tags Loan
// @Accept json
// @Produce json
// @Param body body PredictRequest true "Applicant financial data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /loan/predict [post]
// @Security SessionCookie
func (h *LoanHandler) Predict(c *fiber.Ctx) error {
	app, err := parsePredictRequest(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	decision, err := h.evaluator.Evaluate(c.Context(), app)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrRemoteUnavailable):
			return response.ServiceUnavailable(c, "Prediction service unavailable")
		default:
			return response.InternalServerError(c, "Failed to evaluate application")
		}
	}

	return response.Success(c, "", decision)
}

// ModelInfo describes the prediction model
// @Summary Prediction model info
// @Tags Loan
// @Produce json
// @Success 200 {object} response.Response
// @Router /loan/model-info [get]
// @Security SessionCookie
func (h *LoanHandler) ModelInfo(c *fiber.Ctx) error {
	return response.Success(c, "", h.loan.GetModelInfo())
}

// parsePredictRequest decodes the body tolerating both string and
// numeric JSON values for the numeric fields
func parsePredictRequest(c *fiber.Ctx) (domain.LoanApplication, error) {
	var raw struct {
		Income          any    `json:"income"`
		CreditScore     any    `json:"credit_score"`
		EmploymentType  string `json:"employment_type"`
		RequestedAmount any    `json:"requested_amount"`
	}
	if err := c.BodyParser(&raw); err != nil {
		return domain.LoanApplication{}, errors.New("invalid request body")
	}

	income, err := parseNumber(raw.Income, true)
	if err != nil {
		return domain.LoanApplication{}, errors.New("income must be a number")
	}

	creditFloat, err := parseNumber(raw.CreditScore, true)
	if err != nil || creditFloat != float64(int(creditFloat)) {
		return domain.LoanApplication{}, errors.New("credit_score must be an integer")
	}

	requested, err := parseNumber(raw.RequestedAmount, false)
	if err != nil {
		return domain.LoanApplication{}, errors.New("requested_amount must be a number")
	}

	return domain.LoanApplication{
		AnnualIncome:     income,
		CreditScore:      int(creditFloat),
		EmploymentStatus: domain.EmploymentStatus(strings.ToLower(strings.TrimSpace(raw.EmploymentType))),
		RequestedAmount:  requested,
	}, nil
}

// parseNumber accepts JSON numbers and raw form strings. A missing
// optional value parses to zero; a missing required one is an error.
func parseNumber(v any, required bool) (float64, error) {
	switch value := v.(type) {
	case nil:
		if required {
			return 0, errors.New("missing value")
		}
		return 0, nil
	case float64:
		return value, nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if required {
				return 0, errors.New("missing value")
			}
			return 0, nil
		}
		return strconv.ParseFloat(trimmed, 64)
	default:
		return 0, errors.New("not a number")
	}
}
