package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
	"smartbank-api/internal/pkg/response"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns a customer's transactions with optional filters
// @Summary List transactions
// @Description List a customer's transactions, newest first
// @Tags Transactions
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param limit query int false "Max results (default 20, cap 100)"
// @Param transaction_type query string false "credit or debit"
// @Param category query string false "Spending category"
// @Param start_date query string false "RFC 3339 date, inclusive"
// @Param end_date query string false "RFC 3339 date, inclusive"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{customerID} [get]
// @Security SessionCookie
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	customerID, err := strconv.Atoi(c.Params("customerID"))
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	filter := domain.TransactionFilter{
		Type:     domain.TransactionType(c.Query("transaction_type")),
		Category: domain.TransactionCategory(c.Query("category")),
		Limit:    c.QueryInt("limit", 20),
	}

	if raw := c.Query("start_date"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid start_date")
		}
		filter.From = &from
	}
	if raw := c.Query("end_date"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid end_date")
		}
		// Inclusive day bound
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	transactions, err := h.transactionService.ListByCustomer(c.Context(), customerID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return response.NotFound(c, "Customer not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to list transactions")
		}
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}
	return response.Success(c, "", transactions)
}

// AddTransactionRequest represents a new transaction request body
type AddTransactionRequest struct {
	CustomerID  int     `json:"customer_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"transaction_type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Add records a new transaction
// @Summary Add transaction
// @Description Record a transaction and move the customer balance
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body AddTransactionRequest true "Transaction data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/add [post]
// @Security SessionCookie
func (h *TransactionHandler) Add(c *fiber.Ctx) error {
	var req AddTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.transactionService.Add(c.Context(), services.AddTransactionInput{
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		Category:    domain.TransactionCategory(req.Category),
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return response.NotFound(c, "Customer not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to add transaction")
		}
	}

	return response.Created(c, "Transaction recorded", tx)
}

// Analytics returns spending analytics grouped by category
// @Summary Spending analytics
// @Tags Transactions
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{customerID}/analytics [get]
// @Security SessionCookie
func (h *TransactionHandler) Analytics(c *fiber.Ctx) error {
	customerID, err := strconv.Atoi(c.Params("customerID"))
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	spending, err := h.transactionService.Analytics(c.Context(), customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to compute analytics")
	}

	if spending == nil {
		spending = []domain.CategorySpending{}
	}
	return response.Success(c, "", spending)
}

// parseDate accepts both bare dates and full RFC 3339 timestamps
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
