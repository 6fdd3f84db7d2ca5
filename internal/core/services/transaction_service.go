package services

import (
	"context"
	"fmt"
	"time"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// maxListLimit caps transaction listings
const maxListLimit = 100

// TransactionService handles transaction listing, creation and analytics
type TransactionService struct {
	customerRepo    repositories.CustomerRepository
	transactionRepo repositories.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	customerRepo repositories.CustomerRepository,
	transactionRepo repositories.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// ListByCustomer returns a customer's transactions with optional filters
func (s *TransactionService) ListByCustomer(ctx context.Context, customerID int, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", domain.ErrInvalidInput, filter.Type)
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category '%s'", domain.ErrInvalidInput, filter.Category)
	}

	return s.transactionRepo.ListByCustomer(ctx, customerID, filter)
}

// AddTransactionInput represents a new transaction
type AddTransactionInput struct {
	CustomerID  int
	Amount      float64
	Type        domain.TransactionType
	Category    domain.TransactionCategory
	Description string
}

// Add records a transaction and moves the customer balance. Credits
// increase the balance, debits decrease it.
func (s *TransactionService) Add(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", domain.ErrInvalidInput, input.Type)
	}
	if !input.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category '%s'", domain.ErrInvalidInput, input.Category)
	}

	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.Create(ctx, &domain.Transaction{
		CustomerID:  input.CustomerID,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Date:        time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	delta := input.Amount
	if input.Type == domain.TxDebit {
		delta = -input.Amount
	}
	if err := s.customerRepo.AdjustBalance(ctx, input.CustomerID, delta); err != nil {
		return nil, err
	}

	return tx, nil
}

// Analytics returns spending totals grouped by category
func (s *TransactionService) Analytics(ctx context.Context, customerID int) ([]domain.CategorySpending, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.transactionRepo.SpendingByCategory(ctx, customerID)
}
