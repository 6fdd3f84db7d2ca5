package repositories

import (
	"context"

	"smartbank-api/internal/core/domain"
)

// CustomerRepository defines customer data access. Implementations map
// their own storage shape into the canonical domain schema; the mock
// fixtures under adapters/mockdata satisfy the same contract.
type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	AdjustBalance(ctx context.Context, id int, delta float64) error
	Count(ctx context.Context) (int64, error)
	TotalBalance(ctx context.Context) (float64, error)
}

// TransactionRepository defines transaction data access
type TransactionRepository interface {
	ListByCustomer(ctx context.Context, customerID int, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	SpendingByCategory(ctx context.Context, customerID int) ([]domain.CategorySpending, error)
	Recent(ctx context.Context, limit int) ([]*domain.Transaction, error)
	Count(ctx context.Context) (int64, error)
	VolumeByType(ctx context.Context) (map[domain.TransactionType]float64, error)
}
