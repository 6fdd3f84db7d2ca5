package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbank-api/internal/adapters/mockdata"
	"smartbank-api/internal/core/domain"
)

// capturingTransactionRepo records the filter passed to ListByCustomer
type capturingTransactionRepo struct {
	*mockdata.TransactionRepository
	lastFilter domain.TransactionFilter
}

func (r *capturingTransactionRepo) ListByCustomer(ctx context.Context, customerID int, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	r.lastFilter = filter
	return r.TransactionRepository.ListByCustomer(ctx, customerID, filter)
}

func newTransactionService() (*TransactionService, *mockdata.CustomerRepository) {
	customers := mockdata.NewCustomerRepository()
	return NewTransactionService(customers, mockdata.NewTransactionRepository()), customers
}

func TestListByCustomerUnknownCustomer(t *testing.T) {
	svc, _ := newTransactionService()

	_, err := svc.ListByCustomer(context.Background(), 999, domain.TransactionFilter{})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestListByCustomerRejectsBadFilter(t *testing.T) {
	svc, _ := newTransactionService()
	ctx := context.Background()

	_, err := svc.ListByCustomer(ctx, 1, domain.TransactionFilter{Type: "refund"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ListByCustomer(ctx, 1, domain.TransactionFilter{Category: "crypto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByCustomerLimitBounds(t *testing.T) {
	repo := &capturingTransactionRepo{TransactionRepository: mockdata.NewTransactionRepository()}
	svc := NewTransactionService(mockdata.NewCustomerRepository(), repo)
	ctx := context.Background()

	_, err := svc.ListByCustomer(ctx, 1, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastFilter.Limit, "missing limit defaults to 20")

	_, err = svc.ListByCustomer(ctx, 1, domain.TransactionFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, repo.lastFilter.Limit, "oversized limit is capped")
}

func TestAddCreditMovesBalanceUp(t *testing.T) {
	svc, customers := newTransactionService()
	ctx := context.Background()

	before, err := customers.GetByID(ctx, 1)
	require.NoError(t, err)

	tx, err := svc.Add(ctx, AddTransactionInput{
		CustomerID:  1,
		Amount:      250.00,
		Type:        domain.TxCredit,
		Category:    "transfer",
		Description: "Refund",
	})
	require.NoError(t, err)
	assert.NotZero(t, tx.ID)
	assert.False(t, tx.Date.IsZero())

	after, err := customers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, before.Balance+250.00, after.Balance, 1e-9)
}

func TestAddDebitMovesBalanceDown(t *testing.T) {
	svc, customers := newTransactionService()
	ctx := context.Background()

	before, err := customers.GetByID(ctx, 2)
	require.NoError(t, err)

	_, err = svc.Add(ctx, AddTransactionInput{
		CustomerID:  2,
		Amount:      75.25,
		Type:        domain.TxDebit,
		Category:    "shopping",
		Description: "Online order",
	})
	require.NoError(t, err)

	after, err := customers.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.InDelta(t, before.Balance-75.25, after.Balance, 1e-9)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	svc, _ := newTransactionService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input AddTransactionInput
	}{
		{"zero amount", AddTransactionInput{CustomerID: 1, Amount: 0, Type: domain.TxDebit, Category: "food"}},
		{"negative amount", AddTransactionInput{CustomerID: 1, Amount: -5, Type: domain.TxDebit, Category: "food"}},
		{"unknown type", AddTransactionInput{CustomerID: 1, Amount: 10, Type: "refund", Category: "food"}},
		{"unknown category", AddTransactionInput{CustomerID: 1, Amount: 10, Type: domain.TxDebit, Category: "crypto"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.input)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := svc.Add(ctx, AddTransactionInput{CustomerID: 999, Amount: 10, Type: domain.TxDebit, Category: "food"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAnalytics(t *testing.T) {
	svc, _ := newTransactionService()

	spending, err := svc.Analytics(context.Background(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, spending)
	assert.Equal(t, domain.TransactionCategory("bills"), spending[0].Category)

	_, err = svc.Analytics(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
