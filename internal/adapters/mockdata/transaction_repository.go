package mockdata

import (
	"context"
	"sort"
	"sync"
	"time"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// TransactionRepository serves transactions from the static fixtures.
// Added transactions live only for the process lifetime, matching the
// mock-mode contract.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	nextID       int
}

// NewTransactionRepository creates a fixture-backed transaction repository
func NewTransactionRepository() *TransactionRepository {
	transactions := make([]*domain.Transaction, 0, len(transactionFixtures))
	maxID := 0
	for _, rec := range transactionFixtures {
		tx := rec.toDomain()
		transactions = append(transactions, tx)
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}
	return &TransactionRepository{
		transactions: transactions,
		nextID:       maxID + 1,
	}
}

var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

// ListByCustomer returns a customer's transactions, newest first
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID int, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Transaction
	for _, tx := range r.transactions {
		if tx.CustomerID != customerID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		if filter.From != nil && tx.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && tx.Date.After(*filter.To) {
			continue
		}
		clone := *tx
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Create appends a transaction, assigning the next ID
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tx
	stored.ID = r.nextID
	if stored.Date.IsZero() {
		stored.Date = time.Now().UTC()
	}
	r.nextID++
	r.transactions = append(r.transactions, &stored)

	clone := stored
	return &clone, nil
}

// SpendingByCategory aggregates debit spending per category
func (r *TransactionRepository) SpendingByCategory(ctx context.Context, customerID int) ([]domain.CategorySpending, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[domain.TransactionCategory]*domain.CategorySpending)
	for _, tx := range r.transactions {
		if tx.CustomerID != customerID || tx.Type != domain.TxDebit {
			continue
		}
		agg, ok := totals[tx.Category]
		if !ok {
			agg = &domain.CategorySpending{Category: tx.Category}
			totals[tx.Category] = agg
		}
		agg.TotalAmount += tx.Amount
		agg.TransactionCount++
	}

	out := make([]domain.CategorySpending, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalAmount > out[j].TotalAmount
	})
	return out, nil
}

// Recent returns the latest transactions across all customers
func (r *TransactionRepository) Recent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		clone := *tx
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if limit <= 0 {
		limit = 10
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count returns the number of transactions
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.transactions)), nil
}

// VolumeByType returns the summed amount per transaction type
func (r *TransactionRepository) VolumeByType(ctx context.Context) (map[domain.TransactionType]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	volumes := make(map[domain.TransactionType]float64)
	for _, tx := range r.transactions {
		volumes[tx.Type] += tx.Amount
	}
	return volumes, nil
}
