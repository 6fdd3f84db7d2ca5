package mockdata

import (
	"context"
	"sync"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// CustomerRepository serves customers from the static fixtures
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

// NewCustomerRepository creates a fixture-backed customer repository
func NewCustomerRepository() *CustomerRepository {
	customers := make([]*domain.Customer, 0, len(customerFixtures))
	for _, rec := range customerFixtures {
		customers = append(customers, rec.toDomain())
	}
	return &CustomerRepository{customers: customers}
}

var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// List returns all customers
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, len(r.customers))
	for i, c := range r.customers {
		clone := *c
		out[i] = &clone
	}
	return out, nil
}

// GetByID gets a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

// AdjustBalance applies a signed delta to a customer's balance
func (r *CustomerRepository) AdjustBalance(ctx context.Context, id int, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.ID == id {
			c.Balance += delta
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

// Count returns the number of customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}

// TotalBalance returns the sum of all balances
func (r *CustomerRepository) TotalBalance(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, c := range r.customers {
		total += c.Balance
	}
	return total, nil
}
