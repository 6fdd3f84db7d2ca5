package services

import (
	"context"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// CustomerService handles customer profile reads
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

// GetByID returns one customer profile
func (s *CustomerService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}
