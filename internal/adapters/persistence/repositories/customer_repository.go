package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"smartbank-api/internal/adapters/persistence/models"
	"smartbank-api/internal/core/domain"
)

// customerRepository implements CustomerRepository on MySQL
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// List returns all customers ordered by id
func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	var rows []*models.Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.ToDomain())
	}
	return customers, nil
}

// GetByID gets a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	var row models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// AdjustBalance applies a signed delta to the customer's balance
func (r *customerRepository) AdjustBalance(ctx context.Context, id int, delta float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Count returns the number of customers
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}

// TotalBalance returns the sum of all customer balances
func (r *customerRepository) TotalBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	return total, err
}
