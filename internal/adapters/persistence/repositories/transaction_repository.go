package repositories

import (
	"context"

	"gorm.io/gorm"

	"smartbank-api/internal/adapters/persistence/models"
	"smartbank-api/internal/core/domain"
)

// transactionRepository implements TransactionRepository on MySQL
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// ListByCustomer returns a customer's transactions, newest first
func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID int, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("customer_id = ?", customerID)

	if filter.Type != "" {
		query = query.Where("transaction_type = ?", string(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var rows []*models.Transaction
	if err := query.Order("date DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainTransactions(rows), nil
}

// Create inserts a transaction and returns the stored row
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	row := models.TransactionFromDomain(tx)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// SpendingByCategory aggregates debit spending per category
func (r *transactionRepository) SpendingByCategory(ctx context.Context, customerID int) ([]domain.CategorySpending, error) {
	type aggregate struct {
		Category    string
		TotalAmount float64
		TxCount     int
	}

	var rows []aggregate
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS tx_count").
		Where("customer_id = ? AND transaction_type = ?", customerID, string(domain.TxDebit)).
		Group("category").
		Order("total_amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spending := make([]domain.CategorySpending, 0, len(rows))
	for _, row := range rows {
		spending = append(spending, domain.CategorySpending{
			Category:         domain.TransactionCategory(row.Category),
			TotalAmount:      row.TotalAmount,
			TransactionCount: row.TxCount,
		})
	}
	return spending, nil
}

// Recent returns the latest transactions across all customers
func (r *transactionRepository) Recent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []*models.Transaction
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomainTransactions(rows), nil
}

// Count returns the number of transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error
	return count, err
}

// VolumeByType returns the summed amount per transaction type
func (r *transactionRepository) VolumeByType(ctx context.Context) (map[domain.TransactionType]float64, error) {
	type aggregate struct {
		TransactionType string
		Total           float64
	}

	var rows []aggregate
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("transaction_type, COALESCE(SUM(amount), 0) AS total").
		Group("transaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	volumes := make(map[domain.TransactionType]float64, len(rows))
	for _, row := range rows {
		volumes[domain.TransactionType(row.TransactionType)] = row.Total
	}
	return volumes, nil
}

func toDomainTransactions(rows []*models.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out
}
