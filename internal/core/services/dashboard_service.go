package services

import (
	"context"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// DashboardService aggregates figures for the role-specific dashboards.
// It works against the repository interfaces so both data modes serve
// the same numbers.
type DashboardService struct {
	customerRepo    repositories.CustomerRepository
	transactionRepo repositories.TransactionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repositories.CustomerRepository,
	transactionRepo repositories.TransactionRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// StaffDashboardData represents the staff overview
type StaffDashboardData struct {
	TotalCustomers     int64                 `json:"total_customers"`
	TotalBalance       float64               `json:"total_balance"`
	AverageBalance     float64               `json:"average_balance"`
	TotalTransactions  int64                 `json:"total_transactions"`
	CreditVolume       float64               `json:"credit_volume"`
	DebitVolume        float64               `json:"debit_volume"`
	RecentTransactions []*domain.Transaction `json:"recent_transactions"`
}

// GetStaffDashboard returns the bank-wide overview
func (s *DashboardService) GetStaffDashboard(ctx context.Context) (*StaffDashboardData, error) {
	data := &StaffDashboardData{}

	var err error
	if data.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalBalance, err = s.customerRepo.TotalBalance(ctx); err != nil {
		return nil, err
	}
	if data.TotalCustomers > 0 {
		data.AverageBalance = data.TotalBalance / float64(data.TotalCustomers)
	}

	if data.TotalTransactions, err = s.transactionRepo.Count(ctx); err != nil {
		return nil, err
	}

	volumes, err := s.transactionRepo.VolumeByType(ctx)
	if err != nil {
		return nil, err
	}
	data.CreditVolume = volumes[domain.TxCredit]
	data.DebitVolume = volumes[domain.TxDebit]

	if data.RecentTransactions, err = s.transactionRepo.Recent(ctx, 10); err != nil {
		return nil, err
	}
	if data.RecentTransactions == nil {
		data.RecentTransactions = []*domain.Transaction{}
	}

	return data, nil
}

// CustomerDashboardData represents one customer's overview
type CustomerDashboardData struct {
	Customer           *domain.Customer          `json:"customer"`
	RecentTransactions []*domain.Transaction     `json:"recent_transactions"`
	Spending           []domain.CategorySpending `json:"spending"`
}

// GetCustomerDashboard returns one customer's overview
func (s *DashboardService) GetCustomerDashboard(ctx context.Context, customerID int) (*CustomerDashboardData, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.ListByCustomer(ctx, customerID, domain.TransactionFilter{Limit: 10})
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*domain.Transaction{}
	}

	spending, err := s.transactionRepo.SpendingByCategory(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if spending == nil {
		spending = []domain.CategorySpending{}
	}

	return &CustomerDashboardData{
		Customer:           customer,
		RecentTransactions: recent,
		Spending:           spending,
	}, nil
}
