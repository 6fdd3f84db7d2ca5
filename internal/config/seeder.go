package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	"smartbank-api/internal/adapters/persistence/models"
)

// Seeder loads the sample dashboard data into an empty database
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Seeding is skipped when customers already
// exist, so reruns are safe.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	var count int64
	s.db.Model(&models.Customer{}).Count(&count)
	if count > 0 {
		log.Println("Database already contains data, skipping seed")
		return nil
	}

	if err := s.seedCustomers(); err != nil {
		return err
	}
	if err := s.seedTransactions(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

func (s *Seeder) seedCustomers() error {
	customers := []models.Customer{
		{
			ID:             1,
			Name:           "John Doe",
			Email:          "john.doe@email.com",
			Phone:          "+1-555-0101",
			AccountType:    "savings",
			Balance:        15750.50,
			CreditScore:    720,
			Income:         65000,
			EmploymentType: "employed",
		},
		{
			ID:             2,
			Name:           "Jane Smith",
			Email:          "jane.smith@email.com",
			Phone:          "+1-555-0102",
			AccountType:    "checking",
			Balance:        8200.75,
			CreditScore:    680,
			Income:         52000,
			EmploymentType: "employed",
		},
		{
			ID:             3,
			Name:           "Mike Chen",
			Email:          "mike.chen@email.com",
			Phone:          "+1-555-0103",
			AccountType:    "business",
			Balance:        42100.00,
			CreditScore:    745,
			Income:         98000,
			EmploymentType: "self-employed",
		},
		{
			ID:             4,
			Name:           "Sarah Lee",
			Email:          "sarah.lee@email.com",
			Phone:          "+1-555-0104",
			AccountType:    "savings",
			Balance:        2350.25,
			CreditScore:    610,
			Income:         28000,
			EmploymentType: "unemployed",
		},
	}

	return s.db.Create(&customers).Error
}

func (s *Seeder) seedTransactions() error {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		{CustomerID: 1, Amount: 3000.00, TransactionType: "credit", Category: "salary", Description: "Monthly Salary", Date: base.AddDate(0, 0, 14).Add(-time.Hour)},
		{CustomerID: 1, Amount: 85.50, TransactionType: "debit", Category: "food", Description: "Grocery Store", Date: base.AddDate(0, 0, 15).Add(4 * time.Hour)},
		{CustomerID: 1, Amount: 1200.00, TransactionType: "debit", Category: "bills", Description: "Rent Payment", Date: base},
		{CustomerID: 1, Amount: 320.50, TransactionType: "debit", Category: "shopping", Description: "Department Store", Date: base.AddDate(0, 0, 18)},
		{CustomerID: 1, Amount: 400.00, TransactionType: "debit", Category: "emi", Description: "Car Loan EMI", Date: base.AddDate(0, 0, 5)},
		{CustomerID: 2, Amount: 2600.00, TransactionType: "credit", Category: "salary", Description: "Monthly Salary", Date: base.AddDate(0, 0, 14)},
		{CustomerID: 2, Amount: 62.30, TransactionType: "debit", Category: "food", Description: "Restaurant", Date: base.AddDate(0, 0, 16)},
		{CustomerID: 2, Amount: 150.00, TransactionType: "debit", Category: "transfer", Description: "Transfer to Savings", Date: base.AddDate(0, 0, 20)},
		{CustomerID: 3, Amount: 8100.00, TransactionType: "credit", Category: "transfer", Description: "Client Invoice", Date: base.AddDate(0, 0, 10)},
		{CustomerID: 3, Amount: 980.00, TransactionType: "debit", Category: "bills", Description: "Office Utilities", Date: base.AddDate(0, 0, 12)},
		{CustomerID: 4, Amount: 45.00, TransactionType: "debit", Category: "food", Description: "Grocery Store", Date: base.AddDate(0, 0, 8)},
	}

	return s.db.Create(&transactions).Error
}
