package models

import (
	"time"

	"gorm.io/gorm"

	"smartbank-api/internal/core/domain"
)

// Customer represents the customers table. Column names follow the
// legacy dashboard schema; ToDomain maps rows into the canonical shape.
type Customer struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;index;not null" json:"name"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string    `gorm:"size:30" json:"phone"`
	AccountType    string    `gorm:"size:20;not null" json:"account_type"`
	Balance        float64   `gorm:"default:0" json:"balance"`
	CreditScore    int       `gorm:"default:600" json:"credit_score"`
	Income         float64   `gorm:"default:0" json:"income"`
	EmploymentType string    `gorm:"size:20;default:'employed'" json:"employment_type"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// ToDomain maps the row into the canonical schema
func (c *Customer) ToDomain() *domain.Customer {
	return &domain.Customer{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		AccountType:      domain.AccountType(c.AccountType),
		Balance:          c.Balance,
		CreditScore:      c.CreditScore,
		Income:           c.Income,
		EmploymentStatus: domain.EmploymentStatus(c.EmploymentType),
		CreatedAt:        c.CreatedAt,
	}
}

// Transaction represents the transactions table
type Transaction struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	CustomerID      int       `gorm:"index;not null" json:"customer_id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	TransactionType string    `gorm:"size:10;not null" json:"transaction_type"`
	Category        string    `gorm:"size:20;not null" json:"category"`
	Description     string    `gorm:"size:255" json:"description"`
	Date            time.Time `gorm:"index;autoCreateTime" json:"date"`
	Customer        Customer  `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ToDomain maps the row into the canonical schema
func (t *Transaction) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Amount:      t.Amount,
		Type:        domain.TransactionType(t.TransactionType),
		Category:    domain.TransactionCategory(t.Category),
		Description: t.Description,
		Date:        t.Date,
	}
}

// TransactionFromDomain maps a canonical transaction into a row
func TransactionFromDomain(t *domain.Transaction) *Transaction {
	return &Transaction{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		Amount:          t.Amount,
		TransactionType: string(t.Type),
		Category:        string(t.Category),
		Description:     t.Description,
		Date:            t.Date,
	}
}

// AutoMigrate creates or updates the tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Transaction{},
	)
}
