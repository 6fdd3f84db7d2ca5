// Package mockdata serves the dashboard from in-process fixtures so the
// whole API runs without a database or upstream service. Mode is fixed
// at process start; there is no runtime fallback between mock and db.
package mockdata

import (
	"time"

	"smartbank-api/internal/core/domain"
)

// customerRecord mirrors the legacy mock payload shape (single "name"
// field, "employment_type"). toDomain is the only place that knows
// about it; everything downstream sees the canonical schema.
type customerRecord struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	AccountType    string  `json:"account_type"`
	Balance        float64 `json:"balance"`
	CreditScore    int     `json:"credit_score"`
	Income         float64 `json:"income"`
	EmploymentType string  `json:"employment_type"`
}

func (r customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		AccountType:      domain.AccountType(r.AccountType),
		Balance:          r.Balance,
		CreditScore:      r.CreditScore,
		Income:           r.Income,
		EmploymentStatus: domain.EmploymentStatus(r.EmploymentType),
	}
}

// transactionRecord mirrors the legacy mock payload ("transaction_type"
// rather than "type")
type transactionRecord struct {
	ID              int     `json:"id"`
	CustomerID      int     `json:"customer_id"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
}

func (r transactionRecord) toDomain() *domain.Transaction {
	date, _ := time.Parse("2006-01-02T15:04:05", r.Date)
	return &domain.Transaction{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.TransactionType),
		Category:    domain.TransactionCategory(r.Category),
		Description: r.Description,
		Date:        date,
	}
}

var customerFixtures = []customerRecord{
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
}

var transactionFixtures = []transactionRecord{
	{ID: 1, CustomerID: 1, Amount: 3000.00, TransactionType: "credit", Category: "salary", Description: "Monthly Salary", Date: "2024-01-15T09:00:00"},
	{ID: 2, CustomerID: 1, Amount: 85.50, TransactionType: "debit", Category: "food", Description: "Grocery Store", Date: "2024-01-16T14:30:00"},
	{ID: 3, CustomerID: 1, Amount: 1200.00, TransactionType: "debit", Category: "bills", Description: "Rent Payment", Date: "2024-01-01T10:00:00"},
	{ID: 4, CustomerID: 2, Amount: 2600.00, TransactionType: "credit", Category: "salary", Description: "Monthly Salary", Date: "2024-01-15T09:05:00"},
	{ID: 5, CustomerID: 2, Amount: 62.30, TransactionType: "debit", Category: "food", Description: "Restaurant", Date: "2024-01-17T19:45:00"},
}
