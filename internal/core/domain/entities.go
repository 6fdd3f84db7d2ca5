package domain

import "time"

// Role gates which navigation entries and routes a principal may use
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// IsValid reports whether the role is one of the recognized values
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleStaff
}

// Session represents the currently authenticated principal.
// A session exists if and only if login succeeded; absence of a
// session denies every protected operation.
type Session struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DisplayName string `json:"name"`
}

// AccountType represents customer account type
type AccountType string

const (
	AccountSavings  AccountType = "savings"
	AccountChecking AccountType = "checking"
	AccountBusiness AccountType = "business"
)

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TxCredit TransactionType = "credit"
	TxDebit  TransactionType = "debit"
)

// IsValid reports whether the transaction type is recognized
func (t TransactionType) IsValid() bool {
	return t == TxCredit || t == TxDebit
}

// TransactionCategory represents spending category
type TransactionCategory string

const (
	CategoryFood     TransactionCategory = "food"
	CategoryBills    TransactionCategory = "bills"
	CategoryShopping TransactionCategory = "shopping"
	CategoryEMI      TransactionCategory = "emi"
	CategorySalary   TransactionCategory = "salary"
	CategoryTransfer TransactionCategory = "transfer"
	CategoryOther    TransactionCategory = "other"
)

// IsValid reports whether the category is recognized
func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategoryFood, CategoryBills, CategoryShopping, CategoryEMI,
		CategorySalary, CategoryTransfer, CategoryOther:
		return true
	}
	return false
}

// EmploymentStatus represents an applicant's employment situation
type EmploymentStatus string

const (
	Employed     EmploymentStatus = "employed"
	SelfEmployed EmploymentStatus = "self-employed"
	Unemployed   EmploymentStatus = "unemployed"
)

// IsValid reports whether the employment status is recognized
func (e EmploymentStatus) IsValid() bool {
	return e == Employed || e == SelfEmployed || e == Unemployed
}

// Customer represents a bank customer in the canonical schema.
// Data sources (MySQL, mock fixtures, remote API) map into this shape;
// services and handlers never see source-specific field names.
type Customer struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	AccountType      AccountType      `json:"account_type"`
	Balance          float64          `json:"balance"`
	CreditScore      int              `json:"credit_score"`
	Income           float64          `json:"income"`
	EmploymentStatus EmploymentStatus `json:"employment_type"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Transaction represents a single account movement
type Transaction struct {
	ID          int                 `json:"id"`
	CustomerID  int                 `json:"customer_id"`
	Amount      float64             `json:"amount"`
	Type        TransactionType     `json:"transaction_type"`
	Category    TransactionCategory `json:"category"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
}

// CategorySpending represents aggregated spending for one category
type CategorySpending struct {
	Category         TransactionCategory `json:"category"`
	TotalAmount      float64             `json:"total_amount"`
	TransactionCount int                 `json:"transaction_count"`
}

// TransactionFilter narrows a customer's transaction listing
type TransactionFilter struct {
	Type     TransactionType
	Category TransactionCategory
	From     *time.Time
	To       *time.Time
	Limit    int
}

// LoanApplication represents one loan evaluation request.
// RequestedAmount is optional; zero means not provided and skips the
// debt-to-income check.
type LoanApplication struct {
	AnnualIncome     float64
	CreditScore      int
	EmploymentStatus EmploymentStatus
	RequestedAmount  float64
}

// LoanDecision represents the evaluator's verdict. Created fresh per
// request, never persisted; the ID exists only for audit-level display
// association.
type LoanDecision struct {
	ID          string   `json:"id"`
	Approved    bool     `json:"approved"`
	Probability float64  `json:"probability"`
	Reasoning   []string `json:"reasoning"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// NavItem declares a navigation entry and the roles allowed to see it.
// This is a capability set, not a hierarchy: each entry stands alone
// and the filter is evaluated fresh on every request.
type NavItem struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Roles []Role `json:"roles"`
}

// AllowsRole reports whether the entry's capability set admits the role
func (n NavItem) AllowsRole(role Role) bool {
	for _, r := range n.Roles {
		if r == role {
			return true
		}
	}
	return false
}
