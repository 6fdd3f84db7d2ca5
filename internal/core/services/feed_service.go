package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/core/domain"
)

// FeedService posts the monthly salary credit for every seeded customer
// so the demo dashboard keeps moving between reseeds. Runs on the 1st
// of each month at 09:00.
type FeedService struct {
	customerRepo       repositories.CustomerRepository
	transactionService *TransactionService
	cron               *cron.Cron
}

// NewFeedService creates a new demo feed service
func NewFeedService(
	customerRepo repositories.CustomerRepository,
	transactionService *TransactionService,
) *FeedService {
	return &FeedService{
		customerRepo:       customerRepo,
		transactionService: transactionService,
		cron:               cron.New(),
	}
}

// Start schedules the salary job
func (s *FeedService) Start() {
	_, err := s.cron.AddFunc("0 9 1 * *", s.postSalaries)
	if err != nil {
		log.Printf("⚠️ Failed to schedule salary feed: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 FeedService started (monthly salary feed)")
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *FeedService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 FeedService stopped")
}

// postSalaries credits each employed customer with one month of income
func (s *FeedService) postSalaries() {
	ctx := context.Background()

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Salary feed: failed to list customers: %v", err)
		return
	}

	for _, customer := range customers {
		if customer.EmploymentStatus == domain.Unemployed || customer.Income <= 0 {
			continue
		}

		_, err := s.transactionService.Add(ctx, AddTransactionInput{
			CustomerID:  customer.ID,
			Amount:      customer.Income / 12,
			Type:        domain.TxCredit,
			Category:    domain.CategorySalary,
			Description: "Monthly Salary",
		})
		if err != nil {
			log.Printf("⚠️ Salary feed: failed for customer %d: %v", customer.ID, err)
		}
	}

	log.Printf("✅ Salary feed posted for %d customers", len(customers))
}
