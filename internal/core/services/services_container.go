package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, WithMaxOccurrences(cfg.MaxRecurrenceOccurrences)),
		Payment:     NewPaymentLedgerService(repos.TransactionRepo, repos.CardRepo, WithPaymentMetrics(m)),
		Card:        NewCardService(repos.CardRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.PaymentLedgerSvc     = (*paymentLedgerService)(nil)
	_ portssvc.CardSvcFacade        = (*cardService)(nil)
)
