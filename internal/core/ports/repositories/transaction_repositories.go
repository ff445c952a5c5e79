package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions ordered by (transaction_date, created_at, transaction_id)
	// and a token for the next page, nil on the last page.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByRecurrenceGroup returns every row of one series ordered by recurrence index.
	ListTransactionsByRecurrenceGroup(ctx context.Context, groupID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransactions inserts all transactions inside one database transaction.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionTxOperations are the row-locking operations used by payment processing.
// They run inside a transaction obtained from TransactionManager.Begin.
type TransactionTxOperations interface {
	// FindTransactionByIDForUpdate loads and locks a transaction row until tx ends.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// UpdateTransactionPaymentInTx persists the payment fields of a transaction.
	UpdateTransactionPaymentInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxOperations
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
