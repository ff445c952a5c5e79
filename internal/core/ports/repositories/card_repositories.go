package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CardReader defines read operations for cards and their charges
type CardReader interface {
	// FindCardByID retrieves a card by its unique identifier.
	FindCardByID(ctx context.Context, cardID string) (*domain.Card, error)

	// ListChargesByDueDate returns the charges of a card that fall due on dueDate, oldest first.
	ListChargesByDueDate(ctx context.Context, cardID string, dueDate domain.CalendarDate) ([]domain.CardChargeRecord, error)
}

// CardWriter defines write operations for cards
type CardWriter interface {
	SaveCard(ctx context.Context, card domain.Card) error
}

// CardChargeTxOperations are the only way charges are created or removed.
type CardChargeTxOperations interface {
	// FindCardByIDInTx reads a card inside tx. A missing card returns apperrors.ErrNotFound.
	FindCardByIDInTx(ctx context.Context, tx pgx.Tx, cardID string) (*domain.Card, error)

	// SaveCardChargeInTx inserts a charge mirroring a card-paid transaction.
	SaveCardChargeInTx(ctx context.Context, tx pgx.Tx, charge domain.CardChargeRecord) error

	// DeleteCardChargeBySourceInTx removes the charge created for sourceTransactionID and
	// reports whether one existed.
	DeleteCardChargeBySourceInTx(ctx context.Context, tx pgx.Tx, sourceTransactionID string) (bool, error)
}

// CardRepositoryFacade combines all card-related repository interfaces
type CardRepositoryFacade interface {
	CardReader
	CardWriter
	CardChargeTxOperations
}

// CardRepositoryWithTx extends CardRepositoryFacade with transaction capabilities
type CardRepositoryWithTx interface {
	CardRepositoryFacade
	TransactionManager
}
