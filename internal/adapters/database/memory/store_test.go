package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (portsrepo.RepositoryProvider, domain.Transaction, domain.Card) {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()

	card := domain.Card{CardID: "card-1", Name: "Visa", ClosingDay: 10, DueDay: 15}
	require.NoError(t, repos.CardRepo.SaveCard(ctx, card))

	txn := domain.Transaction{
		TransactionID:   "txn-1",
		Description:     "Groceries",
		Amount:          decimal.NewFromInt(120),
		TransactionDate: domain.MustCalendarDate(2025, time.September, 29),
		PaymentStatus:   domain.PaymentPending,
	}
	require.NoError(t, repos.TransactionRepo.SaveTransactions(ctx, []domain.Transaction{txn}))
	return repos, txn, card
}

func charge(source string, due domain.CalendarDate) domain.CardChargeRecord {
	return domain.CardChargeRecord{
		ChargeID:            "charge-" + source,
		CardID:              "card-1",
		Amount:              decimal.NewFromInt(120),
		TransactionDate:     domain.MustCalendarDate(2025, time.September, 29),
		DueDate:             due,
		SourceTransactionID: source,
	}
}

func TestCommitMakesWritesVisible(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)
	due := domain.MustCalendarDate(2025, time.October, 15)

	tx, err := repos.TransactionRepo.Begin(ctx)
	require.NoError(t, err)

	locked, err := repos.TransactionRepo.FindTransactionByIDForUpdate(ctx, tx, txn.TransactionID)
	require.NoError(t, err)
	locked.ApplyPayment(domain.Payment{PaymentDate: txn.TransactionDate, PaidAmount: txn.Amount, PaymentType: domain.PaymentCreditCard})
	require.NoError(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, charge(txn.TransactionID, due)))
	require.NoError(t, repos.TransactionRepo.UpdateTransactionPaymentInTx(ctx, tx, *locked))
	require.NoError(t, repos.TransactionRepo.Commit(ctx, tx))
	require.NoError(t, repos.TransactionRepo.Rollback(ctx, tx), "rollback after commit is a no-op")

	stored, err := repos.TransactionRepo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)

	charges, err := repos.CardRepo.ListChargesByDueDate(ctx, "card-1", due)
	require.NoError(t, err)
	assert.Len(t, charges, 1)
}

func TestRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)
	due := domain.MustCalendarDate(2025, time.October, 15)

	tx, err := repos.TransactionRepo.Begin(ctx)
	require.NoError(t, err)
	locked, err := repos.TransactionRepo.FindTransactionByIDForUpdate(ctx, tx, txn.TransactionID)
	require.NoError(t, err)
	locked.ApplyPayment(domain.Payment{PaymentDate: txn.TransactionDate, PaidAmount: txn.Amount, PaymentType: domain.PaymentCash})
	require.NoError(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, charge(txn.TransactionID, due)))
	require.NoError(t, repos.TransactionRepo.UpdateTransactionPaymentInTx(ctx, tx, *locked))
	require.NoError(t, repos.TransactionRepo.Rollback(ctx, tx))

	stored, err := repos.TransactionRepo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.False(t, stored.IsPaid)

	charges, err := repos.CardRepo.ListChargesByDueDate(ctx, "card-1", due)
	require.NoError(t, err)
	assert.Empty(t, charges)
}

func TestFinishedTransactionIsRejected(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)

	tx, err := repos.TransactionRepo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repos.TransactionRepo.Commit(ctx, tx))

	_, err = repos.TransactionRepo.FindTransactionByIDForUpdate(ctx, tx, txn.TransactionID)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, repos.TransactionRepo.Commit(ctx, tx), apperrors.ErrPersistence)
}

func TestChargeUniquenessPerSourceTransaction(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)
	due := domain.MustCalendarDate(2025, time.October, 15)

	tx, err := repos.CardRepo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, charge(txn.TransactionID, due)))
	require.NoError(t, repos.CardRepo.Commit(ctx, tx))

	tx, err = repos.CardRepo.Begin(ctx)
	require.NoError(t, err)
	err = repos.CardRepo.SaveCardChargeInTx(ctx, tx, charge(txn.TransactionID, due))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	deleted, err := repos.CardRepo.DeleteCardChargeBySourceInTx(ctx, tx, txn.TransactionID)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, charge(txn.TransactionID, due)), "a charge deleted in the same transaction can be recreated")
	require.NoError(t, repos.CardRepo.Rollback(ctx, tx))

	tx, err = repos.CardRepo.Begin(ctx)
	require.NoError(t, err)
	deleted, err = repos.CardRepo.DeleteCardChargeBySourceInTx(ctx, tx, "unknown")
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, repos.CardRepo.Rollback(ctx, tx))
}

func TestChargeRequiresCardAndTransaction(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)
	due := domain.MustCalendarDate(2025, time.October, 15)

	tx, err := repos.CardRepo.Begin(ctx)
	require.NoError(t, err)
	defer repos.CardRepo.Rollback(ctx, tx)

	orphan := charge("missing-txn", due)
	assert.ErrorIs(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, orphan), apperrors.ErrNotFound)

	noCard := charge(txn.TransactionID, due)
	noCard.CardID = "missing-card"
	assert.ErrorIs(t, repos.CardRepo.SaveCardChargeInTx(ctx, tx, noCard), apperrors.ErrNotFound)

	_, err = repos.CardRepo.FindCardByIDInTx(ctx, tx, "missing-card")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBeginSerializesTransactions(t *testing.T) {
	ctx := context.Background()
	repos, _, _ := seed(t)

	first, err := repos.TransactionRepo.Begin(ctx)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := repos.CardRepo.Begin(ctx)
		if err == nil {
			_ = repos.CardRepo.Rollback(ctx, second)
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second transaction began while the first was open")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, repos.TransactionRepo.Rollback(ctx, first))
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second transaction never began")
	}
}

func TestListTransactionsPagination(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	var txns []domain.Transaction
	for i := 0; i < 5; i++ {
		txns = append(txns, domain.Transaction{
			TransactionID:   fmt.Sprintf("txn-%d", i),
			Description:     "rent",
			Amount:          decimal.NewFromInt(10),
			TransactionDate: domain.MustCalendarDate(2025, time.Month(5-i), 1),
			PaymentStatus:   domain.PaymentPending,
			AuditFields:     domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
		})
	}
	require.NoError(t, repos.TransactionRepo.SaveTransactions(ctx, txns))

	page, next, err := repos.TransactionRepo.ListTransactions(ctx, 2, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"txn-4", "txn-3"}, ids(page))

	page, next, err = repos.TransactionRepo.ListTransactions(ctx, 2, next)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"txn-2", "txn-1"}, ids(page))

	page, next, err = repos.TransactionRepo.ListTransactions(ctx, 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []string{"txn-0"}, ids(page))

	bad := "%%%"
	_, _, err = repos.TransactionRepo.ListTransactions(ctx, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSaveTransactionsIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repos, txn, _ := seed(t)

	fresh := txn
	fresh.TransactionID = "txn-2"
	err := repos.TransactionRepo.SaveTransactions(ctx, []domain.Transaction{fresh, txn})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = repos.TransactionRepo.FindTransactionByID(ctx, "txn-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, txn := range txns {
		out[i] = txn.TransactionID
	}
	return out
}
