// Package memory is a process-local storage backend implementing the repository ports.
// A transaction holds the store lock from Begin until Commit or Rollback, and its writes
// become visible only on Commit.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type store struct {
	mu           sync.Mutex
	transactions map[string]domain.Transaction
	cards        map[string]domain.Card
	charges      map[string]domain.CardChargeRecord // keyed by source transaction id
}

func newStore() *store {
	return &store{
		transactions: make(map[string]domain.Transaction),
		cards:        make(map[string]domain.Card),
		charges:      make(map[string]domain.CardChargeRecord),
	}
}

// memTx satisfies pgx.Tx for the repository ports. Only Commit and Rollback are
// implemented; the embedded nil interface panics on any SQL method.
type memTx struct {
	pgx.Tx
	store          *store
	transactions   map[string]domain.Transaction
	charges        map[string]domain.CardChargeRecord
	deletedCharges map[string]bool
	done           bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	for source := range t.deletedCharges {
		delete(t.store.charges, source)
	}
	for source, charge := range t.charges {
		t.store.charges[source] = charge
	}
	for id, txn := range t.transactions {
		t.store.transactions[id] = txn
	}
	t.finish()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.done = true
	t.transactions = nil
	t.charges = nil
	t.deletedCharges = nil
	t.store.mu.Unlock()
}

func (t *memTx) transaction(id string) (domain.Transaction, bool) {
	if txn, ok := t.transactions[id]; ok {
		return txn, true
	}
	txn, ok := t.store.transactions[id]
	return txn, ok
}

func (t *memTx) hasCharge(source string) bool {
	if _, ok := t.charges[source]; ok {
		return true
	}
	if t.deletedCharges[source] {
		return false
	}
	_, ok := t.store.charges[source]
	return ok
}

// baseRepository provides the TransactionManager shared by the memory repositories.
type baseRepository struct {
	store *store
}

func (r *baseRepository) Begin(_ context.Context) (pgx.Tx, error) {
	r.store.mu.Lock()
	return &memTx{
		store:          r.store,
		transactions:   make(map[string]domain.Transaction),
		charges:        make(map[string]domain.CardChargeRecord),
		deletedCharges: make(map[string]bool),
	}, nil
}

func (r *baseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction; a finished transaction is left alone.
func (r *baseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// inTx recovers the memory transaction behind tx and rejects finished or foreign ones.
func (r *baseRepository) inTx(tx pgx.Tx) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.store != r.store {
		return nil, apperrors.NewAppError(500, "transaction does not belong to this store", nil)
	}
	if mt.done {
		return nil, apperrors.NewAppError(500, "transaction already finished", pgx.ErrTxClosed)
	}
	return mt, nil
}

// NewRepositoryProvider returns repositories sharing one empty in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := newStore()
	return portsrepo.RepositoryProvider{
		TransactionRepo: &transactionRepository{baseRepository{store: s}},
		CardRepo:        &cardRepository{baseRepository{store: s}},
	}
}
