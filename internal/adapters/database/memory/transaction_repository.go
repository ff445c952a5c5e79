package memory

import (
	"context"
	"errors"
	"slices"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type transactionRepository struct {
	baseRepository
}

var _ portsrepo.TransactionRepositoryWithTx = (*transactionRepository)(nil)

func (r *transactionRepository) SaveTransactions(_ context.Context, transactions []domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, txn := range transactions {
		if _, exists := r.store.transactions[txn.TransactionID]; exists {
			return apperrors.NewAppError(500, "transaction "+txn.TransactionID+" already exists", apperrors.ErrDuplicate)
		}
	}
	for _, txn := range transactions {
		r.store.transactions[txn.TransactionID] = txn
	}
	return nil
}

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txn, ok := r.store.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (r *transactionRepository) FindTransactionByIDForUpdate(_ context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	mt, err := r.inTx(tx)
	if err != nil {
		return nil, err
	}
	txn, ok := mt.transaction(transactionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (r *transactionRepository) UpdateTransactionPaymentInTx(_ context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	mt, err := r.inTx(tx)
	if err != nil {
		return err
	}
	current, ok := mt.transaction(transaction.TransactionID)
	if !ok {
		return apperrors.ErrNotFound
	}

	current.IsPaid = transaction.IsPaid
	current.PaymentStatus = transaction.PaymentStatus
	current.PaymentDate = transaction.PaymentDate
	current.PaidAmount = transaction.PaidAmount
	current.PaymentType = transaction.PaymentType
	current.CardID = transaction.CardID
	current.CardChargeID = transaction.CardChargeID
	current.PaymentObservations = transaction.PaymentObservations
	current.LastUpdatedAt = transaction.LastUpdatedAt
	mt.transactions[current.TransactionID] = current
	return nil
}

func compareTransactions(a, b domain.Transaction) int {
	if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.TransactionID < b.TransactionID:
		return -1
	case a.TransactionID > b.TransactionID:
		return 1
	default:
		return 0
	}
}

func (r *transactionRepository) ListTransactions(_ context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		cursor = &c
	}

	r.store.mu.Lock()
	all := make([]domain.Transaction, 0, len(r.store.transactions))
	for _, txn := range r.store.transactions {
		if cursor == nil || cursor.After(txn.TransactionDate, txn.CreatedAt, txn.TransactionID) {
			all = append(all, txn)
		}
	}
	r.store.mu.Unlock()

	slices.SortFunc(all, compareTransactions)

	var nextTokenVal *string
	if len(all) > limit {
		all = all[:limit]
		last := all[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			TransactionID:   last.TransactionID,
		})
		nextTokenVal = &token
	}
	return all, nextTokenVal, nil
}

func (r *transactionRepository) ListTransactionsByRecurrenceGroup(_ context.Context, groupID string) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	group := []domain.Transaction{}
	for _, txn := range r.store.transactions {
		if txn.RecurrenceGroupID != nil && *txn.RecurrenceGroupID == groupID {
			group = append(group, txn)
		}
	}
	slices.SortFunc(group, func(a, b domain.Transaction) int {
		return a.RecurrenceIndex - b.RecurrenceIndex
	})
	return group, nil
}
