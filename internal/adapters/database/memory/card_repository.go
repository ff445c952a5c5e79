package memory

import (
	"context"
	"slices"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type cardRepository struct {
	baseRepository
}

var _ portsrepo.CardRepositoryWithTx = (*cardRepository)(nil)

func (r *cardRepository) SaveCard(_ context.Context, card domain.Card) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.cards[card.CardID]; exists {
		return apperrors.NewAppError(500, "card "+card.CardID+" already exists", apperrors.ErrDuplicate)
	}
	r.store.cards[card.CardID] = card
	return nil
}

func (r *cardRepository) FindCardByID(_ context.Context, cardID string) (*domain.Card, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	card, ok := r.store.cards[cardID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &card, nil
}

func (r *cardRepository) FindCardByIDInTx(_ context.Context, tx pgx.Tx, cardID string) (*domain.Card, error) {
	mt, err := r.inTx(tx)
	if err != nil {
		return nil, err
	}
	card, ok := mt.store.cards[cardID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &card, nil
}

func (r *cardRepository) SaveCardChargeInTx(_ context.Context, tx pgx.Tx, charge domain.CardChargeRecord) error {
	mt, err := r.inTx(tx)
	if err != nil {
		return err
	}
	if _, ok := mt.store.cards[charge.CardID]; !ok {
		return apperrors.NewAppError(500, "card "+charge.CardID+" does not exist", apperrors.ErrNotFound)
	}
	if _, ok := mt.transaction(charge.SourceTransactionID); !ok {
		return apperrors.NewAppError(500, "transaction "+charge.SourceTransactionID+" does not exist", apperrors.ErrNotFound)
	}
	if mt.hasCharge(charge.SourceTransactionID) {
		return apperrors.NewAppError(500, "card charge already exists for transaction "+charge.SourceTransactionID, apperrors.ErrDuplicate)
	}
	mt.charges[charge.SourceTransactionID] = charge
	return nil
}

func (r *cardRepository) DeleteCardChargeBySourceInTx(_ context.Context, tx pgx.Tx, sourceTransactionID string) (bool, error) {
	mt, err := r.inTx(tx)
	if err != nil {
		return false, err
	}
	if !mt.hasCharge(sourceTransactionID) {
		return false, nil
	}
	delete(mt.charges, sourceTransactionID)
	mt.deletedCharges[sourceTransactionID] = true
	return true, nil
}

func (r *cardRepository) ListChargesByDueDate(_ context.Context, cardID string, dueDate domain.CalendarDate) ([]domain.CardChargeRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	charges := []domain.CardChargeRecord{}
	for _, charge := range r.store.charges {
		if charge.CardID == cardID && charge.DueDate.Equal(dueDate) {
			charges = append(charges, charge)
		}
	}
	slices.SortFunc(charges, func(a, b domain.CardChargeRecord) int {
		if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ChargeID < b.ChargeID {
			return -1
		}
		if a.ChargeID > b.ChargeID {
			return 1
		}
		return 0
	})
	return charges, nil
}
