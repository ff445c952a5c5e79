package domain_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_ApplyAndClearPayment(t *testing.T) {
	cardID := "card_123"
	chargeID := "charge_123"
	txn := domain.Transaction{
		TransactionID:   "txn_123",
		Description:     "Groceries",
		Amount:          decimal.NewFromFloat(120.50),
		TransactionDate: date(t, "2025-09-20"),
		PaymentStatus:   domain.PaymentPending,
	}
	original := txn

	txn.ApplyPayment(domain.Payment{
		PaymentDate:  date(t, "2025-09-29"),
		PaidAmount:   decimal.NewFromFloat(120.50),
		PaymentType:  domain.PaymentCreditCard,
		CardID:       &cardID,
		CardChargeID: &chargeID,
	})

	assert.True(t, txn.IsPaid)
	assert.True(t, txn.IsPaidByCard())
	assert.Equal(t, domain.PaymentPaid, txn.PaymentStatus)
	assert.Equal(t, "2025-09-29", txn.PaymentDate.String())

	txn.ClearPayment()
	assert.Equal(t, original, txn)
	assert.False(t, txn.IsPaidByCard())
}

func TestTransaction_IsPaidByCard(t *testing.T) {
	cash := domain.PaymentCash
	txn := domain.Transaction{IsPaid: true, PaymentType: &cash}
	assert.False(t, txn.IsPaidByCard())
	assert.True(t, domain.PaymentCreditCard.IsValid())
	assert.False(t, domain.PaymentType("pix").IsValid())
}

func TestCard_Validate(t *testing.T) {
	assert.NoError(t, domain.Card{ClosingDay: 31, DueDay: 1}.Validate())
	assert.ErrorIs(t, domain.Card{ClosingDay: 0, DueDay: 10}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.Card{ClosingDay: 10, DueDay: 32}.Validate(), apperrors.ErrValidation)
}
