package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// PaymentLedgerSvc moves transactions between the open and paid states and keeps
// the card charge of a card payment in step with it.
type PaymentLedgerSvc interface {
	// MarkAsPaid records a payment. Card payments also create the card charge.
	MarkAsPaid(ctx context.Context, transactionID string, req dto.MarkAsPaidRequest) (*domain.PaymentResult, error)

	// ReversePayment reopens a paid transaction and deletes its card charge if any.
	ReversePayment(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
