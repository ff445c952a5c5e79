package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/SscSPs/finance_tracker/internal/utils/billing"
	"github.com/google/uuid"
)

const (
	opMarkAsPaid     = "mark_as_paid"
	opReversePayment = "reverse_payment"
)

// paymentLedgerService implements the PaymentLedgerSvc interface.
// The transaction row and its card charge always change inside one repository transaction.
type paymentLedgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryWithTx
	cardRepo        portsrepo.CardChargeTxOperations
	metrics         *metrics.Metrics
}

// PaymentServiceOption is a functional option for configuring the payment ledger service
type PaymentServiceOption func(*paymentLedgerService)

// WithPaymentMetrics records payment outcomes on m.
func WithPaymentMetrics(m *metrics.Metrics) PaymentServiceOption {
	return func(s *paymentLedgerService) {
		s.metrics = m
	}
}

// WithPaymentClock overrides the clock used for audit timestamps.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentLedgerService) {
		s.Now = now
	}
}

// NewPaymentLedgerService creates a new payment ledger service. cardRepo must operate on
// transactions begun by transactionRepo.
func NewPaymentLedgerService(transactionRepo portsrepo.TransactionRepositoryWithTx, cardRepo portsrepo.CardChargeTxOperations, options ...PaymentServiceOption) portssvc.PaymentLedgerSvc {
	svc := &paymentLedgerService{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *paymentLedgerService) MarkAsPaid(ctx context.Context, transactionID string, req dto.MarkAsPaidRequest) (*domain.PaymentResult, error) {
	result, err := s.markAsPaid(ctx, transactionID, req)
	if err != nil {
		s.metrics.IncrPaymentFailure(opMarkAsPaid, failureReason(err))
		return nil, err
	}
	s.metrics.IncrPaymentMarked(string(req.PaymentType))
	s.LogInfo(ctx, "Transaction marked as paid",
		slog.String("transaction_id", transactionID),
		slog.String("payment_type", string(req.PaymentType)))
	return result, nil
}

func (s *paymentLedgerService) markAsPaid(ctx context.Context, transactionID string, req dto.MarkAsPaidRequest) (*domain.PaymentResult, error) {
	if !req.PaidAmount.IsPositive() {
		return nil, fmt.Errorf("%w: paid_amount must be positive", apperrors.ErrValidation)
	}
	if !req.PaymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment_type %q", apperrors.ErrValidation, req.PaymentType)
	}
	if req.PaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: payment_date is required", apperrors.ErrInvalidDate)
	}

	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin payment transaction", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to begin transaction", err)
	}
	defer s.transactionRepo.Rollback(ctx, tx)

	txn, err := s.transactionRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to lock transaction", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to lock transaction", err)
	}
	if txn.IsPaid {
		return nil, fmt.Errorf("transaction %s is already paid: %w", transactionID, apperrors.ErrInvalidState)
	}

	payment := domain.Payment{
		PaymentDate:  req.PaymentDate,
		PaidAmount:   req.PaidAmount,
		PaymentType:  req.PaymentType,
		Observations: req.Observations,
	}
	now := s.now()

	var charge *domain.CardChargeRecord
	if req.PaymentType == domain.PaymentCreditCard {
		if req.CardID == nil || *req.CardID == "" {
			return nil, fmt.Errorf("%w: card_id is required for credit card payments", apperrors.ErrMissingCard)
		}
		card, err := s.cardRepo.FindCardByIDInTx(ctx, tx, *req.CardID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: card %s does not exist", apperrors.ErrMissingCard, *req.CardID)
			}
			s.LogError(ctx, err, "Failed to load card", slog.String("card_id", *req.CardID))
			return nil, persistenceError("failed to load card", err)
		}

		// The charge is billed on the payment date, not the transaction date.
		charge = &domain.CardChargeRecord{
			ChargeID:            uuid.NewString(),
			CardID:              card.CardID,
			Amount:              req.PaidAmount,
			TransactionDate:     req.PaymentDate,
			DueDate:             billing.ResolveDueDate(billing.ConfigOf(*card), req.PaymentDate),
			SourceTransactionID: txn.TransactionID,
			CreatedAt:           now,
		}
		if err := s.cardRepo.SaveCardChargeInTx(ctx, tx, *charge); err != nil {
			s.LogError(ctx, err, "Failed to save card charge",
				slog.String("transaction_id", transactionID),
				slog.String("card_id", card.CardID))
			return nil, persistenceError("failed to save card charge", err)
		}
		payment.CardID = &charge.CardID
		payment.CardChargeID = &charge.ChargeID
	}

	txn.ApplyPayment(payment)
	txn.LastUpdatedAt = now
	if err := s.transactionRepo.UpdateTransactionPaymentInTx(ctx, tx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction payment", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to update transaction", err)
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to commit payment", err)
	}

	return &domain.PaymentResult{Transaction: *txn, CardCharge: charge}, nil
}

func (s *paymentLedgerService) ReversePayment(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.reversePayment(ctx, transactionID)
	if err != nil {
		s.metrics.IncrPaymentFailure(opReversePayment, failureReason(err))
		return nil, err
	}
	s.metrics.IncrPaymentReversed()
	s.LogInfo(ctx, "Payment reversed", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *paymentLedgerService) reversePayment(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin reversal transaction", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to begin transaction", err)
	}
	defer s.transactionRepo.Rollback(ctx, tx)

	txn, err := s.transactionRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to lock transaction", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to lock transaction", err)
	}
	if !txn.IsPaid {
		return nil, fmt.Errorf("transaction %s is not paid: %w", transactionID, apperrors.ErrInvalidState)
	}

	deleted, err := s.cardRepo.DeleteCardChargeBySourceInTx(ctx, tx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete card charge", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to delete card charge", err)
	}
	if txn.IsPaidByCard() && !deleted {
		s.GetLogger(ctx).Warn("Card payment had no card charge to delete", slog.String("transaction_id", transactionID))
	}

	txn.ClearPayment()
	txn.LastUpdatedAt = s.now()
	if err := s.transactionRepo.UpdateTransactionPaymentInTx(ctx, tx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to clear transaction payment", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to update transaction", err)
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit reversal", slog.String("transaction_id", transactionID))
		return nil, persistenceError("failed to commit reversal", err)
	}
	return txn, nil
}

// persistenceError guarantees errors.Is(err, apperrors.ErrPersistence) on storage failures
// while keeping the cause in the chain.
func persistenceError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrPersistence) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrPersistence, err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrPersistence):
		return "persistence"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, apperrors.ErrMissingCard):
		return "missing_card"
	default:
		return "other"
	}
}
