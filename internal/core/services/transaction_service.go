package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/recurrence"
	"github.com/google/uuid"
)

const (
	defaultListLimit      = 20
	defaultMaxOccurrences = 360
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	maxOccurrences  int
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithMaxOccurrences caps how many rows a single recurring request may create.
func WithMaxOccurrences(n int) TransactionServiceOption {
	return func(s *transactionService) {
		if n > 0 {
			s.maxOccurrences = n
		}
	}
}

// WithTransactionClock overrides the clock used for audit timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		maxOccurrences:  defaultMaxOccurrences,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) ([]domain.Transaction, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.TransactionDate.IsZero() {
		return nil, fmt.Errorf("%w: transaction_date is required", apperrors.ErrInvalidDate)
	}

	dates := []domain.CalendarDate{req.TransactionDate}
	var groupID *string
	if req.IsRecurring {
		rule, err := recurrenceRuleFrom(req)
		if err != nil {
			s.LogDebug(ctx, "Rejected recurrence rule", slog.String("error", err.Error()))
			return nil, err
		}
		dates, err = recurrence.ExpandRuleLimit(rule, s.maxOccurrences)
		if err != nil {
			s.LogDebug(ctx, "Failed to expand recurrence rule", slog.String("error", err.Error()))
			return nil, err
		}
		id := uuid.NewString()
		groupID = &id
	}

	now := s.now()
	transactions := make([]domain.Transaction, len(dates))
	for i, date := range dates {
		txn := domain.Transaction{
			TransactionID:   uuid.NewString(),
			Description:     description,
			Amount:          req.Amount,
			TransactionDate: date,
			PaymentStatus:   domain.PaymentPending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if groupID != nil {
			txn.RecurrenceGroupID = groupID
			txn.RecurrenceIndex = i + 1
			txn.RecurrenceTotal = len(dates)
		}
		transactions[i] = txn
	}

	if err := s.transactionRepo.SaveTransactions(ctx, transactions); err != nil {
		s.LogError(ctx, err, "Failed to save transactions", slog.Int("count", len(transactions)))
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	s.LogInfo(ctx, "Transactions created successfully",
		slog.String("first_transaction_id", transactions[0].TransactionID),
		slog.Int("count", len(transactions)))
	return transactions, nil
}

// recurrenceRuleFrom builds the rule anchored on the request's transaction date.
// An end date takes precedence over a count.
func recurrenceRuleFrom(req dto.CreateTransactionRequest) (domain.RecurrenceRule, error) {
	kind, err := domain.ParseRecurrenceKind(req.RecurrenceType, req.RecurrenceWeekday)
	if err != nil {
		return domain.RecurrenceRule{}, err
	}

	rule := domain.RecurrenceRule{Kind: kind, Anchor: req.TransactionDate}
	switch {
	case req.RecurrenceEndDate != nil && !req.RecurrenceEndDate.IsZero():
		rule.Stop = domain.StopUntil{Until: *req.RecurrenceEndDate}
	case req.RecurrenceCount != nil:
		rule.Stop = domain.StopAfterCount{Count: *req.RecurrenceCount}
	default:
		return domain.RecurrenceRule{}, fmt.Errorf("%w: recurrence_count or recurrence_end_date is required", apperrors.ErrInvalidRecurrenceRule)
	}
	return rule, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Transaction not found", slog.String("transaction_id", transactionID))
		} else {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactions(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) ListRecurrenceGroup(ctx context.Context, groupID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactionsByRecurrenceGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurrence group", slog.String("recurrence_group_id", groupID))
		return nil, fmt.Errorf("failed to list recurrence group %s: %w", groupID, err)
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("recurrence group %s: %w", groupID, apperrors.ErrNotFound)
	}
	return transactions, nil
}
