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
	"github.com/SscSPs/finance_tracker/internal/utils/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// cardService implements the CardSvcFacade interface
type cardService struct {
	BaseService
	cardRepo portsrepo.CardRepositoryFacade
}

// CardServiceOption is a functional option for configuring the card service
type CardServiceOption func(*cardService)

// WithCardClock overrides the clock used for audit timestamps.
func WithCardClock(now func() time.Time) CardServiceOption {
	return func(s *cardService) {
		s.Now = now
	}
}

// NewCardService creates a new card service
func NewCardService(repo portsrepo.CardRepositoryFacade, options ...CardServiceOption) portssvc.CardSvcFacade {
	svc := &cardService{cardRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *cardService) CreateCard(ctx context.Context, req dto.CreateCardRequest) (*domain.Card, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := s.now()
	card := domain.Card{
		CardID:     uuid.NewString(),
		Name:       name,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card", slog.String("card_id", card.CardID))
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.LogInfo(ctx, "Card created successfully", slog.String("card_id", card.CardID))
	return &card, nil
}

func (s *cardService) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get card", slog.String("card_id", cardID))
		}
		return nil, fmt.Errorf("failed to get card %s: %w", cardID, err)
	}
	return card, nil
}

func (s *cardService) PreviewStatement(ctx context.Context, cardID string, date domain.CalendarDate) (*domain.Statement, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrInvalidDate)
	}
	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	statement := billing.ResolveStatement(billing.ConfigOf(*card), date)
	return &statement, nil
}

func (s *cardService) GetStatement(ctx context.Context, cardID string, dueDate domain.CalendarDate) (*domain.CardStatement, error) {
	if dueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", apperrors.ErrInvalidDate)
	}
	if _, err := s.GetCard(ctx, cardID); err != nil {
		return nil, err
	}

	charges, err := s.cardRepo.ListChargesByDueDate(ctx, cardID, dueDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list card charges",
			slog.String("card_id", cardID),
			slog.String("due_date", dueDate.String()))
		return nil, fmt.Errorf("failed to list card charges: %w", err)
	}

	total := decimal.Zero
	for _, charge := range charges {
		total = total.Add(charge.Amount)
	}

	return &domain.CardStatement{
		CardID:  cardID,
		DueDate: dueDate,
		Charges: charges,
		Total:   total,
	}, nil
}
