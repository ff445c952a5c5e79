package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// CardReaderSvc defines read operations for cards and their statements
type CardReaderSvc interface {
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)

	// PreviewStatement resolves the statement an event on date would be billed on.
	PreviewStatement(ctx context.Context, cardID string, date domain.CalendarDate) (*domain.Statement, error)

	// GetStatement collects the charges due on dueDate and their total.
	GetStatement(ctx context.Context, cardID string, dueDate domain.CalendarDate) (*domain.CardStatement, error)
}

// CardWriterSvc defines write operations for cards
type CardWriterSvc interface {
	CreateCard(ctx context.Context, req dto.CreateCardRequest) (*domain.Card, error)
}

// CardSvcFacade combines all card-related service interfaces
type CardSvcFacade interface {
	CardReaderSvc
	CardWriterSvc
}
