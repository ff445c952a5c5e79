package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCardRequest defines the data needed to register a credit card.
type CreateCardRequest struct {
	Name       string `json:"name" binding:"required"`
	ClosingDay int    `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int    `json:"due_day" binding:"required,min=1,max=31"`
}

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID        string    `json:"card_id"`
	Name          string    `json:"name"`
	ClosingDay    int       `json:"closing_day"`
	DueDay        int       `json:"due_day"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// StatementPreviewParams is the query of a statement preview.
type StatementPreviewParams struct {
	Date string `form:"date" binding:"required,calendar_date"`
}

// StatementPreviewResponse is the statement an event on the requested date is billed on.
type StatementPreviewResponse struct {
	CardID      string              `json:"card_id"`
	EventDate   domain.CalendarDate `json:"event_date"`
	ClosingDate domain.CalendarDate `json:"closing_date"`
	DueDate     domain.CalendarDate `json:"due_date"`
}

// CardChargeResponse defines the data returned for one statement line.
type CardChargeResponse struct {
	ChargeID            string              `json:"charge_id"`
	Amount              decimal.Decimal     `json:"amount"`
	TransactionDate     domain.CalendarDate `json:"transaction_date"`
	DueDate             domain.CalendarDate `json:"due_date"`
	SourceTransactionID string              `json:"source_transaction_id"`
}

// CardStatementResponse lists the charges due on one date.
type CardStatementResponse struct {
	CardID  string               `json:"card_id"`
	DueDate domain.CalendarDate  `json:"due_date"`
	Charges []CardChargeResponse `json:"charges"`
	Total   decimal.Decimal      `json:"total"`
}

// ToCardResponse converts a domain.Card to CardResponse DTO.
func ToCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		CardID:        card.CardID,
		Name:          card.Name,
		ClosingDay:    card.ClosingDay,
		DueDay:        card.DueDay,
		CreatedAt:     card.CreatedAt,
		LastUpdatedAt: card.LastUpdatedAt,
	}
}

// ToCardStatementResponse converts a domain.CardStatement to CardStatementResponse DTO.
func ToCardStatementResponse(st *domain.CardStatement) CardStatementResponse {
	charges := make([]CardChargeResponse, len(st.Charges))
	for i, c := range st.Charges {
		charges[i] = CardChargeResponse{
			ChargeID:            c.ChargeID,
			Amount:              c.Amount,
			TransactionDate:     c.TransactionDate,
			DueDate:             c.DueDate,
			SourceTransactionID: c.SourceTransactionID,
		}
	}
	return CardStatementResponse{
		CardID:  st.CardID,
		DueDate: st.DueDate,
		Charges: charges,
		Total:   st.Total,
	}
}
