package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction or a recurring series.
type CreateTransactionRequest struct {
	Description       string                `json:"description" binding:"required"`
	Amount            decimal.Decimal       `json:"amount"`
	TransactionDate   domain.CalendarDate   `json:"transaction_date"`
	IsRecurring       bool                  `json:"is_recurring"`
	RecurrenceType    domain.RecurrenceType `json:"recurrence_type" binding:"omitempty,oneof=monthly weekly annual"`
	RecurrenceWeekday *int                  `json:"recurrence_weekday" binding:"omitempty,weekday"`
	RecurrenceCount   *int                  `json:"recurrence_count" binding:"omitempty,min=1"`
	// RecurrenceEndDate takes precedence over RecurrenceCount when both are set.
	RecurrenceEndDate *domain.CalendarDate `json:"recurrence_end_date"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string               `json:"transaction_id"`
	Description         string               `json:"description"`
	Amount              decimal.Decimal      `json:"amount"`
	TransactionDate     domain.CalendarDate  `json:"transaction_date"`
	IsPaid              bool                 `json:"is_paid"`
	PaymentStatus       domain.PaymentStatus `json:"payment_status"`
	PaymentDate         *domain.CalendarDate `json:"payment_date,omitempty"`
	PaidAmount          *decimal.Decimal     `json:"paid_amount,omitempty"`
	PaymentType         *domain.PaymentType  `json:"payment_type,omitempty"`
	CardID              *string              `json:"card_id,omitempty"`
	CardChargeID        *string              `json:"card_charge_id,omitempty"`
	PaymentObservations *string              `json:"payment_observations,omitempty"`
	RecurrenceGroupID   *string              `json:"recurrence_group_id,omitempty"`
	RecurrenceIndex     int                  `json:"recurrence_index,omitempty"`
	RecurrenceTotal     int                  `json:"recurrence_total,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	LastUpdatedAt       time.Time            `json:"last_updated_at"`
}

// CreateTransactionResponse lists every row created by one request.
type CreateTransactionResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		Description:         txn.Description,
		Amount:              txn.Amount,
		TransactionDate:     txn.TransactionDate,
		IsPaid:              txn.IsPaid,
		PaymentStatus:       txn.PaymentStatus,
		PaymentDate:         txn.PaymentDate,
		PaidAmount:          txn.PaidAmount,
		PaymentType:         txn.PaymentType,
		CardID:              txn.CardID,
		CardChargeID:        txn.CardChargeID,
		PaymentObservations: txn.PaymentObservations,
		RecurrenceGroupID:   txn.RecurrenceGroupID,
		RecurrenceIndex:     txn.RecurrenceIndex,
		RecurrenceTotal:     txn.RecurrenceTotal,
		CreatedAt:           txn.CreatedAt,
		LastUpdatedAt:       txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
