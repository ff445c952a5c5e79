package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarkAsPaidRequest defines the payment being recorded against a transaction.
type MarkAsPaidRequest struct {
	PaymentDate  domain.CalendarDate `json:"payment_date"`
	PaidAmount   decimal.Decimal     `json:"paid_amount"`
	PaymentType  domain.PaymentType  `json:"payment_type" binding:"required"`
	CardID       *string             `json:"card_id"`
	Observations *string             `json:"observations"`
}

// MarkAsPaidResponse returns the paid transaction and, for card payments, the statement it landed on.
type MarkAsPaidResponse struct {
	Transaction       TransactionResponse  `json:"transaction"`
	CardChargeDueDate *domain.CalendarDate `json:"card_charge_due_date,omitempty"`
}

// ReversePaymentResponse returns the reopened transaction.
type ReversePaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
}

// ToMarkAsPaidResponse converts a domain.PaymentResult to MarkAsPaidResponse DTO.
func ToMarkAsPaidResponse(result *domain.PaymentResult) MarkAsPaidResponse {
	resp := MarkAsPaidResponse{Transaction: ToTransactionResponse(&result.Transaction)}
	if result.CardCharge != nil {
		due := result.CardCharge.DueDate
		resp.CardChargeDueDate = &due
	}
	return resp
}
