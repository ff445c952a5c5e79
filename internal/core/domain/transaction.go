package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus is the persisted payment state of a transaction.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentType is how a transaction was settled.
type PaymentType string

const (
	PaymentCash       PaymentType = "cash"
	PaymentCreditCard PaymentType = "credit_card"
)

// IsValid reports whether p is a known payment type.
func (p PaymentType) IsValid() bool {
	return p == PaymentCash || p == PaymentCreditCard
}

// Transaction is a ledger entry that can be paid and reversed.
type Transaction struct {
	TransactionID       string           `json:"transactionID"`
	Description         string           `json:"description"`
	Amount              decimal.Decimal  `json:"amount"`
	TransactionDate     CalendarDate     `json:"transactionDate"`
	IsPaid              bool             `json:"isPaid"`
	PaymentStatus       PaymentStatus    `json:"paymentStatus"`
	PaymentDate         *CalendarDate    `json:"paymentDate,omitempty"`
	PaidAmount          *decimal.Decimal `json:"paidAmount,omitempty"`
	PaymentType         *PaymentType     `json:"paymentType,omitempty"`
	CardID              *string          `json:"cardID,omitempty"`
	CardChargeID        *string          `json:"cardChargeID,omitempty"` // set only while paid by credit card
	PaymentObservations *string          `json:"paymentObservations,omitempty"`
	RecurrenceGroupID   *string          `json:"recurrenceGroupID,omitempty"`
	RecurrenceIndex     int              `json:"recurrenceIndex,omitempty"` // 1-based position in its series
	RecurrenceTotal     int              `json:"recurrenceTotal,omitempty"`
	AuditFields
}

// IsPaidByCard reports whether the transaction currently owns a card charge.
func (t Transaction) IsPaidByCard() bool {
	return t.IsPaid && t.PaymentType != nil && *t.PaymentType == PaymentCreditCard
}

// Payment is the data recorded when a transaction is marked as paid.
type Payment struct {
	PaymentDate  CalendarDate
	PaidAmount   decimal.Decimal
	PaymentType  PaymentType
	CardID       *string
	CardChargeID *string
	Observations *string
}

// ApplyPayment moves the transaction to the paid state.
func (t *Transaction) ApplyPayment(p Payment) {
	date := p.PaymentDate
	amount := p.PaidAmount
	paymentType := p.PaymentType
	t.IsPaid = true
	t.PaymentStatus = PaymentPaid
	t.PaymentDate = &date
	t.PaidAmount = &amount
	t.PaymentType = &paymentType
	t.CardID = p.CardID
	t.CardChargeID = p.CardChargeID
	t.PaymentObservations = p.Observations
}

// ClearPayment returns the transaction to the open state.
func (t *Transaction) ClearPayment() {
	t.IsPaid = false
	t.PaymentStatus = PaymentPending
	t.PaymentDate = nil
	t.PaidAmount = nil
	t.PaymentType = nil
	t.CardID = nil
	t.CardChargeID = nil
	t.PaymentObservations = nil
}

// PaymentResult is the outcome of marking a transaction as paid. CardCharge is set
// only for credit card payments.
type PaymentResult struct {
	Transaction Transaction
	CardCharge  *CardChargeRecord
}
