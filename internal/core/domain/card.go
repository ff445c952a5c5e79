package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Card is a credit card as seen by the billing engine. Only ClosingDay and DueDay
// take part in due date resolution.
type Card struct {
	CardID     string `json:"cardID"`
	Name       string `json:"name"`
	ClosingDay int    `json:"closingDay"` // 1-31, clamped to short months
	DueDay     int    `json:"dueDay"`     // 1-31, clamped to short months
	AuditFields
}

// Validate checks the billing day configuration.
func (c Card) Validate() error {
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return fmt.Errorf("%w: closing day %d outside 1-31", apperrors.ErrValidation, c.ClosingDay)
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return fmt.Errorf("%w: due day %d outside 1-31", apperrors.ErrValidation, c.DueDay)
	}
	return nil
}

// CardChargeRecord mirrors a card-paid transaction onto the card's statement ledger.
// It lives exactly as long as the payment it mirrors.
type CardChargeRecord struct {
	ChargeID            string          `json:"chargeID"`
	CardID              string          `json:"cardID"`
	Amount              decimal.Decimal `json:"amount"`
	TransactionDate     CalendarDate    `json:"transactionDate"` // the payment date
	DueDate             CalendarDate    `json:"dueDate"`
	SourceTransactionID string          `json:"sourceTransactionID"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// Statement is one billing cycle of a card.
type Statement struct {
	ClosingDate CalendarDate `json:"closingDate"`
	DueDate     CalendarDate `json:"dueDate"`
}

// CardStatement groups every charge due on the same date.
type CardStatement struct {
	CardID  string             `json:"cardID"`
	DueDate CalendarDate       `json:"dueDate"`
	Charges []CardChargeRecord `json:"charges"`
	Total   decimal.Decimal    `json:"total"`
}
