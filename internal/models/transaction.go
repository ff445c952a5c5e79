package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. DATE columns are carried as
// midnight UTC time.Time values, nullable columns as pointers.
type Transaction struct {
	TransactionID       string           `db:"transaction_id"`
	Description         string           `db:"description"`
	Amount              decimal.Decimal  `db:"amount"`
	TransactionDate     time.Time        `db:"transaction_date"`
	IsPaid              bool             `db:"is_paid"`
	PaymentStatus       string           `db:"payment_status"`
	PaymentDate         *time.Time       `db:"payment_date"`
	PaidAmount          *decimal.Decimal `db:"paid_amount"`
	PaymentType         *string          `db:"payment_type"`
	CardID              *string          `db:"card_id"`
	CardChargeID        *string          `db:"card_charge_id"`
	PaymentObservations *string          `db:"payment_observations"`
	RecurrenceGroupID   *string          `db:"recurrence_group_id"`
	RecurrenceIndex     int              `db:"recurrence_index"`
	RecurrenceTotal     int              `db:"recurrence_total"`
	AuditFields
}
