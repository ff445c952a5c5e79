package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card is a row of the cards table.
type Card struct {
	CardID     string `db:"card_id"`
	Name       string `db:"name"`
	ClosingDay int    `db:"closing_day"`
	DueDay     int    `db:"due_day"`
	AuditFields
}

// CardCharge is a row of the card_charges table.
type CardCharge struct {
	ChargeID            string          `db:"charge_id"`
	CardID              string          `db:"card_id"`
	Amount              decimal.Decimal `db:"amount"`
	TransactionDate     time.Time       `db:"transaction_date"`
	DueDate             time.Time       `db:"due_date"`
	SourceTransactionID string          `db:"source_transaction_id"`
	CreatedAt           time.Time       `db:"created_at"`
}
