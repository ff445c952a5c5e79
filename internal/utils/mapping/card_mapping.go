package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelCard converts a domain Card to a model Card
func ToModelCard(d domain.Card) models.Card {
	return models.Card{
		CardID:      d.CardID,
		Name:        d.Name,
		ClosingDay:  d.ClosingDay,
		DueDay:      d.DueDay,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCard converts a model Card to a domain Card
func ToDomainCard(m models.Card) domain.Card {
	return domain.Card{
		CardID:      m.CardID,
		Name:        m.Name,
		ClosingDay:  m.ClosingDay,
		DueDay:      m.DueDay,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCardCharge converts a domain CardChargeRecord to a model CardCharge
func ToModelCardCharge(d domain.CardChargeRecord) models.CardCharge {
	return models.CardCharge{
		ChargeID:            d.ChargeID,
		CardID:              d.CardID,
		Amount:              d.Amount,
		TransactionDate:     d.TransactionDate.Time(),
		DueDate:             d.DueDate.Time(),
		SourceTransactionID: d.SourceTransactionID,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainCardCharge converts a model CardCharge to a domain CardChargeRecord
func ToDomainCardCharge(m models.CardCharge) domain.CardChargeRecord {
	return domain.CardChargeRecord{
		ChargeID:            m.ChargeID,
		CardID:              m.CardID,
		Amount:              m.Amount,
		TransactionDate:     domain.CalendarDateOf(m.TransactionDate),
		DueDate:             domain.CalendarDateOf(m.DueDate),
		SourceTransactionID: m.SourceTransactionID,
		CreatedAt:           m.CreatedAt,
	}
}
