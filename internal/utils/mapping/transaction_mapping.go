package mapping

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:       d.TransactionID,
		Description:         d.Description,
		Amount:              d.Amount,
		TransactionDate:     d.TransactionDate.Time(),
		IsPaid:              d.IsPaid,
		PaymentStatus:       string(d.PaymentStatus),
		PaidAmount:          d.PaidAmount,
		CardID:              d.CardID,
		CardChargeID:        d.CardChargeID,
		PaymentObservations: d.PaymentObservations,
		RecurrenceGroupID:   d.RecurrenceGroupID,
		RecurrenceIndex:     d.RecurrenceIndex,
		RecurrenceTotal:     d.RecurrenceTotal,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentDate != nil {
		t := d.PaymentDate.Time()
		m.PaymentDate = &t
	}
	if d.PaymentType != nil {
		s := string(*d.PaymentType)
		m.PaymentType = &s
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:       m.TransactionID,
		Description:         m.Description,
		Amount:              m.Amount,
		TransactionDate:     domain.CalendarDateOf(m.TransactionDate),
		IsPaid:              m.IsPaid,
		PaymentStatus:       domain.PaymentStatus(m.PaymentStatus),
		PaidAmount:          m.PaidAmount,
		CardID:              m.CardID,
		CardChargeID:        m.CardChargeID,
		PaymentObservations: m.PaymentObservations,
		RecurrenceGroupID:   m.RecurrenceGroupID,
		RecurrenceIndex:     m.RecurrenceIndex,
		RecurrenceTotal:     m.RecurrenceTotal,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	d.PaymentDate = toDomainDatePtr(m.PaymentDate)
	if m.PaymentType != nil {
		pt := domain.PaymentType(*m.PaymentType)
		d.PaymentType = &pt
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func toDomainDatePtr(t *time.Time) *domain.CalendarDate {
	if t == nil {
		return nil
	}
	d := domain.CalendarDateOf(*t)
	return &d
}
