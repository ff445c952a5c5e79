// Package billing maps card charges onto statement closing and due dates.
package billing

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CycleConfig is the part of a card the billing cycle depends on.
type CycleConfig struct {
	ClosingDay int
	DueDay     int
}

// ConfigOf extracts the cycle configuration of a card.
func ConfigOf(card domain.Card) CycleConfig {
	return CycleConfig{ClosingDay: card.ClosingDay, DueDay: card.DueDay}
}

// ResolveStatement returns the statement an event on eventDate is billed on.
//
// An event on or before the closing day belongs to the statement closing in the event's
// month, a later event to the one closing next month. The due date falls in the closing
// month when DueDay > ClosingDay and in the month after it otherwise. Closing and due days
// past the end of a short month are clamped to its last day; a due date that clamps onto
// the closing date moves to the following month.
func ResolveStatement(cfg CycleConfig, eventDate domain.CalendarDate) domain.Statement {
	closingMonth := firstOfMonth(eventDate)
	if eventDate.Day() > clampDay(eventDate, cfg.ClosingDay) {
		closingMonth = closingMonth.AddMonths(1)
	}

	closing := dayOfMonth(closingMonth, cfg.ClosingDay)
	due := dayOfMonth(closingMonth, cfg.DueDay)
	if cfg.DueDay <= cfg.ClosingDay || !due.After(closing) {
		due = dayOfMonth(closingMonth.AddMonths(1), cfg.DueDay)
	}

	return domain.Statement{ClosingDate: closing, DueDate: due}
}

// ResolveDueDate returns the due date of the statement eventDate is billed on.
func ResolveDueDate(cfg CycleConfig, eventDate domain.CalendarDate) domain.CalendarDate {
	return ResolveStatement(cfg, eventDate).DueDate
}

func firstOfMonth(d domain.CalendarDate) domain.CalendarDate {
	return d.AddDays(1 - d.Day())
}

// dayOfMonth places day inside the month of first, clamped to the month's length.
func dayOfMonth(first domain.CalendarDate, day int) domain.CalendarDate {
	return first.AddDays(clampDay(first, day) - 1)
}

func clampDay(inMonth domain.CalendarDate, day int) int {
	return max(1, min(day, domain.DaysInMonth(inMonth.Year(), inMonth.Month())))
}
