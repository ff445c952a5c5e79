package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

// RecurrenceType is the wire name of a recurrence kind.
type RecurrenceType string

const (
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceAnnual  RecurrenceType = "annual"
)

// RecurrenceKind is one of MonthlyRecurrence, WeeklyRecurrence or AnnualRecurrence.
type RecurrenceKind interface {
	Type() RecurrenceType
	isRecurrenceKind()
}

// MonthlyRecurrence repeats on the anchor's day of month.
type MonthlyRecurrence struct{}

// WeeklyRecurrence repeats every week on Weekday after the anchor occurrence.
type WeeklyRecurrence struct {
	Weekday time.Weekday
}

// AnnualRecurrence repeats on the anchor's month and day.
type AnnualRecurrence struct{}

func (MonthlyRecurrence) Type() RecurrenceType { return RecurrenceMonthly }
func (WeeklyRecurrence) Type() RecurrenceType  { return RecurrenceWeekly }
func (AnnualRecurrence) Type() RecurrenceType  { return RecurrenceAnnual }

func (MonthlyRecurrence) isRecurrenceKind() {}
func (WeeklyRecurrence) isRecurrenceKind()  {}
func (AnnualRecurrence) isRecurrenceKind()  {}

// RecurrenceStop is either StopAfterCount or StopUntil.
type RecurrenceStop interface {
	isRecurrenceStop()
}

// StopAfterCount ends the sequence after Count occurrences.
type StopAfterCount struct {
	Count int
}

// StopUntil ends the sequence at the last occurrence on or before Until.
type StopUntil struct {
	Until CalendarDate
}

func (StopAfterCount) isRecurrenceStop() {}
func (StopUntil) isRecurrenceStop()      {}

// RecurrenceRule describes how a recurring transaction repeats from its anchor date.
type RecurrenceRule struct {
	Kind   RecurrenceKind
	Anchor CalendarDate
	Stop   RecurrenceStop
}

// Validate checks the rule's invariants. Failures wrap apperrors.ErrInvalidRecurrenceRule.
func (r RecurrenceRule) Validate() error {
	if r.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor date is required", apperrors.ErrInvalidRecurrenceRule)
	}

	switch k := r.Kind.(type) {
	case MonthlyRecurrence, AnnualRecurrence:
	case WeeklyRecurrence:
		if k.Weekday < time.Sunday || k.Weekday > time.Saturday {
			return fmt.Errorf("%w: weekday %d outside 0-6", apperrors.ErrInvalidRecurrenceRule, k.Weekday)
		}
	case nil:
		return fmt.Errorf("%w: recurrence kind is required", apperrors.ErrInvalidRecurrenceRule)
	default:
		return fmt.Errorf("%w: unsupported recurrence kind %T", apperrors.ErrInvalidRecurrenceRule, k)
	}

	switch s := r.Stop.(type) {
	case StopAfterCount:
		if s.Count < 1 {
			return fmt.Errorf("%w: count must be at least 1, got %d", apperrors.ErrInvalidRecurrenceRule, s.Count)
		}
	case StopUntil:
		if s.Until.IsZero() {
			return fmt.Errorf("%w: end date is required", apperrors.ErrInvalidRecurrenceRule)
		}
		if s.Until.Before(r.Anchor) {
			return fmt.Errorf("%w: end date %s is before anchor %s", apperrors.ErrInvalidRecurrenceRule, s.Until, r.Anchor)
		}
	case nil:
		return fmt.Errorf("%w: stop condition is required", apperrors.ErrInvalidRecurrenceRule)
	default:
		return fmt.Errorf("%w: unsupported stop condition %T", apperrors.ErrInvalidRecurrenceRule, s)
	}
	return nil
}

// ParseRecurrenceKind maps the wire representation onto a RecurrenceKind.
// weekday is only consulted for weekly rules and must then be present.
func ParseRecurrenceKind(t RecurrenceType, weekday *int) (RecurrenceKind, error) {
	switch t {
	case RecurrenceMonthly:
		return MonthlyRecurrence{}, nil
	case RecurrenceAnnual:
		return AnnualRecurrence{}, nil
	case RecurrenceWeekly:
		if weekday == nil {
			return nil, fmt.Errorf("%w: weekly recurrence requires a weekday", apperrors.ErrInvalidRecurrenceRule)
		}
		if *weekday < 0 || *weekday > 6 {
			return nil, fmt.Errorf("%w: weekday %d outside 0-6", apperrors.ErrInvalidRecurrenceRule, *weekday)
		}
		return WeeklyRecurrence{Weekday: time.Weekday(*weekday)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown recurrence type %q", apperrors.ErrInvalidRecurrenceRule, t)
	}
}
