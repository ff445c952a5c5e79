// Package recurrence expands recurrence rules into concrete occurrence dates.
package recurrence

import (
	"fmt"
	"iter"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// Expand yields the occurrences of rule in ascending order. The sequence is finite for a
// valid rule and can be ranged over any number of times. Expand does not validate;
// an invalid rule yields nothing.
func Expand(rule domain.RecurrenceRule) iter.Seq[domain.CalendarDate] {
	return func(yield func(domain.CalendarDate) bool) {
		if rule.Validate() != nil {
			return
		}
		for i := 0; ; i++ {
			occurrence := Occurrence(rule.Kind, rule.Anchor, i)
			if !withinStop(rule.Stop, i, occurrence) {
				return
			}
			if !yield(occurrence) {
				return
			}
		}
	}
}

// Occurrence returns the i-th (0-based) occurrence of kind from anchor.
//
// Weekly rules keep the anchor verbatim as occurrence 0 and lock every later
// occurrence onto the target weekday, starting strictly after the anchor.
func Occurrence(kind domain.RecurrenceKind, anchor domain.CalendarDate, i int) domain.CalendarDate {
	switch k := kind.(type) {
	case domain.MonthlyRecurrence:
		return anchor.AddMonths(i)
	case domain.AnnualRecurrence:
		return anchor.AddYears(i)
	case domain.WeeklyRecurrence:
		if i == 0 {
			return anchor
		}
		return firstWeekdayAfter(anchor, k).AddDays(7 * (i - 1))
	default:
		panic(fmt.Sprintf("recurrence: unhandled kind %T", kind))
	}
}

// firstWeekdayAfter is the first date strictly after anchor falling on k.Weekday.
func firstWeekdayAfter(anchor domain.CalendarDate, k domain.WeeklyRecurrence) domain.CalendarDate {
	delta := (int(k.Weekday) - int(anchor.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return anchor.AddDays(delta)
}

func withinStop(stop domain.RecurrenceStop, i int, occurrence domain.CalendarDate) bool {
	switch s := stop.(type) {
	case domain.StopAfterCount:
		return i < s.Count
	case domain.StopUntil:
		return !occurrence.After(s.Until)
	default:
		panic(fmt.Sprintf("recurrence: unhandled stop %T", stop))
	}
}

// ExpandRule validates rule and collects all of its occurrences.
func ExpandRule(rule domain.RecurrenceRule) ([]domain.CalendarDate, error) {
	return ExpandRuleLimit(rule, 0)
}

// ExpandRuleLimit is ExpandRule with an upper bound on the number of occurrences.
// limit <= 0 means unbounded.
func ExpandRuleLimit(rule domain.RecurrenceRule, limit int) ([]domain.CalendarDate, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	var dates []domain.CalendarDate
	if c, ok := rule.Stop.(domain.StopAfterCount); ok {
		if limit > 0 && c.Count > limit {
			return nil, fmt.Errorf("%w: %d occurrences exceed the limit of %d", apperrors.ErrInvalidRecurrenceRule, c.Count, limit)
		}
		dates = make([]domain.CalendarDate, 0, c.Count)
	}

	for d := range Expand(rule) {
		if limit > 0 && len(dates) == limit {
			return nil, fmt.Errorf("%w: more than %d occurrences", apperrors.ErrInvalidRecurrenceRule, limit)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
