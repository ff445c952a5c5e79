package recurrence_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func strings(dates []domain.CalendarDate) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

func collect(rule domain.RecurrenceRule) []string {
	var out []string
	for d := range recurrence.Expand(rule) {
		out = append(out, d.String())
	}
	return out
}

func TestExpand_Weekly(t *testing.T) {
	tests := []struct {
		name    string
		anchor  string
		weekday time.Weekday
		count   int
		want    []string
	}{
		{
			name:    "monday anchor targeting wednesday",
			anchor:  "2025-08-25",
			weekday: time.Wednesday,
			count:   4,
			want:    []string{"2025-08-25", "2025-08-27", "2025-09-03", "2025-09-10"},
		},
		{
			name:    "anchor already on target weekday advances a full week",
			anchor:  "2025-08-27",
			weekday: time.Wednesday,
			count:   3,
			want:    []string{"2025-08-27", "2025-09-03", "2025-09-10"},
		},
		{
			name:    "target weekday earlier in the week",
			anchor:  "2025-08-29",
			weekday: time.Monday,
			count:   3,
			want:    []string{"2025-08-29", "2025-09-01", "2025-09-08"},
		},
		{
			name:    "sunday target across year end",
			anchor:  "2025-12-30",
			weekday: time.Sunday,
			count:   3,
			want:    []string{"2025-12-30", "2026-01-04", "2026-01-11"},
		},
		{
			name:    "single occurrence keeps the anchor",
			anchor:  "2025-08-25",
			weekday: time.Friday,
			count:   1,
			want:    []string{"2025-08-25"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := domain.RecurrenceRule{
				Kind:   domain.WeeklyRecurrence{Weekday: tt.weekday},
				Anchor: mustDate(t, tt.anchor),
				Stop:   domain.StopAfterCount{Count: tt.count},
			}
			assert.Equal(t, tt.want, collect(rule))
		})
	}
}

func TestExpand_MonthlyDerivesFromAnchor(t *testing.T) {
	rule := domain.RecurrenceRule{
		Kind:   domain.MonthlyRecurrence{},
		Anchor: mustDate(t, "2024-01-31"),
		Stop:   domain.StopAfterCount{Count: 5},
	}
	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30", "2024-05-31"}, collect(rule))
}

func TestExpand_MonthlyCountIsExact(t *testing.T) {
	anchor := mustDate(t, "2025-01-31")
	for count := 1; count <= 36; count++ {
		rule := domain.RecurrenceRule{Kind: domain.MonthlyRecurrence{}, Anchor: anchor, Stop: domain.StopAfterCount{Count: count}}
		got := collect(rule)
		require.Len(t, got, count)
		assert.Equal(t, anchor.String(), got[0])
	}
}

func TestExpand_Annual(t *testing.T) {
	rule := domain.RecurrenceRule{
		Kind:   domain.AnnualRecurrence{},
		Anchor: mustDate(t, "2024-02-29"),
		Stop:   domain.StopAfterCount{Count: 5},
	}
	assert.Equal(t, []string{"2024-02-29", "2025-02-28", "2026-02-28", "2027-02-28", "2028-02-29"}, collect(rule))
}

func TestExpand_Until(t *testing.T) {
	t.Run("monthly stops on or before until", func(t *testing.T) {
		rule := domain.RecurrenceRule{
			Kind:   domain.MonthlyRecurrence{},
			Anchor: mustDate(t, "2025-01-15"),
			Stop:   domain.StopUntil{Until: mustDate(t, "2025-04-15")},
		}
		assert.Equal(t, []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"}, collect(rule))
	})

	t.Run("weekly until the anchor yields only the anchor", func(t *testing.T) {
		anchor := mustDate(t, "2025-08-25")
		rule := domain.RecurrenceRule{
			Kind:   domain.WeeklyRecurrence{Weekday: time.Wednesday},
			Anchor: anchor,
			Stop:   domain.StopUntil{Until: anchor},
		}
		assert.Equal(t, []string{"2025-08-25"}, collect(rule))
	})

	t.Run("weekly until", func(t *testing.T) {
		rule := domain.RecurrenceRule{
			Kind:   domain.WeeklyRecurrence{Weekday: time.Wednesday},
			Anchor: mustDate(t, "2025-08-25"),
			Stop:   domain.StopUntil{Until: mustDate(t, "2025-09-09")},
		}
		assert.Equal(t, []string{"2025-08-25", "2025-08-27", "2025-09-03"}, collect(rule))
	})
}

func TestExpand_RestartableAndEarlyBreak(t *testing.T) {
	rule := domain.RecurrenceRule{
		Kind:   domain.MonthlyRecurrence{},
		Anchor: mustDate(t, "2025-03-31"),
		Stop:   domain.StopAfterCount{Count: 6},
	}
	seq := recurrence.Expand(rule)

	var first []string
	for d := range seq {
		first = append(first, d.String())
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"2025-03-31", "2025-04-30"}, first)

	var again []string
	for d := range seq {
		again = append(again, d.String())
	}
	assert.Len(t, again, 6)
	assert.Equal(t, "2025-08-31", again[5])
}

func TestExpand_InvalidRuleYieldsNothing(t *testing.T) {
	rule := domain.RecurrenceRule{
		Kind:   domain.MonthlyRecurrence{},
		Anchor: mustDate(t, "2025-03-31"),
		Stop:   domain.StopAfterCount{Count: 0},
	}
	assert.Empty(t, collect(rule))
}

func TestExpandRuleLimit(t *testing.T) {
	anchor := mustDate(t, "2025-01-01")

	dates, err := recurrence.ExpandRule(domain.RecurrenceRule{Kind: domain.AnnualRecurrence{}, Anchor: anchor, Stop: domain.StopAfterCount{Count: 3}})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2026-01-01", "2027-01-01"}, strings(dates))

	_, err = recurrence.ExpandRuleLimit(domain.RecurrenceRule{Kind: domain.MonthlyRecurrence{}, Anchor: anchor, Stop: domain.StopAfterCount{Count: 13}}, 12)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecurrenceRule)

	_, err = recurrence.ExpandRuleLimit(domain.RecurrenceRule{
		Kind:   domain.WeeklyRecurrence{Weekday: time.Monday},
		Anchor: anchor,
		Stop:   domain.StopUntil{Until: mustDate(t, "2030-01-01")},
	}, 52)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecurrenceRule)

	dates, err = recurrence.ExpandRuleLimit(domain.RecurrenceRule{
		Kind:   domain.MonthlyRecurrence{},
		Anchor: anchor,
		Stop:   domain.StopUntil{Until: mustDate(t, "2025-12-01")},
	}, 12)
	require.NoError(t, err)
	assert.Len(t, dates, 12)

	_, err = recurrence.ExpandRule(domain.RecurrenceRule{Kind: domain.WeeklyRecurrence{Weekday: 8}, Anchor: anchor, Stop: domain.StopAfterCount{Count: 1}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecurrenceRule)
}
