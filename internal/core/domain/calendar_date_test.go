package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func TestCalendarDate_AddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{name: "jan 31 to short february", start: "2025-01-31", n: 1, want: "2025-02-28"},
		{name: "jan 31 to leap february", start: "2024-01-31", n: 1, want: "2024-02-29"},
		{name: "march 31 to april", start: "2025-03-31", n: 1, want: "2025-04-30"},
		{name: "july 31 to august", start: "2025-07-31", n: 1, want: "2025-08-31"},
		{name: "zero months", start: "2025-05-17", n: 0, want: "2025-05-17"},
		{name: "year overflow", start: "2025-11-30", n: 3, want: "2026-02-28"},
		{name: "december to january", start: "2025-12-15", n: 1, want: "2026-01-15"},
		{name: "negative into previous year", start: "2025-01-15", n: -1, want: "2024-12-15"},
		{name: "negative clamp", start: "2025-03-31", n: -1, want: "2025-02-28"},
		{name: "many months", start: "2024-02-29", n: 48, want: "2028-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := date(t, tt.start).AddMonths(tt.n)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCalendarDate_AddYears(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{start: "2024-02-29", n: 1, want: "2025-02-28"},
		{start: "2024-02-29", n: 4, want: "2028-02-29"},
		{start: "2000-02-29", n: 100, want: "2100-02-28"},
		{start: "2025-06-10", n: -2, want: "2023-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			assert.Equal(t, tt.want, date(t, tt.start).AddYears(tt.n).String())
		})
	}
}

func TestCalendarDate_AddMonthsAlwaysValid(t *testing.T) {
	starts := []string{"2023-01-31", "2024-01-29", "2024-02-29", "2025-08-30", "2025-12-31"}
	for _, s := range starts {
		d := date(t, s)
		for n := -30; n <= 60; n++ {
			got := d.AddMonths(n)
			assert.LessOrEqual(t, got.Day(), domain.DaysInMonth(got.Year(), got.Month()), "%s + %d months", s, n)
			assert.GreaterOrEqual(t, got.Day(), 1)
			// the result must survive a round trip through the validating constructor
			_, err := domain.NewCalendarDate(got.Year(), got.Month(), got.Day())
			assert.NoError(t, err)
		}
	}
}

func TestCalendarDate_AddDaysAndWeekday(t *testing.T) {
	d := date(t, "2025-08-25")
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-09-01", d.AddDays(7).String())
	assert.Equal(t, "2024-12-31", date(t, "2025-01-01").AddDays(-1).String())
	assert.Equal(t, "2024-03-01", date(t, "2024-02-28").AddDays(2).String())
}

func TestNewCalendarDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{name: "february 29 in common year", year: 2025, month: time.February, day: 29},
		{name: "april 31", year: 2025, month: time.April, day: 31},
		{name: "month 13", year: 2025, month: 13, day: 1},
		{name: "month 0", year: 2025, month: 0, day: 1},
		{name: "day 0", year: 2025, month: time.May, day: 0},
		{name: "year 0", year: 0, month: time.May, day: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCalendarDate(tt.year, tt.month, tt.day)
			assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
		})
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-02-30", "2025/01/01", "25-01-01", "2025-01-01T00:00:00Z"} {
		_, err := domain.ParseCalendarDate(s)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate, "input %q", s)
	}
}

func TestCalendarDate_Compare(t *testing.T) {
	a := date(t, "2025-01-31")
	b := date(t, "2025-02-01")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(date(t, "2025-01-31")))
	assert.True(t, a.Equal(domain.MustCalendarDate(2025, time.January, 31)))
}

func TestCalendarDate_JSON(t *testing.T) {
	type payload struct {
		Date domain.CalendarDate  `json:"date"`
		Opt  *domain.CalendarDate `json:"opt,omitempty"`
	}

	out, err := json.Marshal(payload{Date: date(t, "2024-02-29")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-02-29"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-09-29","opt":"2025-10-15"}`), &in))
	assert.Equal(t, "2025-09-29", in.Date.String())
	require.NotNil(t, in.Opt)
	assert.Equal(t, "2025-10-15", in.Opt.String())

	err = json.Unmarshal([]byte(`{"date":"2025-13-01"}`), &in)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, domain.IsLeapYear(2024))
	assert.True(t, domain.IsLeapYear(2000))
	assert.False(t, domain.IsLeapYear(1900))
	assert.False(t, domain.IsLeapYear(2025))
}
