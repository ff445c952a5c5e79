package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

// CalendarDateLayout is the wire and storage format of a CalendarDate.
const CalendarDateLayout = "2006-01-02"

// CalendarDate is a timezone-naive (year, month, day) triple.
// The zero value is not a valid date; use NewCalendarDate, ParseCalendarDate or CalendarDateOf.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate validates and builds a CalendarDate.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("%w: month %d out of range", apperrors.ErrInvalidDate, month)
	}
	if year < 1 || year > 9999 {
		return CalendarDate{}, fmt.Errorf("%w: year %d out of range", apperrors.ErrInvalidDate, year)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", apperrors.ErrInvalidDate, day, year, month)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// MustCalendarDate is NewCalendarDate for literals known to be valid. It panics otherwise.
func MustCalendarDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseCalendarDate parses a "YYYY-MM-DD" string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", apperrors.ErrInvalidDate, s)
	}
	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

// CalendarDateOf takes the wall-clock date of t in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

func (d CalendarDate) Year() int         { return d.year }
func (d CalendarDate) Month() time.Month { return d.month }
func (d CalendarDate) Day() int          { return d.day }

// IsZero reports whether d is the (invalid) zero value.
func (d CalendarDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns midnight UTC of d. Only for storage drivers and day arithmetic.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday of d in the proleptic Gregorian calendar.
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays moves d by n days in either direction.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths moves d by n months. When d's day does not exist in the target month the
// result is clamped to that month's last day; it never rolls into the following month.
func (d CalendarDate) AddMonths(n int) CalendarDate {
	// months counted from year 0, month index 0..11
	total := d.year*12 + int(d.month-1) + n
	year := floorDiv(total, 12)
	month := time.Month(total-year*12) + 1
	day := min(d.day, DaysInMonth(year, month))
	return CalendarDate{year: year, month: month, day: day}
}

// AddYears moves d by n years, clamping Feb 29 to Feb 28 in non-leap targets.
func (d CalendarDate) AddYears(n int) CalendarDate {
	return d.AddMonths(12 * n)
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }
func (d CalendarDate) After(o CalendarDate) bool  { return d.Compare(o) > 0 }
func (d CalendarDate) Equal(o CalendarDate) bool  { return d == o }

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = CalendarDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected a string", apperrors.ErrInvalidDate)
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
