package tenure

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity point in time
// =============================================================================

// Date is a calendar day. All term arithmetic in this system happens at
// day granularity; times of day never matter.
type Date struct {
	Time time.Time
}

// Constructors

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses the ISO form "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Comparison

func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic

func (d Date) AddDays(n int) Date  { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddYears(n int) Date { return Date{Time: d.Time.AddDate(n, 0, 0)} }

// Properties

func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// DaysBetween returns the signed number of days from one date to
// another (exclusive of the starting day).
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// DaysInclusive counts both endpoints: end - start + 1.
func DaysInclusive(from, to Date) int {
	return DaysBetween(from, to) + 1
}

// =============================================================================
// SPAN - Date range, possibly open-ended
// =============================================================================

// Span is a date range. An ongoing span has no recorded end; the
// evaluation date is substituted at computation time so stored records
// never go stale.
type Span struct {
	Start   Date
	End     Date // ignored when Ongoing
	Ongoing bool
}

func ClosedSpan(start, end Date) Span {
	return Span{Start: start, End: end}
}

func OngoingSpan(start Date) Span {
	return Span{Start: start, Ongoing: true}
}

// EndOn resolves the span's end date as of the evaluation date.
func (s Span) EndOn(asOf Date) Date {
	if s.Ongoing {
		return asOf
	}
	return s.End
}

// TotalDays is the inclusive day count of the span as of the
// evaluation date. Always >= 1 for a valid span.
func (s Span) TotalDays(asOf Date) int {
	return DaysInclusive(s.Start, s.EndOn(asOf))
}

// Valid reports whether the span covers at least one day.
func (s Span) Valid(asOf Date) bool {
	return !s.Start.IsZero() && s.EndOn(asOf).AfterOrEqual(s.Start)
}

// Overlaps reports whether two spans share at least one day as of the
// evaluation date.
func (s Span) Overlaps(other Span, asOf Date) bool {
	return s.Start.BeforeOrEqual(other.EndOn(asOf)) && other.Start.BeforeOrEqual(s.EndOn(asOf))
}
