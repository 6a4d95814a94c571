package tenure

import "github.com/shopspring/decimal"

// =============================================================================
// DURATION - Regulation-style decomposition of a day count
// =============================================================================

// Duration decomposes a day count the way the regulation quotes
// periods: whole 365-day years, then whole 30-day months, then days.
// Calendar months are never consulted.
type Duration struct {
	Years  int
	Months int
	Days   int

	TotalDays int
}

// Decompose splits a day count into years/months/days. Negative counts
// decompose to zero.
func Decompose(totalDays int) Duration {
	if totalDays <= 0 {
		return Duration{TotalDays: totalDays}
	}
	d := Duration{TotalDays: totalDays}
	d.Years = totalDays / DaysPerYear
	rem := totalDays % DaysPerYear
	d.Months = rem / 30
	d.Days = rem % 30
	return d
}

// IsZero reports whether all components are zero.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0
}

// IsWholeYears reports whether the decomposition carries no month or
// day remainder and covers at least one year. Used by the year-block
// leave rule.
func (d Duration) IsWholeYears() bool {
	return d.Years >= 1 && d.Months == 0 && d.Days == 0
}

// ApproxYears converts a day count to fractional years, two decimal
// places. Display metric only; term arithmetic stays in whole days.
func ApproxYears(totalDays int) decimal.Decimal {
	if totalDays <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalDays)).
		Div(decimal.NewFromInt(DaysPerYear)).
		Round(2)
}
