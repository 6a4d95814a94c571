package tenure_test

import (
	"testing"
	"time"

	"github.com/jeonbo/tenure-engine/tenure"
)

func TestDaysInclusive_CountsBothEndpoints(t *testing.T) {
	cases := []struct {
		name string
		from tenure.Date
		to   tenure.Date
		want int
	}{
		{"same day", d(2024, time.March, 1), d(2024, time.March, 1), 1},
		{"adjacent days", d(2024, time.March, 1), d(2024, time.March, 2), 2},
		{"across leap day", d(2024, time.February, 28), d(2024, time.March, 1), 3},
		{"non-leap february", d(2023, time.February, 28), d(2023, time.March, 1), 2},
		{"one leap year", d(2024, time.March, 1), d(2025, time.February, 28), 365},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tenure.DaysInclusive(tc.from, tc.to); got != tc.want {
				t.Errorf("DaysInclusive(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := tenure.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d(2024, time.February, 29)) {
		t.Errorf("got %s", got)
	}

	for _, bad := range []string{"2023-02-29", "2024-13-01", "2024.03.01", ""} {
		if _, err := tenure.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted invalid input", bad)
		}
	}
}

func TestSpan_OngoingResolvesToEvaluationDate(t *testing.T) {
	span := tenure.OngoingSpan(d(2025, time.September, 1))

	early := d(2025, time.October, 1)
	late := d(2026, time.March, 1)

	if got := span.TotalDays(early); got != 31 {
		t.Errorf("TotalDays(early) = %d, want 31", got)
	}
	if span.TotalDays(late) <= span.TotalDays(early) {
		t.Error("ongoing span must grow with the evaluation date")
	}
	if !span.EndOn(late).Equal(late) {
		t.Errorf("EndOn = %s, want %s", span.EndOn(late), late)
	}
}

func TestSpan_Valid(t *testing.T) {
	asOf := d(2026, time.March, 1)

	if !tenure.ClosedSpan(d(2024, time.March, 1), d(2024, time.March, 1)).Valid(asOf) {
		t.Error("single-day span must be valid")
	}
	if tenure.ClosedSpan(d(2024, time.March, 2), d(2024, time.March, 1)).Valid(asOf) {
		t.Error("reversed span must be invalid")
	}
	// An ongoing span starting after the evaluation date covers no days
	// yet.
	if tenure.OngoingSpan(d(2026, time.June, 1)).Valid(asOf) {
		t.Error("future ongoing span must be invalid as of today")
	}
}

func TestSpan_Overlaps(t *testing.T) {
	asOf := d(2026, time.March, 1)
	base := tenure.ClosedSpan(d(2024, time.March, 1), d(2024, time.June, 30))

	cases := []struct {
		name  string
		other tenure.Span
		want  bool
	}{
		{"disjoint before", tenure.ClosedSpan(d(2024, time.January, 1), d(2024, time.February, 29)), false},
		{"touching at start", tenure.ClosedSpan(d(2024, time.January, 1), d(2024, time.March, 1)), true},
		{"contained", tenure.ClosedSpan(d(2024, time.April, 1), d(2024, time.April, 30)), true},
		{"touching at end", tenure.ClosedSpan(d(2024, time.June, 30), d(2024, time.December, 31)), true},
		{"disjoint after", tenure.ClosedSpan(d(2024, time.July, 1), d(2024, time.December, 31)), false},
		{"ongoing straddling", tenure.OngoingSpan(d(2024, time.May, 1)), true},
		{"ongoing after", tenure.OngoingSpan(d(2024, time.July, 1)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other, asOf); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base, asOf); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}
