package format

import (
	"testing"
	"time"

	"github.com/jeonbo/tenure-engine/tenure"
)

func TestDuration_Korean(t *testing.T) {
	f := New()

	cases := []struct {
		days int
		want string
	}{
		{0, "0일"},
		{-10, "0일"},
		{5, "5일"},
		{30, "1개월"},
		{65, "2개월 5일"},
		{365, "1년"},
		// 400 has a 5-day remainder, suppressed once years are shown
		{400, "1년 1개월"},
		{730, "2년"},
		{1000, "2년 9개월"},
	}
	for _, tc := range cases {
		if got := f.Duration(tc.days); got != tc.want {
			t.Errorf("Duration(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestDuration_English(t *testing.T) {
	f := New("en")

	cases := []struct {
		days int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{5, "5 days"},
		{65, "2 months 5 days"},
		{365, "1 year"},
		{400, "1 year 1 month"},
	}
	for _, tc := range cases {
		if got := f.Duration(tc.days); got != tc.want {
			t.Errorf("Duration(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestRemaining(t *testing.T) {
	f := New()

	cases := []struct {
		days int
		want string
	}{
		{0, "만기 도래"},
		{-100, "만기 도래"},
		{45, "1개월"},
		{365, "1년"},
		{400, "1년 1개월"},
		{760, "2년 1개월"},
	}
	for _, tc := range cases {
		if got := f.Remaining(tc.days); got != tc.want {
			t.Errorf("Remaining(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestDateAndSpan(t *testing.T) {
	f := New()

	if got := f.Date(tenure.NewDate(2025, time.March, 1)); got != "2025.03.01" {
		t.Errorf("Date = %q", got)
	}
	if got := f.Date(tenure.Date{}); got != "-" {
		t.Errorf("zero Date = %q", got)
	}

	closed := tenure.ClosedSpan(tenure.NewDate(2020, time.March, 1), tenure.NewDate(2021, time.February, 28))
	if got := f.Span(closed); got != "2020.03.01 ~ 2021.02.28" {
		t.Errorf("Span = %q", got)
	}
	open := tenure.OngoingSpan(tenure.NewDate(2024, time.March, 1))
	if got := f.Span(open); got != "2024.03.01 ~" {
		t.Errorf("ongoing Span = %q", got)
	}
}

func TestNew_UnknownLocaleFallsBackToDefault(t *testing.T) {
	f := New("fr")

	if got := f.Duration(365); got != "1년" {
		t.Errorf("fallback Duration = %q, want Korean default", got)
	}
}
