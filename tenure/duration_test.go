package tenure_test

import (
	"testing"

	"github.com/jeonbo/tenure-engine/tenure"
)

func TestDecompose(t *testing.T) {
	cases := []struct {
		days   int
		years  int
		months int
		rem    int
	}{
		{0, 0, 0, 0},
		{-5, 0, 0, 0},
		{1, 0, 0, 1},
		{29, 0, 0, 29},
		{30, 0, 1, 0},
		{65, 0, 2, 5},
		{364, 0, 12, 4},
		{365, 1, 0, 0},
		{400, 1, 1, 5},
		{730, 2, 0, 0},
		{1000, 2, 9, 0},
	}
	for _, tc := range cases {
		got := tenure.Decompose(tc.days)
		if got.Years != tc.years || got.Months != tc.months || got.Days != tc.rem {
			t.Errorf("Decompose(%d) = %dy %dm %dd, want %dy %dm %dd",
				tc.days, got.Years, got.Months, got.Days, tc.years, tc.months, tc.rem)
		}
	}
}

func TestDuration_IsWholeYears(t *testing.T) {
	cases := []struct {
		days int
		want bool
	}{
		{365, true},
		{730, true},
		{1825, true},
		{364, false},
		{366, false},
		{395, false}, // 1y 1m
		{0, false},
	}
	for _, tc := range cases {
		if got := tenure.Decompose(tc.days).IsWholeYears(); got != tc.want {
			t.Errorf("IsWholeYears(%d) = %v, want %v", tc.days, got, tc.want)
		}
	}
}

func TestApproxYears(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "0.00"},
		{-10, "0.00"},
		{365, "1.00"},
		{3654, "10.01"},
		{1195, "3.27"},
	}
	for _, tc := range cases {
		if got := tenure.ApproxYears(tc.days).StringFixed(2); got != tc.want {
			t.Errorf("ApproxYears(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}
