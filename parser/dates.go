package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/width"

	"github.com/jeonbo/tenure-engine/tenure"
)

// =============================================================================
// DATE RANGE EXTRACTION
// =============================================================================
// The period field carries "YYYY.M.D ~ YYYY.M.D" (separators . - /), or
// "YYYY.M.D ~" for an ongoing posting/leave. Pasted records frequently
// arrive with full-width digits and tildes, so the field is width-folded
// before matching.

var (
	closedRangePattern = regexp.MustCompile(`(\d{4})[./-](\d{1,2})[./-](\d{1,2})\s*~\s*(\d{4})[./-](\d{1,2})[./-](\d{1,2})`)
	openRangePattern   = regexp.MustCompile(`(\d{4})[./-](\d{1,2})[./-](\d{1,2})\s*~`)

	errNoDatePattern = errors.New("no date range found")
	errInvalidDate   = errors.New("invalid calendar date")
)

// foldWidth narrows full-width characters (～, digits, separators) to
// their ASCII forms. U+223C TILDE OPERATOR shows up in some exports and
// is not a width variant, so it is replaced explicitly.
func foldWidth(s string) string {
	s = width.Fold.String(s)
	return strings.NewReplacer("∼", "~", "〜", "~").Replace(s)
}

// extractSpan pulls a date range out of the period field. An open range
// yields an ongoing span whose end is substituted at evaluation time.
func extractSpan(period string) (tenure.Span, error) {
	folded := foldWidth(period)

	if m := closedRangePattern.FindStringSubmatch(folded); m != nil {
		start, err := makeDate(m[1], m[2], m[3])
		if err != nil {
			return tenure.Span{}, err
		}
		end, err := makeDate(m[4], m[5], m[6])
		if err != nil {
			return tenure.Span{}, err
		}
		return tenure.ClosedSpan(start, end), nil
	}

	if m := openRangePattern.FindStringSubmatch(folded); m != nil {
		start, err := makeDate(m[1], m[2], m[3])
		if err != nil {
			return tenure.Span{}, err
		}
		return tenure.OngoingSpan(start), nil
	}

	return tenure.Span{}, errNoDatePattern
}

// makeDate builds a Date, rejecting tokens that only look like dates
// (month 13, February 30). time.Date normalizes overflow, so a
// component round-trip detects it.
func makeDate(ys, ms, ds string) (tenure.Date, error) {
	y, _ := strconv.Atoi(ys)
	m, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return tenure.Date{}, errInvalidDate
	}
	date := tenure.NewDate(y, time.Month(m), d)
	if date.Year() != y || date.Month() != time.Month(m) || date.Day() != d {
		return tenure.Date{}, errInvalidDate
	}
	return date, nil
}
