/*
Package format renders the engine's outputs for display: localized
dates, composite durations, and remaining-period strings.

PURPOSE:
  The core packages return plain day counts and Date values; this
  package turns them into the strings the presentation layer shows.
  Korean is the default locale (the regulation's own language); an
  English catalog ships alongside it.

RENDERING RULES:
  Dates:      YYYY.MM.DD
  Durations:  "Y년 M개월 D일" composite, zero components omitted, day
              component suppressed once years are shown, "0일" when
              every component is zero
  Remaining:  "만기 도래" (term reached) for non-positive counts,
              otherwise years and months only

SEE ALSO:
  - i18n.go: Message catalogs
*/
package format

import (
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/jeonbo/tenure-engine/tenure"
)

const dateLayout = "2006.01.02"

// Formatter renders values for one locale. Construct once, reuse.
type Formatter struct {
	loc *i18n.Localizer
}

// New returns a formatter for the given language tags in preference
// order. With no arguments the default (Korean) catalog applies.
func New(langs ...string) *Formatter {
	return &Formatter{loc: i18n.NewLocalizer(newBundle(), langs...)}
}

// Date renders a date in the localized YYYY.MM.DD form, "-" for the
// zero value.
func (f *Formatter) Date(d tenure.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time.Format(dateLayout)
}

// Span renders a date range; an ongoing span renders with an open end.
func (f *Formatter) Span(s tenure.Span) string {
	if s.Ongoing {
		return f.Date(s.Start) + " ~"
	}
	return f.Date(s.Start) + " ~ " + f.Date(s.End)
}

// Duration renders a day count as a years/months/days composite.
func (f *Formatter) Duration(totalDays int) string {
	d := tenure.Decompose(totalDays)
	if totalDays <= 0 || d.IsZero() {
		return f.msg("DurationZero", 0)
	}

	var parts []string
	if d.Years > 0 {
		parts = append(parts, f.msg("DurationYears", d.Years))
	}
	if d.Months > 0 {
		parts = append(parts, f.msg("DurationMonths", d.Months))
	}
	// The day remainder is noise once whole years are on display.
	if d.Days > 0 && d.Years == 0 {
		parts = append(parts, f.msg("DurationDays", d.Days))
	}
	if len(parts) == 0 {
		return f.msg("DurationZero", 0)
	}
	return strings.Join(parts, " ")
}

// Remaining renders a remaining-day count: the term-reached marker for
// non-positive counts, otherwise years and months.
func (f *Formatter) Remaining(remainingDays int) string {
	if remainingDays <= 0 {
		return f.msg("TermReached", 0)
	}
	d := tenure.Decompose(remainingDays)
	if d.Years > 0 {
		if d.Months > 0 {
			return f.msg("DurationYears", d.Years) + " " + f.msg("DurationMonths", d.Months)
		}
		return f.msg("DurationYears", d.Years)
	}
	return f.msg("DurationMonths", d.Months)
}

func (f *Formatter) msg(id string, count int) string {
	return f.loc.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
}
