/*
Package parser converts raw personnel-history text into normalized
service and leave intervals.

PURPOSE:
  Teachers paste their appointment history straight out of the personnel
  system. Each logical record carries five fields: period, appointment
  type, position, department, assignment. Two shapes exist in the wild:

  - Tab-delimited: one record per line, five tab-separated columns
    (primary form)
  - Block form: five consecutive lines per record (legacy fallback,
    detected by the absence of tab characters)

  Records are processed one at a time with error isolation: a malformed
  record is reported and skipped, never aborting the batch. Parsing is a
  pure function of the input text and the evaluation date, so parsing
  the same text twice yields identical results.

PIPELINE PER RECORD:
  1. Extract the date range from the period field (dates.go)
  2. Discard zero/one-day entries (non-meaningful duration)
  3. Classify the appointment-type label against the ordered rule
     tables (rules.go): skip > leave > service
  4. For leaves: resolve the sub-type and the one-year-or-more flag
     For service: derive region and school name from department and
     assignment

SEE ALSO:
  - rules.go: Classification tables and precedence
  - dates.go: Date-range extraction
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/jeonbo/tenure-engine/tenure"
)

// =============================================================================
// RESULTS
// =============================================================================

// SkipRecord is a record excluded from both output collections, with
// the reason it was excluded.
type SkipRecord struct {
	Reason           SkipReason
	AppointmentLabel string
	Period           string
	Days             int
}

// ParseError reports one unparseable record. Errors are collected, not
// returned: a bad record never fails the batch.
type ParseError struct {
	Record  int // 1-based record number
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Record, e.Message)
}

// Summary carries the per-run counts the presentation layer displays.
type Summary struct {
	ServiceCount      int
	LeaveCount        int
	OneYearPlusLeaves int
	SkippedCount      int
	ErrorCount        int
}

// Result is the full output of one parse run.
type Result struct {
	Services []tenure.ServiceInterval
	Leaves   []tenure.LeaveInterval
	Skipped  []SkipRecord
	Errors   []ParseError
	Summary  Summary
}

// =============================================================================
// PARSER
// =============================================================================

// Parser classifies personnel records against its configured rule
// tables. Stateless; safe to reuse.
type Parser struct {
	cfg Config
}

func New() *Parser {
	return &Parser{cfg: DefaultConfig()}
}

func NewWithConfig(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse processes the raw text as of the given evaluation date. The
// date resolves open-ended ranges and the one-year-or-more flag; pass
// tenure.Today() outside of tests.
func (p *Parser) Parse(text string, today tenure.Date) Result {
	var result Result

	records, splitErrs := splitRecords(text)
	result.Errors = append(result.Errors, splitErrs...)

	for _, rec := range records {
		p.parseRecord(rec, today, &result)
	}

	result.Summary = Summary{
		ServiceCount: len(result.Services),
		LeaveCount:   len(result.Leaves),
		SkippedCount: len(result.Skipped),
		ErrorCount:   len(result.Errors),
	}
	for _, lv := range result.Leaves {
		if lv.IsOneYearOrMore(today) {
			result.Summary.OneYearPlusLeaves++
		}
	}
	return result
}

// parseRecord runs the per-record pipeline, appending to exactly one of
// the four output collections.
func (p *Parser) parseRecord(rec rawRecord, today tenure.Date, result *Result) {
	span, err := extractSpan(rec.period)
	if err != nil {
		result.Errors = append(result.Errors, ParseError{
			Record:  rec.index,
			Message: fmt.Sprintf("date parsing failed (%s): %v", rec.period, err),
		})
		return
	}
	if !span.Valid(today) {
		result.Errors = append(result.Errors, ParseError{
			Record:  rec.index,
			Message: fmt.Sprintf("date range ends before it starts (%s)", rec.period),
		})
		return
	}

	totalDays := span.TotalDays(today)
	if totalDays <= 1 {
		result.Skipped = append(result.Skipped, SkipRecord{
			Reason:           SkipShortDuration,
			AppointmentLabel: rec.label,
			Period:           rec.period,
			Days:             totalDays,
		})
		return
	}

	// Skip rules take precedence over leave detection: a label carrying
	// both "휴직" and "복직" is a reinstatement, not a leave.
	if reason, ok := p.skipReason(rec.label); ok {
		result.Skipped = append(result.Skipped, SkipRecord{
			Reason:           reason,
			AppointmentLabel: rec.label,
			Period:           rec.period,
			Days:             totalDays,
		})
		return
	}

	if p.isLeave(rec.label) {
		result.Leaves = append(result.Leaves, tenure.LeaveInterval{
			Span:             span,
			Type:             p.leaveType(rec.label),
			SchoolName:       p.schoolName(rec.assignment),
			AppointmentLabel: rec.label,
		})
		return
	}

	region := p.detectRegion(rec.department + " " + rec.assignment)
	sub := tenure.SubRegionNone
	if region == tenure.RegionCheongju {
		sub = tenure.SubRegionUrban // parsed records default urban; manual entry can override
	}
	result.Services = append(result.Services, tenure.ServiceInterval{
		Span:             span,
		SchoolName:       p.schoolName(rec.assignment),
		Region:           region,
		SubRegion:        sub,
		AppointmentLabel: rec.label,
	})
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

func (p *Parser) skipReason(label string) (SkipReason, bool) {
	for _, rule := range p.cfg.Skip {
		if containsAny(label, rule.Keywords) {
			return rule.Reason, true
		}
	}
	return "", false
}

func (p *Parser) isLeave(label string) bool {
	return containsAny(label, p.cfg.LeaveWords)
}

func (p *Parser) leaveType(label string) tenure.LeaveType {
	for _, rule := range p.cfg.LeaveTypes {
		if containsAny(label, rule.Keywords) {
			return rule.Type
		}
	}
	return tenure.LeaveOther
}

// detectRegion searches the combined department+assignment text against
// each region's keyword list, case-insensitively. The catch-all
// region's empty list always matches.
func (p *Parser) detectRegion(text string) tenure.RegionKey {
	lowered := strings.ToLower(text)
	for _, rule := range p.cfg.Regions {
		if len(rule.Keywords) == 0 {
			return rule.Region
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return rule.Region
			}
		}
	}
	return tenure.RegionOther
}

// schoolName extracts a school-suffixed token from the assignment
// field, falling back to a rune-safe truncation.
func (p *Parser) schoolName(assignment string) string {
	if m := p.cfg.SchoolName.FindStringSubmatch(assignment); m != nil {
		return m[1]
	}
	runes := []rune(strings.TrimSpace(assignment))
	if len(runes) <= p.cfg.MaxSchoolNameRunes {
		return string(runes)
	}
	return string(runes[:p.cfg.MaxSchoolNameRunes]) + "…"
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
