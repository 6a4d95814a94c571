/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  internal domain model from the external contract. Dates cross the
  wire as "YYYY-MM-DD" strings; display strings (localized dates,
  composite durations) are pre-rendered server-side so the presentation
  layer stays dumb.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/jeonbo/tenure-engine/format"
	"github.com/jeonbo/tenure-engine/tenure"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ParseRequest carries raw personnel-history text.
type ParseRequest struct {
	Text string `json:"text"`
	// AsOf overrides the evaluation date (YYYY-MM-DD); defaults to
	// today. Open-ended ranges resolve against it.
	AsOf string `json:"as_of,omitempty"`
}

// ExpiryRequest carries a full calculation context. Stateless by
// design: the engine re-derives everything from the posted record set,
// so the server holds no session.
type ExpiryRequest struct {
	Region       string `json:"region"`
	SubRegion    string `json:"sub_region,omitempty"`
	TransferDate string `json:"transfer_date"`

	Services []ServiceDTO `json:"services,omitempty"`
	Leaves   []LeaveDTO   `json:"leaves,omitempty"`

	AsOf string `json:"as_of,omitempty"`
	// YearBlock toggles the whole-year-block leave rule for this
	// computation; nil keeps the server's configured default.
	YearBlock *bool `json:"year_block,omitempty"`
}

// =============================================================================
// INTERVAL DTOS
// =============================================================================

type ServiceDTO struct {
	SchoolName       string `json:"school_name"`
	Region           string `json:"region"`
	SubRegion        string `json:"sub_region,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	Ongoing          bool   `json:"ongoing,omitempty"`
	AppointmentLabel string `json:"appointment_label,omitempty"`

	// Response-only, resolved as of the evaluation date.
	TotalDays int    `json:"total_days,omitempty"`
	Period    string `json:"period,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type LeaveDTO struct {
	Type             string `json:"type"`
	SchoolName       string `json:"school_name,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	Ongoing          bool   `json:"ongoing,omitempty"`
	AppointmentLabel string `json:"appointment_label,omitempty"`

	TotalDays       int    `json:"total_days,omitempty"`
	IsOneYearOrMore bool   `json:"is_one_year_or_more,omitempty"`
	Period          string `json:"period,omitempty"`
	Duration        string `json:"duration,omitempty"`
}

type SkipDTO struct {
	Reason           string `json:"reason"`
	AppointmentLabel string `json:"appointment_label"`
	Period           string `json:"period"`
	Days             int    `json:"days"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

type ParseSummaryDTO struct {
	ServiceCount      int `json:"service_count"`
	LeaveCount        int `json:"leave_count"`
	OneYearPlusLeaves int `json:"one_year_plus_leaves"`
	SkippedCount      int `json:"skipped_count"`
	ErrorCount        int `json:"error_count"`
}

type ParseResponse struct {
	Services []ServiceDTO    `json:"services"`
	Leaves   []LeaveDTO      `json:"leaves"`
	Skipped  []SkipDTO       `json:"skipped"`
	Errors   []string        `json:"errors"`
	Summary  ParseSummaryDTO `json:"summary"`
}

type ExpiryResultDTO struct {
	ExpiryDate       string `json:"expiry_date"`
	ExpiryDisplay    string `json:"expiry_display"`
	RemainingDays    int    `json:"remaining_days"`
	RemainingDisplay string `json:"remaining_display"`
	EffectiveDays    int    `json:"effective_days"`
	EffectiveDisplay string `json:"effective_display"`
	ExcludedDays     int    `json:"excluded_days"`
	TermDays         int    `json:"term_days"`
	EffectiveYears   string `json:"effective_years"`
	TermReached      bool   `json:"term_reached"`
}

type LeaveImpactDTO struct {
	Index                int    `json:"index"`
	Type                 string `json:"type"`
	Label                string `json:"label"`
	Period               string `json:"period"`
	TotalDays            int    `json:"total_days"`
	Duration             string `json:"duration"`
	CountsTowardSchool   bool   `json:"counts_toward_school"`
	CountsTowardRegional bool   `json:"counts_toward_regional"`
}

type ContextSummaryDTO struct {
	ServiceCount      int    `json:"service_count"`
	LeaveCount        int    `json:"leave_count"`
	OneYearPlusLeaves int    `json:"one_year_plus_leaves"`
	TotalDays         int    `json:"total_days"`
	ApproxYears       string `json:"approx_years"`
}

type ExpiryResponse struct {
	AsOf     string            `json:"as_of"`
	School   ExpiryResultDTO   `json:"school"`
	Regional ExpiryResultDTO   `json:"regional"`
	Leaves   []LeaveImpactDTO  `json:"leave_impacts"`
	Summary  ContextSummaryDTO `json:"summary"`
}

type RegionDTO struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	RegionalTermYears int    `json:"regional_term_years"`
	SchoolTermYears   int    `json:"school_term_years"`
	HasSubAreas       bool   `json:"has_sub_areas"`
	Notes             string `json:"notes,omitempty"`
}

type LeaveTypeDTO struct {
	Type                      string `json:"type"`
	Label                     string `json:"label"`
	IncludedInRegionalService bool   `json:"included_in_regional_service"`
	Color                     string `json:"color,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DOMAIN <-> DTO MAPPING
// =============================================================================

func toServiceDTO(iv tenure.ServiceInterval, asOf tenure.Date, f *format.Formatter) ServiceDTO {
	dto := ServiceDTO{
		SchoolName:       iv.SchoolName,
		Region:           string(iv.Region),
		SubRegion:        string(iv.SubRegion),
		StartDate:        iv.Start.String(),
		Ongoing:          iv.Ongoing,
		AppointmentLabel: iv.AppointmentLabel,
		TotalDays:        iv.TotalDays(asOf),
		Period:           f.Span(iv.Span),
	}
	if !iv.Ongoing {
		dto.EndDate = iv.End.String()
	}
	dto.Duration = f.Duration(dto.TotalDays)
	return dto
}

func toLeaveDTO(iv tenure.LeaveInterval, asOf tenure.Date, f *format.Formatter) LeaveDTO {
	dto := LeaveDTO{
		Type:             string(iv.Type),
		SchoolName:       iv.SchoolName,
		StartDate:        iv.Start.String(),
		Ongoing:          iv.Ongoing,
		AppointmentLabel: iv.AppointmentLabel,
		TotalDays:        iv.TotalDays(asOf),
		IsOneYearOrMore:  iv.IsOneYearOrMore(asOf),
		Period:           f.Span(iv.Span),
	}
	if !iv.Ongoing {
		dto.EndDate = iv.End.String()
	}
	dto.Duration = f.Duration(dto.TotalDays)
	return dto
}

func toExpiryResultDTO(r tenure.ExpiryResult, f *format.Formatter) ExpiryResultDTO {
	return ExpiryResultDTO{
		ExpiryDate:       r.ExpiryDate.String(),
		ExpiryDisplay:    f.Date(r.ExpiryDate),
		RemainingDays:    r.RemainingDays,
		RemainingDisplay: f.Remaining(r.RemainingDays),
		EffectiveDays:    r.EffectiveDays,
		EffectiveDisplay: f.Duration(r.EffectiveDays),
		ExcludedDays:     r.ExcludedDays,
		TermDays:         r.TermDays,
		EffectiveYears:   r.EffectiveYears.String(),
		TermReached:      r.TermReached(),
	}
}

// spanFromDTO rebuilds a Span from wire fields. An empty end date means
// the interval is ongoing.
func spanFromDTO(start, end string, ongoing bool) (tenure.Span, error) {
	s, err := tenure.ParseDate(start)
	if err != nil {
		return tenure.Span{}, err
	}
	if ongoing || end == "" {
		return tenure.OngoingSpan(s), nil
	}
	e, err := tenure.ParseDate(end)
	if err != nil {
		return tenure.Span{}, err
	}
	return tenure.ClosedSpan(s, e), nil
}
