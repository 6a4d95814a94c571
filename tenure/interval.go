package tenure

// =============================================================================
// INTERVALS - One posting or one leave of absence
// =============================================================================

// ServiceInterval is one posting: active service at a school. Created
// by the parser or by manual entry; immutable once created; removed
// individually, never mutated in place.
type ServiceInterval struct {
	Span

	SchoolName string
	Region     RegionKey
	SubRegion  SubRegion // only meaningful for the sub-area-split region

	// Raw appointment-type label, carried for display.
	AppointmentLabel string
}

// LeaveInterval is one leave of absence. Same lifecycle as
// ServiceInterval.
type LeaveInterval struct {
	Span

	Type LeaveType

	// Associated posting, when known.
	SchoolName string

	AppointmentLabel string
}

// IsOneYearOrMore reports whether the leave spans a full regulation
// year (365 days) as of the evaluation date. One-year-plus leaves are
// the ones excluded from the school-term clock.
func (l LeaveInterval) IsOneYearOrMore(asOf Date) bool {
	return l.TotalDays(asOf) >= DaysPerYear
}
