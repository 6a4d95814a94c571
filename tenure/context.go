package tenure

import "github.com/shopspring/decimal"

// =============================================================================
// CALCULATION CONTEXT - The one mutable value in the system
// =============================================================================

// CalculationContext is the session state expiry is computed from: the
// current post (region, sub-region, transfer-in date) plus the recorded
// service and leave intervals.
//
// The context is built incrementally from parsed batches or manual
// entry. Any mutation invalidates previously computed results; callers
// recompute from scratch (there is no incremental update). The engine
// borrows the context for the duration of a computation and never
// retains it.
type CalculationContext struct {
	Region       RegionKey
	SubRegion    SubRegion
	TransferDate Date

	Services []ServiceInterval
	Leaves   []LeaveInterval
}

func NewContext() *CalculationContext {
	return &CalculationContext{}
}

// Ready reports whether expiry can be computed: region and transfer
// date must be set. Recorded intervals are not required.
func (c *CalculationContext) Ready() bool {
	return c.Region != "" && !c.TransferDate.IsZero()
}

// SetCurrentPost updates the current-post fields. For a region with
// sub-areas an unset sub-region defaults to urban; for any other region
// the sub-region is cleared.
func (c *CalculationContext) SetCurrentPost(rules Rules, region RegionKey, sub SubRegion, transfer Date) error {
	profile, ok := rules.Region(region)
	if !ok {
		return ErrUnknownRegion
	}
	if profile.HasSubAreas {
		if sub == SubRegionNone {
			sub = SubRegionUrban
		}
	} else {
		sub = SubRegionNone
	}
	c.Region = region
	c.SubRegion = sub
	c.TransferDate = transfer
	return nil
}

// =============================================================================
// MUTATIONS - Validated at the point of insertion
// =============================================================================

// AddService appends a posting after validating its span and checking
// for overlap against the stored postings.
func (c *CalculationContext) AddService(asOf Date, iv ServiceInterval) error {
	if !iv.Valid(asOf) {
		return ErrInvalidSpan
	}
	for i, existing := range c.Services {
		if iv.Overlaps(existing.Span, asOf) {
			return &OverlapError{Kind: "service", Inserted: iv.Span, Existing: existing.Span, ExistingIndex: i}
		}
	}
	c.Services = append(c.Services, iv)
	return nil
}

// AddLeave appends a leave after validating its span and checking for
// overlap against the stored leaves.
func (c *CalculationContext) AddLeave(asOf Date, iv LeaveInterval) error {
	if !iv.Valid(asOf) {
		return ErrInvalidSpan
	}
	for i, existing := range c.Leaves {
		if iv.Overlaps(existing.Span, asOf) {
			return &OverlapError{Kind: "leave", Inserted: iv.Span, Existing: existing.Span, ExistingIndex: i}
		}
	}
	c.Leaves = append(c.Leaves, iv)
	return nil
}

func (c *CalculationContext) RemoveService(index int) error {
	if index < 0 || index >= len(c.Services) {
		return ErrIndexOutOfRange
	}
	c.Services = append(c.Services[:index], c.Services[index+1:]...)
	return nil
}

func (c *CalculationContext) RemoveLeave(index int) error {
	if index < 0 || index >= len(c.Leaves) {
		return ErrIndexOutOfRange
	}
	c.Leaves = append(c.Leaves[:index], c.Leaves[index+1:]...)
	return nil
}

// Clear drops all recorded intervals, keeping the current-post fields.
func (c *CalculationContext) Clear() {
	c.Services = nil
	c.Leaves = nil
}

// =============================================================================
// SUMMARY - Counts for the presentation layer
// =============================================================================

// ContextSummary is the aggregate view of a context's record set.
type ContextSummary struct {
	ServiceCount      int
	LeaveCount        int
	OneYearPlusLeaves int
	TotalDays         int
	// ApproxYears is TotalDays/365, two decimal places. Display only.
	ApproxYears decimal.Decimal
}

// Summarize counts the record set as of the evaluation date.
func (c *CalculationContext) Summarize(asOf Date) ContextSummary {
	s := ContextSummary{
		ServiceCount: len(c.Services),
		LeaveCount:   len(c.Leaves),
	}
	for _, svc := range c.Services {
		s.TotalDays += svc.TotalDays(asOf)
	}
	for _, lv := range c.Leaves {
		s.TotalDays += lv.TotalDays(asOf)
		if lv.IsOneYearOrMore(asOf) {
			s.OneYearPlusLeaves++
		}
	}
	s.ApproxYears = ApproxYears(s.TotalDays)
	return s
}
