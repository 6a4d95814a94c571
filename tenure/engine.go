/*
engine.go - School-term and regional-term expiry computation

PURPOSE:
  Computes, from a CalculationContext and an evaluation date, when the
  teacher must rotate out of the current school and out of the current
  region. This is the central calculation of the system.

THE TWO CLOCKS:
  School term (5 years, current posting only):
    Leaves of one year or more taken during the current posting do not
    count toward the school clock; each excluded day pushes the expiry
    out by one day. Shorter leaves never affect the school term,
    whatever their type.

      schoolExpiry    = transferDate + schoolTermYears*365 + excludedDays
      effectiveDays   = (today - transferDate + 1) - excludedDays
      remainingDays   = max(0, schoolExpiry - today)

  Regional term (8-15 years, all postings in the region):
    Day counts of every posting in the same region (and, for the
    sub-area-split region, the same sub-region) are summed with the
    current posting. Leave types not included in regional service are
    excluded in full, regardless of duration and regardless of which
    posting they occurred under.

      totalDays       = (today - transferDate + 1) + matching postings
      effectiveDays   = totalDays - excludedLeaveDays
      remainingDays   = max(0, regionalTermYears*365 - effectiveDays)
      regionalExpiry  = today + remainingDays

ANCHORING:
  The two clocks are deliberately anchored differently. The school
  deadline is fixed the day the teacher transfers in, so its expiry date
  uses the transfer-anchored closed form and stays put as "today"
  advances. The regional clock is a countdown over accumulating career
  days, so its expiry is re-derived from today on every computation.
  Both remaining-day figures clamp at zero once a term is exceeded.

YEAR-BLOCK RULE (optional, default off):
  One variant of the regulation treats whole-year blocks of otherwise
  service-included leave (childcare leave in particular) as excluded
  from the school clock, while month/day-granularity instances of the
  same type stay fully included. Whether this is authoritative policy is
  unconfirmed; it ships as a policy switch, not a hardcoded case.

SEE ALSO:
  - context.go: The input value
  - types.go:   Rule tables the computation is parameterized by
*/
package tenure

import "github.com/shopspring/decimal"

// =============================================================================
// ENGINE POLICY
// =============================================================================

// YearBlockRule is the optional duration-shape refinement for leave
// types that are included in regional service but excludable from the
// school clock when taken in whole-year blocks.
//
// A leave is year-based when its day count sits within ToleranceDays of
// an exact multiple of 365 (up to MaxYears), or when its 365/30
// decomposition has no month or day remainder. When the rule governs a
// leave type, the year-based test replaces the plain one-year-or-more
// test for that type: year-based instances are excluded from the school
// clock, everything else of that type is fully included in both clocks.
type YearBlockRule struct {
	Enabled       bool
	LeaveTypes    []LeaveType
	ToleranceDays int
	MaxYears      int
}

func (r YearBlockRule) governs(t LeaveType) bool {
	if !r.Enabled {
		return false
	}
	for _, lt := range r.LeaveTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// isYearBased classifies a leave duration as a whole-year block.
func (r YearBlockRule) isYearBased(totalDays int) bool {
	for y := 1; y <= r.MaxYears; y++ {
		diff := totalDays - y*DaysPerYear
		if diff < 0 {
			diff = -diff
		}
		if diff <= r.ToleranceDays {
			return true
		}
	}
	return Decompose(totalDays).IsWholeYears()
}

// EnginePolicy parameterizes a computation: the rule tables plus the
// optional year-block refinement.
type EnginePolicy struct {
	Rules     Rules
	YearBlock YearBlockRule
}

// DefaultEnginePolicy returns the 2025 rule tables with the year-block
// rule disabled (its parameters preconfigured for childcare leave, so
// enabling is a one-field change).
func DefaultEnginePolicy() EnginePolicy {
	return EnginePolicy{
		Rules: DefaultRules(),
		YearBlock: YearBlockRule{
			Enabled:       false,
			LeaveTypes:    []LeaveType{LeaveParental},
			ToleranceDays: 15,
			MaxYears:      5,
		},
	}
}

// =============================================================================
// RESULTS
// =============================================================================

// ExpiryResult is one computed clock.
type ExpiryResult struct {
	ExpiryDate    Date
	RemainingDays int // clamped at 0 once the term is exceeded
	EffectiveDays int // days counted toward the term after exclusions
	ExcludedDays  int
	TermDays      int

	// EffectiveYears is EffectiveDays/365, two decimal places.
	// Display metric only.
	EffectiveYears decimal.Decimal
}

// TermReached reports whether the term is already exceeded.
func (r ExpiryResult) TermReached() bool { return r.RemainingDays <= 0 }

// LeaveImpact records, for one leave, whether it counted toward each of
// the two clocks. Produced for the presentation layer's impact display.
type LeaveImpact struct {
	Index                int
	Type                 LeaveType
	Label                string
	Span                 Span
	TotalDays            int
	CountsTowardSchool   bool
	CountsTowardRegional bool
}

// Result is the full output of one computation.
type Result struct {
	AsOf     Date
	School   ExpiryResult
	Regional ExpiryResult
	Leaves   []LeaveImpact
	Summary  ContextSummary
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes expiry results. Stateless apart from its policy; safe
// to reuse across contexts.
type Engine struct {
	Policy EnginePolicy
}

func NewEngine() *Engine {
	return &Engine{Policy: DefaultEnginePolicy()}
}

// ComputeExpiry derives both clocks from the context as of the given
// evaluation date.
//
// Returns ErrIncompleteContext when the current region or transfer date
// is unset: a defined "not yet computable" state, not a failure. The
// context is only read, never retained.
func (e *Engine) ComputeExpiry(c *CalculationContext, today Date) (*Result, error) {
	if !c.Ready() {
		return nil, ErrIncompleteContext
	}
	profile, ok := e.Policy.Rules.Region(c.Region)
	if !ok {
		return nil, ErrUnknownRegion
	}

	currentDays := DaysInclusive(c.TransferDate, today)

	// Per-leave classification drives both clocks and the impact list.
	var (
		impacts              []LeaveImpact
		schoolExcludedDays   int
		regionalExcludedDays int
	)
	for i, leave := range c.Leaves {
		days := leave.TotalDays(today)
		policy := e.Policy.Rules.Leave(leave.Type)

		excludedFromSchool := e.excludedFromSchool(c, leave, days, today)
		if excludedFromSchool {
			schoolExcludedDays += days
		}

		excludedFromRegional := !policy.IncludedInRegionalService
		if excludedFromRegional {
			regionalExcludedDays += days
		}

		impacts = append(impacts, LeaveImpact{
			Index:                i,
			Type:                 leave.Type,
			Label:                policy.Label,
			Span:                 leave.Span,
			TotalDays:            days,
			CountsTowardSchool:   !excludedFromSchool,
			CountsTowardRegional: !excludedFromRegional,
		})
	}

	// School clock: anchored to the transfer date.
	schoolTermDays := profile.SchoolTermYears * DaysPerYear
	schoolExpiry := c.TransferDate.AddDays(schoolTermDays + schoolExcludedDays)
	school := ExpiryResult{
		ExpiryDate:    schoolExpiry,
		RemainingDays: clampDays(DaysBetween(today, schoolExpiry)),
		EffectiveDays: currentDays - schoolExcludedDays,
		ExcludedDays:  schoolExcludedDays,
		TermDays:      schoolTermDays,
	}
	school.EffectiveYears = ApproxYears(school.EffectiveDays)

	// Regional clock: countdown from today over all matching postings.
	regionalTotalDays := currentDays
	for _, svc := range c.Services {
		if e.Policy.Rules.SameRegion(svc.Region, svc.SubRegion, c.Region, c.SubRegion) {
			regionalTotalDays += svc.TotalDays(today)
		}
	}
	regionalTermDays := profile.RegionalTermYears * DaysPerYear
	regionalEffective := regionalTotalDays - regionalExcludedDays
	regionalRemaining := clampDays(regionalTermDays - regionalEffective)
	regional := ExpiryResult{
		ExpiryDate:    today.AddDays(regionalRemaining),
		RemainingDays: regionalRemaining,
		EffectiveDays: regionalEffective,
		ExcludedDays:  regionalExcludedDays,
		TermDays:      regionalTermDays,
	}
	regional.EffectiveYears = ApproxYears(regional.EffectiveDays)

	return &Result{
		AsOf:     today,
		School:   school,
		Regional: regional,
		Leaves:   impacts,
		Summary:  c.Summarize(today),
	}, nil
}

// excludedFromSchool decides whether a leave's days are excluded from
// the school clock. Only leaves taken during the current posting can
// affect it; leaves from prior postings never do.
func (e *Engine) excludedFromSchool(c *CalculationContext, leave LeaveInterval, days int, today Date) bool {
	if leave.Start.Before(c.TransferDate) {
		return false
	}
	if e.Policy.YearBlock.governs(leave.Type) {
		return e.Policy.YearBlock.isYearBased(days)
	}
	return days >= DaysPerYear
}

func clampDays(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
