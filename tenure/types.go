/*
Package tenure implements the service-period accrual engine for teacher
relocation/tenure rules.

PURPOSE:
  Given a teacher's current post (region, transfer-in date), prior
  postings, and leave-of-absence records, the engine derives two expiry
  dates governed by a regional civil-service regulation:

  - School expiry:   when the teacher must rotate out of the current
                     school (fixed 5-year term, extended by qualifying
                     leave taken during the posting)
  - Regional expiry: when the teacher must rotate out of the region
                     (8-15 year cumulative term across all postings in
                     the region, with per-leave-type exclusions)

KEY CONCEPTS IN THIS FILE (types.go):
  - RegionKey / SubRegion: Closed enumerations of regions and sub-areas
  - RegionProfile: Per-region term lengths (immutable lookup table)
  - LeaveType / LeavePolicy: Leave classification and accrual inclusion
  - Rules: The combined rule tables handed to engine and parser

DESIGN PRINCIPLES:
  1. Purity: No I/O, no hidden state. Every computation is a function of
     the context and the evaluation date ("today").
  2. Tables over branches: Region and leave behavior live in lookup
     tables keyed by closed enums, not in control flow.
  3. Full recomputation: Any context mutation invalidates prior results;
     callers recompute from scratch. Data sizes are tens of intervals,
     so nothing is cached.

SEE ALSO:
  - date.go:     Day-granularity dates and open-ended spans
  - interval.go: Service and leave interval records
  - context.go:  CalculationContext and mutation operations
  - engine.go:   Expiry computation
*/
package tenure

// =============================================================================
// REGION ENUMERATION
// =============================================================================

// RegionKey identifies a region in the rotation regulation.
type RegionKey string

const (
	RegionChungju  RegionKey = "chungju"
	RegionJecheon  RegionKey = "jecheon"
	RegionCheongju RegionKey = "cheongju"
	RegionOther    RegionKey = "other" // catch-all for everything else
)

// SubRegion splits one region (Cheongju) into urban and rural zones,
// tracked separately for regional-term purposes. Empty for all other
// regions.
type SubRegion string

const (
	SubRegionNone  SubRegion = ""
	SubRegionUrban SubRegion = "dong"     // 동 (urban districts)
	SubRegionRural SubRegion = "eupmyeon" // 읍면 (rural districts)
)

// RegionProfile is the static per-region configuration.
type RegionProfile struct {
	Key               RegionKey
	Name              string
	RegionalTermYears int  // cumulative years of regional service allowed
	SchoolTermYears   int  // years at a single school before rotation
	HasSubAreas       bool // urban/rural split tracked separately
	Notes             string
}

// =============================================================================
// LEAVE ENUMERATION
// =============================================================================

// LeaveType identifies a leave-of-absence category.
type LeaveType string

const (
	LeaveParental      LeaveType = "parental"
	LeaveSick          LeaveType = "sick"
	LeaveStudy         LeaveType = "study"
	LeaveMilitary      LeaveType = "military"
	LeaveFamilyCare    LeaveType = "family_care"
	LeaveUnionOfficial LeaveType = "union_official"
	LeaveLocalDispatch LeaveType = "local_dispatch"
	LeaveOtherDispatch LeaveType = "other_dispatch"
	LeaveExtension     LeaveType = "extension"
	LeaveOther         LeaveType = "other"
)

// LeavePolicy is the static per-leave-type configuration.
//
// IncludedInRegionalService controls the regional-term exclusion only.
// The school-term exclusion is duration-based (one year or more) and
// does not consult this flag.
type LeavePolicy struct {
	Type                      LeaveType
	Label                     string
	IncludedInRegionalService bool
	Color                     string // display hint for the presentation layer
}

// =============================================================================
// RULE TABLES
// =============================================================================

// DaysPerYear is the regulation's year length for term arithmetic.
// Terms are defined as whole years of 365 days; leap days are not
// credited separately.
const DaysPerYear = 365

// Rules bundles the region and leave lookup tables. The zero value is
// not usable; obtain one from DefaultRules or the factory package.
type Rules struct {
	Regions map[RegionKey]RegionProfile
	Leaves  map[LeaveType]LeavePolicy
}

// DefaultRules returns the rule tables of the 2025 revision of the
// regulation. The returned maps are fresh copies; callers may override
// entries without affecting other rule sets.
func DefaultRules() Rules {
	regions := map[RegionKey]RegionProfile{
		RegionChungju: {
			Key: RegionChungju, Name: "충주시",
			RegionalTermYears: 15, SchoolTermYears: 5,
			Notes: "통산 15년 (2025년 개정)",
		},
		RegionJecheon: {
			Key: RegionJecheon, Name: "제천시",
			RegionalTermYears: 15, SchoolTermYears: 5,
			Notes: "통산 15년 (2025년 개정)",
		},
		RegionCheongju: {
			Key: RegionCheongju, Name: "청주시",
			RegionalTermYears: 13, SchoolTermYears: 5,
			HasSubAreas: true,
			Notes:       "통산 13년, 동/읍면 구분",
		},
		RegionOther: {
			Key: RegionOther, Name: "기타지역",
			RegionalTermYears: 8, SchoolTermYears: 5,
			Notes: "일반 지역 8년",
		},
	}

	leaves := map[LeaveType]LeavePolicy{
		LeaveParental:      {Type: LeaveParental, Label: "육아휴직", IncludedInRegionalService: true, Color: "#059669"},
		LeaveSick:          {Type: LeaveSick, Label: "질병휴직", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveStudy:         {Type: LeaveStudy, Label: "유학휴직", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveMilitary:      {Type: LeaveMilitary, Label: "병역휴직", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveFamilyCare:    {Type: LeaveFamilyCare, Label: "가족돌봄휴직", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveUnionOfficial: {Type: LeaveUnionOfficial, Label: "노조전임자", IncludedInRegionalService: true, Color: "#059669"},
		LeaveLocalDispatch: {Type: LeaveLocalDispatch, Label: "지역내 행정기관 파견", IncludedInRegionalService: true, Color: "#059669"},
		LeaveOtherDispatch: {Type: LeaveOtherDispatch, Label: "기타 파견", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveExtension:     {Type: LeaveExtension, Label: "휴직연장", IncludedInRegionalService: false, Color: "#dc2626"},
		LeaveOther:         {Type: LeaveOther, Label: "기타휴직", IncludedInRegionalService: false, Color: "#dc2626"},
	}

	return Rules{Regions: regions, Leaves: leaves}
}

// Region looks up a region profile.
func (r Rules) Region(key RegionKey) (RegionProfile, bool) {
	p, ok := r.Regions[key]
	return p, ok
}

// Leave looks up a leave policy, falling back to the catch-all type for
// unknown keys.
func (r Rules) Leave(t LeaveType) LeavePolicy {
	if p, ok := r.Leaves[t]; ok {
		return p
	}
	return r.Leaves[LeaveOther]
}

// SameRegion reports whether two postings belong to the same regional
// term bucket: region keys must match, and for a region with sub-areas
// the sub-region must match as well. The sub-area distinction affects
// only the regional computation, never the school computation.
func (r Rules) SameRegion(aKey RegionKey, aSub SubRegion, bKey RegionKey, bSub SubRegion) bool {
	if aKey != bKey {
		return false
	}
	if p, ok := r.Regions[aKey]; ok && p.HasSubAreas {
		return aSub == bSub
	}
	return true
}
