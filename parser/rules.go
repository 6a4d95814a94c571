/*
rules.go - Ordered classification rule tables

PURPOSE:
  The appointment-type label of a personnel record decides what the
  record is: something to skip (reinstatements, transfers), a leave of
  absence, or active service. The original rule was a nest of keyword
  if-chains; here the precedence is data:

    1. Skip rules (evaluated first, in listed order)
    2. Leave detection, then leave sub-type rules (in listed order)
    3. Default: active service

  The ordering encodes the one subtle precedence: a label containing
  both a leave keyword and a reinstatement keyword ("휴직복직") is a
  reinstatement, never a leave.

CUSTOMIZATION:
  All tables hang off Config so deployments can extend keyword lists
  without touching the classifier. DefaultConfig returns the observed
  keyword sets of the source regulation.
*/
package parser

import (
	"regexp"

	"github.com/jeonbo/tenure-engine/tenure"
)

// =============================================================================
// SKIP CLASSIFICATION
// =============================================================================

// SkipReason tags why a record was excluded from both output
// collections.
type SkipReason string

const (
	SkipReinstatement SkipReason = "reinstatement"         // 복직, 휴직복직
	SkipInterOffice   SkipReason = "inter_office_transfer" // 교육청간/부처간
	SkipIntraOffice   SkipReason = "intra_office_transfer" // 교육청내/부처내
	SkipTransfer      SkipReason = "transfer"              // generic 전보
	SkipShortDuration SkipReason = "non_meaningful_duration"
	SkipOther         SkipReason = "other"
)

// SkipRule maps label keywords to a skip reason. First matching rule
// wins.
type SkipRule struct {
	Keywords []string
	Reason   SkipReason
}

// =============================================================================
// LEAVE CLASSIFICATION
// =============================================================================

// LeaveTypeRule maps label keywords to a specific leave type. First
// matching rule wins; unmatched leave labels fall back to the catch-all
// type.
type LeaveTypeRule struct {
	Keywords []string
	Type     tenure.LeaveType
}

// =============================================================================
// REGION DETECTION
// =============================================================================

// RegionRule maps department/assignment keywords to a region. Evaluated
// in listed order; an empty keyword list always matches, so the
// catch-all region goes last.
type RegionRule struct {
	Region   tenure.RegionKey
	Keywords []string
}

// =============================================================================
// CONFIG
// =============================================================================

// Config bundles every classification table the parser consults.
type Config struct {
	Skip       []SkipRule
	LeaveWords []string // a label containing any of these is a leave
	LeaveTypes []LeaveTypeRule
	Regions    []RegionRule

	// SchoolName extracts a token ending in a school-level suffix from
	// the assignment field. When it fails, the assignment is truncated
	// to MaxSchoolNameRunes with an ellipsis.
	SchoolName         *regexp.Regexp
	MaxSchoolNameRunes int
}

// DefaultConfig returns the keyword tables observed in the source
// regulation's records.
func DefaultConfig() Config {
	return Config{
		Skip: []SkipRule{
			{Keywords: []string{"복직"}, Reason: SkipReinstatement},
			{Keywords: []string{"교육청간", "부처간"}, Reason: SkipInterOffice},
			{Keywords: []string{"교육청내", "부처내"}, Reason: SkipIntraOffice},
			{Keywords: []string{"전보"}, Reason: SkipTransfer},
		},
		LeaveWords: []string{
			"휴직", "육아휴직", "7호:육아휴직", "질병휴직", "유학휴직",
			"병역휴직", "가족돌봄휴직", "휴직연장", "노조전임", "파견",
		},
		LeaveTypes: []LeaveTypeRule{
			{Keywords: []string{"육아", "7호"}, Type: tenure.LeaveParental},
			{Keywords: []string{"질병"}, Type: tenure.LeaveSick},
			{Keywords: []string{"유학", "연수"}, Type: tenure.LeaveStudy},
			{Keywords: []string{"병역"}, Type: tenure.LeaveMilitary},
			{Keywords: []string{"가족돌봄"}, Type: tenure.LeaveFamilyCare},
			{Keywords: []string{"노조"}, Type: tenure.LeaveUnionOfficial},
			{Keywords: []string{"휴직연장"}, Type: tenure.LeaveExtension},
			{Keywords: []string{"지역내"}, Type: tenure.LeaveLocalDispatch},
			{Keywords: []string{"파견"}, Type: tenure.LeaveOtherDispatch},
		},
		Regions: []RegionRule{
			{Region: tenure.RegionChungju, Keywords: []string{"충주", "충주시", "충주고등학교", "충주여자고등학교", "충주중학교"}},
			{Region: tenure.RegionJecheon, Keywords: []string{"제천", "제천시"}},
			{Region: tenure.RegionCheongju, Keywords: []string{"청주", "청주시", "상당구", "서원구", "흥덕구", "청원구"}},
			{Region: tenure.RegionOther}, // catch-all
		},
		SchoolName:         regexp.MustCompile(`(\S*[초중고등]학교)`),
		MaxSchoolNameRunes: 20,
	}
}
