/*
errors.go - Centralized error types for the tenure engine

PURPOSE:
  All error types of the core packages in one place. The parser has its
  own per-record error type (records are isolated, a bad record never
  fails the batch); these are the errors the engine and context return.

ERROR CATEGORIES:
  1. Incomplete context - expiry requested before region/transfer date
     are set. Not a failure: a defined "not yet computable" state that
     callers must distinguish from a computed zero result.
  2. Validation errors - invalid spans, overlapping intervals, bad
     indices. Rejected at the point of insertion; the engine never
     detects or repairs overlaps in already-stored data.

USAGE:
  Callers dispatch with errors.Is / errors.As:

    if errors.Is(err, tenure.ErrIncompleteContext) { ... }

    var overlap *tenure.OverlapError
    if errors.As(err, &overlap) { ... }
*/
package tenure

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIncompleteContext is returned when expiry is requested before
	// the current region or transfer date are set.
	ErrIncompleteContext = errors.New("incomplete context: current region and transfer date required")

	// ErrInvalidSpan is returned when an interval's end precedes its
	// start or the span covers no days.
	ErrInvalidSpan = errors.New("invalid span: end before start")

	// ErrOverlap is returned when an inserted interval overlaps an
	// existing one of the same kind.
	ErrOverlap = errors.New("interval overlaps an existing record")

	// ErrUnknownRegion is returned when a context names a region key
	// absent from the rule tables.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrIndexOutOfRange is returned by removal operations.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// OverlapError reports which stored interval an insertion collided with.
type OverlapError struct {
	Kind          string // "service" or "leave"
	Inserted      Span
	Existing      Span
	ExistingIndex int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s interval starting %s overlaps existing record #%d (%s ~ %s)",
		e.Kind, e.Inserted.Start, e.ExistingIndex, e.Existing.Start, e.Existing.End)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid input
// rather than an internal failure. The API layer maps these to 4xx.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSpan) ||
		errors.Is(err, ErrOverlap) ||
		errors.Is(err, ErrUnknownRegion) ||
		errors.Is(err, ErrIndexOutOfRange)
}
