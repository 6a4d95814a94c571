/*
handlers.go - HTTP API handlers for the tenure expiry engine

PURPOSE:
  Exposes the pure parser and engine to an external presentation layer.
  Strictly a transport adapter: no session, no persistence, no auth.
  Every request carries its full input and every response is a complete
  re-derivation.

ENDPOINTS:
  POST /api/parse        Parse raw personnel-history text
  POST /api/expiry       Compute school/regional expiry for a context
  GET  /api/regions      Region rule table (form population)
  GET  /api/leave-types  Leave-type rule table (form population)
  GET  /api/sample       Sample personnel dataset

REQUEST FLOW:
  1. Decode and validate input
  2. Build the calculation context (insertion-time validation applies:
     invalid spans and overlaps are rejected here)
  3. Call the pure core
  4. Render display strings and serialize

ERROR HANDLING:
  Errors are returned as a JSON envelope with appropriate HTTP status:
  - 400: Malformed body, invalid dates, overlapping intervals
  - 422: Incomplete context (region/transfer date unset) - a defined
         "not yet computable" state, reported with its own code so
         clients can distinguish it from bad input
  - 500: Internal errors

SEE ALSO:
  - dto.go:    Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/goccy/go-json"

	"github.com/jeonbo/tenure-engine/format"
	"github.com/jeonbo/tenure-engine/parser"
	"github.com/jeonbo/tenure-engine/tenure"
)

// =============================================================================
// HANDLER
// =============================================================================

// Handler holds the pure collaborators. It carries no request state.
type Handler struct {
	Policy    tenure.EnginePolicy
	Parser    *parser.Parser
	Formatter *format.Formatter

	// Clock returns the evaluation date when a request doesn't pin one.
	// Injected for tests.
	Clock func() tenure.Date
}

// NewHandler wires a handler with the given policy and formatter.
func NewHandler(policy tenure.EnginePolicy, f *format.Formatter) *Handler {
	return &Handler{
		Policy:    policy,
		Parser:    parser.New(),
		Formatter: f,
		Clock:     tenure.Today,
	}
}

// asOf resolves the evaluation date: the request's as_of field when
// present, the clock otherwise.
func (h *Handler) asOf(field string) (tenure.Date, error) {
	if field == "" {
		return h.Clock(), nil
	}
	return tenure.ParseDate(field)
}

// =============================================================================
// PARSE
// =============================================================================

// ParseText handles POST /api/parse.
func (h *Handler) ParseText(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "Field 'text' is required", "", nil)
		return
	}
	today, err := h.asOf(req.AsOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", "", err)
		return
	}

	result := h.Parser.Parse(req.Text, today)

	resp := ParseResponse{
		Services: []ServiceDTO{},
		Leaves:   []LeaveDTO{},
		Skipped:  []SkipDTO{},
		Errors:   []string{},
		Summary: ParseSummaryDTO{
			ServiceCount:      result.Summary.ServiceCount,
			LeaveCount:        result.Summary.LeaveCount,
			OneYearPlusLeaves: result.Summary.OneYearPlusLeaves,
			SkippedCount:      result.Summary.SkippedCount,
			ErrorCount:        result.Summary.ErrorCount,
		},
	}
	for _, iv := range result.Services {
		resp.Services = append(resp.Services, toServiceDTO(iv, today, h.Formatter))
	}
	for _, iv := range result.Leaves {
		resp.Leaves = append(resp.Leaves, toLeaveDTO(iv, today, h.Formatter))
	}
	for _, s := range result.Skipped {
		resp.Skipped = append(resp.Skipped, SkipDTO{
			Reason:           string(s.Reason),
			AppointmentLabel: s.AppointmentLabel,
			Period:           s.Period,
			Days:             s.Days,
		})
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, e.Error())
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// EXPIRY
// =============================================================================

// ComputeExpiry handles POST /api/expiry.
func (h *Handler) ComputeExpiry(w http.ResponseWriter, r *http.Request) {
	var req ExpiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	today, err := h.asOf(req.AsOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", "", err)
		return
	}

	// The "not yet computable" state: report it distinctly so the
	// presentation layer can show guidance instead of an error.
	if req.Region == "" || req.TransferDate == "" {
		writeError(w, http.StatusUnprocessableEntity,
			"Current region and transfer date are required before expiry can be computed",
			"incomplete_context", nil)
		return
	}

	ctx, err := h.buildContext(req, today)
	if err != nil {
		status := http.StatusInternalServerError
		if tenure.IsClientError(err) || errors.Is(err, errBadDate) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Invalid calculation context", "", err)
		return
	}

	engine := &tenure.Engine{Policy: h.Policy}
	if req.YearBlock != nil {
		engine.Policy.YearBlock.Enabled = *req.YearBlock
	}

	result, err := engine.ComputeExpiry(ctx, today)
	if errors.Is(err, tenure.ErrIncompleteContext) {
		writeError(w, http.StatusUnprocessableEntity,
			"Current region and transfer date are required before expiry can be computed",
			"incomplete_context", nil)
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		if tenure.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Expiry computation failed", "", err)
		return
	}

	resp := ExpiryResponse{
		AsOf:     result.AsOf.String(),
		School:   toExpiryResultDTO(result.School, h.Formatter),
		Regional: toExpiryResultDTO(result.Regional, h.Formatter),
		Leaves:   []LeaveImpactDTO{},
		Summary: ContextSummaryDTO{
			ServiceCount:      result.Summary.ServiceCount,
			LeaveCount:        result.Summary.LeaveCount,
			OneYearPlusLeaves: result.Summary.OneYearPlusLeaves,
			TotalDays:         result.Summary.TotalDays,
			ApproxYears:       result.Summary.ApproxYears.String(),
		},
	}
	for _, impact := range result.Leaves {
		resp.Leaves = append(resp.Leaves, LeaveImpactDTO{
			Index:                impact.Index,
			Type:                 string(impact.Type),
			Label:                impact.Label,
			Period:               h.Formatter.Span(impact.Span),
			TotalDays:            impact.TotalDays,
			Duration:             h.Formatter.Duration(impact.TotalDays),
			CountsTowardSchool:   impact.CountsTowardSchool,
			CountsTowardRegional: impact.CountsTowardRegional,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

var errBadDate = errors.New("invalid date")

// buildContext assembles a CalculationContext from the request,
// running the insertion-time validation (span validity, overlaps).
func (h *Handler) buildContext(req ExpiryRequest, today tenure.Date) (*tenure.CalculationContext, error) {
	transfer, err := tenure.ParseDate(req.TransferDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transfer_date %q", errBadDate, req.TransferDate)
	}

	ctx := tenure.NewContext()
	if err := ctx.SetCurrentPost(h.Policy.Rules, tenure.RegionKey(req.Region), tenure.SubRegion(req.SubRegion), transfer); err != nil {
		return nil, err
	}

	for i, dto := range req.Services {
		span, err := spanFromDTO(dto.StartDate, dto.EndDate, dto.Ongoing)
		if err != nil {
			return nil, fmt.Errorf("%w: service %d", errBadDate, i)
		}
		iv := tenure.ServiceInterval{
			Span:             span,
			SchoolName:       dto.SchoolName,
			Region:           tenure.RegionKey(dto.Region),
			SubRegion:        tenure.SubRegion(dto.SubRegion),
			AppointmentLabel: dto.AppointmentLabel,
		}
		if err := ctx.AddService(today, iv); err != nil {
			return nil, fmt.Errorf("service %d: %w", i, err)
		}
	}
	for i, dto := range req.Leaves {
		span, err := spanFromDTO(dto.StartDate, dto.EndDate, dto.Ongoing)
		if err != nil {
			return nil, fmt.Errorf("%w: leave %d", errBadDate, i)
		}
		iv := tenure.LeaveInterval{
			Span:             span,
			Type:             tenure.LeaveType(dto.Type),
			SchoolName:       dto.SchoolName,
			AppointmentLabel: dto.AppointmentLabel,
		}
		if err := ctx.AddLeave(today, iv); err != nil {
			return nil, fmt.Errorf("leave %d: %w", i, err)
		}
	}
	return ctx, nil
}

// =============================================================================
// RULE TABLES
// =============================================================================

// ListRegions handles GET /api/regions.
func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	dtos := make([]RegionDTO, 0, len(h.Policy.Rules.Regions))
	for _, p := range h.Policy.Rules.Regions {
		dtos = append(dtos, RegionDTO{
			Key:               string(p.Key),
			Name:              p.Name,
			RegionalTermYears: p.RegionalTermYears,
			SchoolTermYears:   p.SchoolTermYears,
			HasSubAreas:       p.HasSubAreas,
			Notes:             p.Notes,
		})
	}
	// Longest term first, catch-all last; map order is not stable.
	sort.Slice(dtos, func(i, j int) bool {
		if dtos[i].RegionalTermYears != dtos[j].RegionalTermYears {
			return dtos[i].RegionalTermYears > dtos[j].RegionalTermYears
		}
		return dtos[i].Key < dtos[j].Key
	})
	writeJSON(w, http.StatusOK, dtos)
}

// ListLeaveTypes handles GET /api/leave-types.
func (h *Handler) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	dtos := make([]LeaveTypeDTO, 0, len(h.Policy.Rules.Leaves))
	for _, p := range h.Policy.Rules.Leaves {
		dtos = append(dtos, LeaveTypeDTO{
			Type:                      string(p.Type),
			Label:                     p.Label,
			IncludedInRegionalService: p.IncludedInRegionalService,
			Color:                     p.Color,
		})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Type < dtos[j].Type })
	writeJSON(w, http.StatusOK, dtos)
}

// GetSample handles GET /api/sample.
func (h *Handler) GetSample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"text": SampleData})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
