// Package handler exposes the deadline engine over HTTP.
package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"jurisdiction-engine/internal/busday"
	"jurisdiction-engine/internal/calendar"
	"jurisdiction-engine/internal/engine"
	"jurisdiction-engine/internal/model"
	"jurisdiction-engine/internal/rules"
)

// Route dispatches the jurisdiction API endpoints.
func Route(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("X-Request-ID", uuid.New().String())

	switch string(ctx.Path()) {
	case "/api/jurisdiction/list":
		withMethod(ctx, fasthttp.MethodGet, handleList)
	case "/api/jurisdiction/rules":
		withMethod(ctx, fasthttp.MethodGet, handleRules)
	case "/api/jurisdiction/compare":
		withMethod(ctx, fasthttp.MethodGet, handleCompare)
	case "/api/jurisdiction/calculate-deadline":
		withMethod(ctx, fasthttp.MethodPost, handleCalculateDeadline)
	case "/api/jurisdiction/business-days":
		withMethod(ctx, fasthttp.MethodPost, handleBusinessDays)
	case "/api/jurisdiction/holidays":
		withMethod(ctx, fasthttp.MethodGet, handleHolidays)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func withMethod(ctx *fasthttp.RequestCtx, method string, h func(*fasthttp.RequestCtx)) {
	if string(ctx.Method()) != method {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	h(ctx)
}

func handleList(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, model.ListResponse{
		Success:       true,
		Jurisdictions: model.Jurisdictions,
	})
}

func handleRules(ctx *fasthttp.RequestCtx) {
	jurisdiction := string(ctx.QueryArgs().Peek("jurisdiction"))
	if jurisdiction == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "jurisdiction parameter is required")
		return
	}
	category := string(ctx.QueryArgs().Peek("category"))

	matched := rules.For(model.JurisdictionCode(jurisdiction), category)
	if matched == nil {
		matched = []model.DeadlineRule{}
	}
	writeJSON(ctx, model.RulesResponse{Success: true, Rules: matched})
}

func handleCompare(ctx *fasthttp.RequestCtx) {
	codes := ctx.QueryArgs().PeekMulti("jurisdictions")
	if len(codes) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "jurisdictions parameter is required")
		return
	}
	category := string(ctx.QueryArgs().Peek("category"))
	if category == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "category parameter is required")
		return
	}

	comparison := make([]model.ComparisonEntry, 0, len(codes))
	for _, raw := range codes {
		code := model.JurisdictionCode(raw)
		matched := rules.For(code, category)
		if matched == nil {
			matched = []model.DeadlineRule{}
		}
		comparison = append(comparison, model.ComparisonEntry{
			Jurisdiction: code,
			Rules:        matched,
		})
	}
	writeJSON(ctx, model.CompareResponse{Success: true, Comparison: comparison})
}

func handleCalculateDeadline(ctx *fasthttp.RequestCtx) {
	var req model.DeadlineRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Jurisdiction == "" || req.RuleCategory == "" || req.StartDate == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "jurisdiction, ruleCategory and startDate are required")
		return
	}

	result, err := engine.ResolveDeadline(req.Jurisdiction, req.RuleCategory, req.StartDate, req.Mode)
	if err != nil {
		writeFailure(ctx, err)
		return
	}

	resp := model.DeadlineResponse{Success: true, DeadlineDate: result.DeadlineDate}
	if req.Mode == model.ModeDetailed {
		resp.DeadlineDays = &result.Rule.DeadlineDays
		resp.LegalReference = result.Rule.LegalReference
	}
	writeJSON(ctx, resp)
}

// operations dispatches the business-days calculation variants.
var operations = map[string]func(*model.BusinessDayRequest) (*model.BusinessDayResponse, error){
	model.OperationAdd:      runAdd,
	model.OperationSubtract: runSubtract,
	model.OperationCount:    runCount,
}

func handleBusinessDays(ctx *fasthttp.RequestCtx) {
	var req model.BusinessDayRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Jurisdiction == "" || req.StartDate == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "jurisdiction and startDate are required")
		return
	}

	run, ok := operations[req.Operation]
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, "Unknown operation: "+req.Operation)
		return
	}

	resp, err := run(&req)
	if err != nil {
		writeFailure(ctx, err)
		return
	}
	writeJSON(ctx, resp)
}

func runAdd(req *model.BusinessDayRequest) (*model.BusinessDayResponse, error) {
	return runWalk(req, busday.Add)
}

func runSubtract(req *model.BusinessDayRequest) (*model.BusinessDayResponse, error) {
	return runWalk(req, busday.Subtract)
}

func runWalk(req *model.BusinessDayRequest, walk func(model.JurisdictionCode, time.Time, int) (time.Time, error)) (*model.BusinessDayResponse, error) {
	if req.BusinessDays == nil {
		return nil, fmt.Errorf("%w: businessDays is required", model.ErrInvalidArgument)
	}
	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	result, err := walk(req.Jurisdiction, start, *req.BusinessDays)
	if err != nil {
		return nil, err
	}
	return &model.BusinessDayResponse{
		Success:    true,
		ResultDate: model.FormatDate(result),
	}, nil
}

func runCount(req *model.BusinessDayRequest) (*model.BusinessDayResponse, error) {
	if req.EndDate == "" {
		return nil, fmt.Errorf("%w: endDate is required", model.ErrInvalidArgument)
	}
	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	count, err := busday.Count(req.Jurisdiction, start, end)
	if err != nil {
		return nil, err
	}
	return &model.BusinessDayResponse{
		Success:           true,
		BusinessDaysCount: &count,
	}, nil
}

func handleHolidays(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	jurisdiction := string(args.Peek("jurisdiction"))
	if jurisdiction == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "jurisdiction parameter is required")
		return
	}
	code := model.JurisdictionCode(jurisdiction)

	var holidays []model.Holiday
	var err error

	switch {
	case len(args.Peek("year")) > 0:
		var year int
		year, err = strconv.Atoi(string(args.Peek("year")))
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "year must be an integer")
			return
		}
		holidays, err = calendar.ForYear(code, year)
	case len(args.Peek("startDate")) > 0 && len(args.Peek("endDate")) > 0:
		var start, end time.Time
		start, err = model.ParseDate(string(args.Peek("startDate")))
		if err == nil {
			end, err = model.ParseDate(string(args.Peek("endDate")))
		}
		if err == nil {
			holidays, err = calendar.InRange(code, start, end)
		}
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "year or startDate and endDate are required")
		return
	}

	if err != nil {
		writeFailure(ctx, err)
		return
	}
	if holidays == nil {
		holidays = []model.Holiday{}
	}
	writeJSON(ctx, model.HolidaysResponse{Success: true, Holidays: holidays})
}

func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	ctx.SetContentType("application/json")
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetBody(body)
}

// writeFailure maps taxonomy errors to 400; anything else is a genuine
// internal fault.
func writeFailure(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidJurisdiction),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrInvalidRange),
		errors.Is(err, model.ErrInvalidArgument),
		errors.Is(err, model.ErrRuleNotFound):
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	default:
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
