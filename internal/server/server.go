// Package server exposes the planner as a JSON API over fasthttp.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/valyala/fasthttp"
)

// PlanSaver persists successful plans. *store.Store satisfies it.
type PlanSaver interface {
	SavePlan(plan *domain.PlanResult) (string, error)
}

// Server routes API requests to the planning engine.
type Server struct {
	engine *calculation.PlanEngine
	store  PlanSaver
	logger calculation.Logger
	now    func() time.Time
}

// New creates a server. store may be nil; logger may be nil.
func New(engine *calculation.PlanEngine, store PlanSaver, logger calculation.Logger) *Server {
	if engine == nil {
		engine = calculation.NewPlanEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{engine: engine, store: store, logger: logger, now: time.Now}
}

// ListenAndServe serves the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("wealth planner API listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// Handle is the fasthttp request handler.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	s.logger.Debugf("%s %s", ctx.Method(), path)

	switch path {
	case "/healthz":
		if !ctx.IsGet() {
			s.methodNotAllowed(ctx)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/api/settings/default":
		if !ctx.IsGet() {
			s.methodNotAllowed(ctx)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, config.DefaultSettings())
	case "/api/plan":
		s.post(ctx, s.handlePlan)
	case "/api/project":
		s.post(ctx, s.handleProject)
	case "/api/savings-rate":
		s.post(ctx, s.handleSavingsRate)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not_found", "Unknown path: "+path)
	}
}

func (s *Server) post(ctx *fasthttp.RequestCtx, h fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		s.methodNotAllowed(ctx)
		return
	}
	h(ctx)
}

func (s *Server) methodNotAllowed(ctx *fasthttp.RequestCtx) {
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
}

func (s *Server) handlePlan(ctx *fasthttp.RequestCtx) {
	start := s.now()
	var settings domain.Settings
	if err := json.Unmarshal(ctx.PostBody(), &settings); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, calculation.KindInvalidParameters, "Invalid request body: "+err.Error())
		return
	}

	plan, err := s.engine.BuildPlan(context.Background(), &settings)
	if err != nil {
		s.calculationError(ctx, start, err)
		return
	}

	meta := s.metadata(start)
	if s.store != nil {
		id, err := s.store.SavePlan(plan)
		if err != nil {
			s.logger.Errorf("saving plan %s: %v", meta.CalculationID, err)
		} else {
			meta.StoredPlanID = id
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, PlanResponse{CalculationMetadata: meta, Plan: plan})
}

func (s *Server) handleProject(ctx *fasthttp.RequestCtx) {
	start := s.now()
	var params domain.PhaseParameters
	if err := json.Unmarshal(ctx.PostBody(), &params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, calculation.KindInvalidParameters, "Invalid request body: "+err.Error())
		return
	}

	result, err := calculation.Project(params)
	if err != nil {
		s.calculationError(ctx, start, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, ProjectResponse{CalculationMetadata: s.metadata(start), Result: result})
}

func (s *Server) handleSavingsRate(ctx *fasthttp.RequestCtx) {
	start := s.now()
	var req SavingsRateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, calculation.KindInvalidParameters, "Invalid request body: "+err.Error())
		return
	}

	var (
		band domain.SavingsBand
		ok   bool
	)
	if req.Band != nil {
		band, ok = *req.Band, true
	} else {
		band, ok = calculation.DefaultSavingsBands[req.Phase]
	}
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, calculation.KindInvalidParameters,
			fmt.Sprintf("No savings band for phase %q", req.Phase))
		return
	}

	fb, err := calculation.SavingsRateFeedback(req.MonthlySalary, req.MonthlyContribution, band)
	if err != nil {
		s.calculationError(ctx, start, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, SavingsRateResponse{CalculationMetadata: s.metadata(start), Feedback: fb})
}

func (s *Server) calculationError(ctx *fasthttp.RequestCtx, start time.Time, err error) {
	kind := calculation.ErrorKind(err)
	status := fasthttp.StatusInternalServerError
	switch kind {
	case calculation.KindInvalidParameters, calculation.KindDivisionByZero:
		status = fasthttp.StatusBadRequest
	case calculation.KindNonConvergent:
		status = fasthttp.StatusUnprocessableEntity
	}
	meta := s.metadata(start)
	meta.CalculationOutcome = OutcomeFailure
	s.logger.Warnf("%s rejected (%s) in calculation %s: %v", ctx.Path(), kind, meta.CalculationID, err)
	writeJSON(ctx, status, ErrorResponse{Status: status, Kind: kind, Message: err.Error(), CalculationMetadata: &meta})
}

func (s *Server) metadata(start time.Time) CalculationMetadata {
	end := s.now()
	return CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   start.UTC().Format(time.RFC3339Nano),
		CalculationCompletedAt: end.UTC().Format(time.RFC3339Nano),
		CalculationDurationMs:  end.Sub(start).Milliseconds(),
		CalculationOutcome:     OutcomeSuccess,
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, calculation.KindInternal, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, kind, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Kind: kind, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
